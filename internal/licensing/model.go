package licensing

// Usage is a company's seat consumption snapshot.
type Usage struct {
	CompanyID      string `json:"companyId"`
	ActiveUsers    int    `json:"activeUsers"`
	SeatsTotal     int    `json:"seatsTotal"`
	AvailableSeats int    `json:"availableSeats"`
}
