package plans

// Plan is a seat allotment template subscriptions point at.
type Plan struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	IncludedSeats int    `json:"includedSeats"`
}
