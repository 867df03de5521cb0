package subscriptions

const (
	StatusActive   = "active"
	StatusCanceled = "canceled"
	StatusPastDue  = "past_due"
)

// Subscription binds a company to a plan with a purchased seat count.
type Subscription struct {
	ID         string `json:"id"`
	CompanyID  string `json:"companyId"`
	PlanID     string `json:"planId"`
	SeatsTotal int    `json:"seatsTotal"`
	Status     string `json:"status"`
}

// ValidStatus reports whether s is one of the allowed subscription states.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusCanceled, StatusPastDue:
		return true
	default:
		return false
	}
}
