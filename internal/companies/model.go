package companies

import "time"

// Company is a tenant account holding HR users under a subscription.
type Company struct {
	ID        string
	Name      string
	VATNumber string
	IsActive  bool
	CreatedAt time.Time
}
