package users

import "time"

const (
	RoleCompanyAdmin = "company_admin"
	RoleHRUser       = "hr_user"
)

// User is an HR user occupying one of a company's licensed seats while active.
type User struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
