package models

// Business is a company owned by the authenticated user. Invoices are issued
// on behalf of a business.
type Business struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}
