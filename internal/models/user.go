package models

import "time"

// User captures a registered person; IdentityNumber (CPF) is the login key.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	IdentityNumber string    `json:"identityNumber"`
	PasswordHash   string    `json:"-"`
	Phone          string    `json:"phone"`
	PostalCode     string    `json:"postalCode"`
	Street         string    `json:"street"`
	District       string    `json:"district"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Image          string    `json:"image"`
	UserTypeID     *int64    `json:"userTypeRef,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
