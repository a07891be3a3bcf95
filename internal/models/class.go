package models

import "time"

// Class is a "turma": a group of students identified by a unique code.
// Dates are kept in their submitted YYYY-MM-DD form.
type Class struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}
