package models

import "time"

// Notification is a stored in-app message addressed to a recipient address.
type Notification struct {
	ID          string    `json:"id"`
	Recipient   string    `json:"recipient"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	CreatedDate time.Time `json:"created_date"`
}
