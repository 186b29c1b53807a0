package entities

import "time"

type Address struct {
	ID         int64
	UserID     int64
	Street     string
	City       string
	PostalCode string
	Country    string
	IsDefault  bool
	CreatedAt  time.Time
}

type AddressInput struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}
