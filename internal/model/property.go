package model

import "time"

// Listing type: a property is offered for sale or for rent.
const (
	TypeSale = "Sale"
	TypeRent = "Rent"
)

// Listing status. New properties default to Available.
const (
	StatusAvailable = "Available"
	StatusSold      = "Sold"
	StatusRented    = "Rented"
)

// DefaultImage is used when a listing is created without a photo.
const DefaultImage = "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800"

type Property struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Location    string    `db:"location" json:"location"`
	Price       int64     `db:"price" json:"price"`
	Description string    `db:"description" json:"description"`
	Type        string    `db:"type" json:"type"`
	Status      string    `db:"status" json:"status"`
	Bedrooms    int       `db:"bedrooms" json:"bedrooms"`
	Bathrooms   int       `db:"bathrooms" json:"bathrooms"`
	Area        int       `db:"area" json:"area"`
	Image       string    `db:"image" json:"image"`
	CreatedBy   int       `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ValidType reports whether t is a recognized listing type.
func ValidType(t string) bool {
	return t == TypeSale || t == TypeRent
}

// ValidStatus reports whether s is a recognized listing status.
func ValidStatus(s string) bool {
	return s == StatusAvailable || s == StatusSold || s == StatusRented
}
