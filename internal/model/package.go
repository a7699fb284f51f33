package model

import "time"

// Package type discriminants used by the public partition query. The column
// itself is free-form; these are the two values the site knows about.
const (
	PackageTypeNational      = "national"
	PackageTypeInternational = "international"
)

// Package is a sellable travel offering.
type Package struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"size:100;not null;index"`
	Description    string    `json:"description" gorm:"size:500"`
	Image          string    `json:"image" gorm:"size:255"`
	Type           string    `json:"type" gorm:"size:50;not null;index"`
	Price          string    `json:"price" gorm:"size:100"`
	ContactName    string    `json:"contact_name" gorm:"size:100"`
	ContactPhone   string    `json:"contact_phone" gorm:"size:20"`
	DurationDays   int       `json:"duration_days"`
	DurationNights int       `json:"duration_nights"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
