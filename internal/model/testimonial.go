package model

import "time"

// Testimonial is a customer review shown on every public page.
type Testimonial struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	TestimonialText string    `json:"testimonial_text" gorm:"type:text;not null"`
	Name            string    `json:"name" gorm:"size:100;not null;index"`
	Location        string    `json:"location" gorm:"size:100;not null;index"`
	Rating          int       `json:"rating" gorm:"not null"`
	Image           string    `json:"image" gorm:"size:200;not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
