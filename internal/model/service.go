package model

import "time"

// Service is an ancillary offering such as visa help or transport.
type Service struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:100;not null;index"`
	Description   string    `json:"description" gorm:"size:255"`
	ContactPerson string    `json:"contact_person" gorm:"size:100"`
	Email         string    `json:"email" gorm:"size:100"`
	Phone         string    `json:"phone" gorm:"size:15"`
	Image         string    `json:"image" gorm:"size:255"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
