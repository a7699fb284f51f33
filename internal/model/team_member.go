package model

import "time"

// TeamMember is a staff profile. IsHead partitions the about page into
// leadership and regular members.
type TeamMember struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null;index"`
	Position  string    `json:"position" gorm:"size:100;not null"`
	Image     string    `json:"image" gorm:"size:255;not null"`
	IsHead    bool      `json:"is_head" gorm:"default:false;index"`
	Email     string    `json:"email" gorm:"size:100"`
	Phone     string    `json:"phone" gorm:"size:15"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
