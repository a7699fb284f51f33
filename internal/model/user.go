package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// User is an admin account. Rows are shadow records of the configured admin
// credentials: the login gate validates against configuration, not against
// the stored hash.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SetPassword stores a salted bcrypt digest of the plaintext.
func (u *User) SetPassword(password string) error {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(digest)
	return nil
}

// CheckPassword reports whether plaintext produced the stored digest.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
