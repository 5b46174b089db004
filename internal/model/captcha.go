package model

import "time"

// Captcha pairs an anonymous challenge token with its expected answer.
// Rows past ExpiresAt are inert and purged opportunistically.
type Captcha struct {
	Token     string    `gorm:"primaryKey;size:64"`
	Code      string    `gorm:"size:16;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}
