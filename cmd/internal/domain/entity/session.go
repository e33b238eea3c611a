package entity

import "time"

const (
	DefaultSessionTTL = 14 * 24 * time.Hour
)

// Session backs a login cookie. The cookie token is only honored while
// its session row exists and has not expired.
type Session struct {
	ID        string `gorm:"primaryKey;autoIncrement:false"`
	UserID    int64  `gorm:"not null;index"`
	ExpiresAt int64  `gorm:"not null;index"`
	CreatedAt int64  `gorm:"not null"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}
