package entity

// User is the identity shared by the news and notes sites.
type User struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    int64  `gorm:"not null"`
	UpdatedAt    int64  `gorm:"not null;autoUpdateTime:false"`
}

// IsAuthor reports whether the user is the author referenced by authorID.
func (u *User) IsAuthor(authorID int64) bool {
	return u != nil && u.ID == authorID
}
