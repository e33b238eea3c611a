package entity

type Comment struct {
	ID        int64  `gorm:"primaryKey"`
	NewsID    int64  `gorm:"not null;index"` // References: news(id)
	AuthorID  int64  `gorm:"not null;index"` // References: users(id)
	Text      string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null;index;autoCreateTime:false"`

	// Relations
	News   News `gorm:"foreignKey:NewsID;references:ID;constraint:OnDelete:CASCADE;"`
	Author User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE;"`
}
