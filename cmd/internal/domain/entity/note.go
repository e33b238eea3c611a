package entity

const (
	MaxNoteTitleLength = 100
	MaxNoteSlugLength  = 100
)

type Note struct {
	ID       int64  `gorm:"primaryKey"`
	Title    string `gorm:"not null;size:100"`
	Text     string `gorm:"not null"`
	Slug     string `gorm:"not null;size:100;uniqueIndex"`
	AuthorID int64  `gorm:"not null;index"` // References: users(id)

	// Relations
	Author User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE;"`
}
