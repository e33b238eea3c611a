package entity

const MaxNewsTitleLength = 250

type News struct {
	ID    int64  `gorm:"primaryKey"`
	Title string `gorm:"not null;size:250"`
	Text  string `gorm:"not null"`
	Date  int64  `gorm:"not null;index"`

	// Relations
	Comments []*Comment `gorm:"foreignKey:NewsID;references:ID;constraint:OnDelete:CASCADE;"`
}

// TableName keeps the singular/plural ambiguity out of gorm's inflection.
func (News) TableName() string {
	return "news"
}

// NewsSummary is a news row joined with the number of comments it has.
type NewsSummary struct {
	ID           int64
	Title        string
	Text         string
	Date         int64
	CommentCount int64
}
