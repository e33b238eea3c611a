package repository

import (
	"errors"
	"newsnotes/cmd/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultNewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *DefaultNewsRepository {
	return &DefaultNewsRepository{db: db}
}

// FindLatest returns up to 'limit' news starting at 'offset', freshest first.
func (n *DefaultNewsRepository) FindLatest(offset, limit int) ([]*entity.NewsSummary, error) {
	var news []*entity.NewsSummary
	err := n.db.Model(&entity.News{}).
		Select("news.*, (SELECT COUNT(*) FROM comments WHERE comments.news_id = news.id) AS comment_count").
		Order("news.date DESC").
		Order("news.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(&news).Error
	if err != nil {
		return nil, err
	}
	return news, nil
}

func (n *DefaultNewsRepository) Count() (int64, error) {
	var count int64
	err := n.db.Model(&entity.News{}).Count(&count).Error
	return count, err
}

// FindByIDWithComments loads a news item and its comments, oldest comment first.
func (n *DefaultNewsRepository) FindByIDWithComments(id int64) (*entity.News, error) {
	var news entity.News
	err := n.db.
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC").Order("id ASC")
		}).
		Preload("Comments.Author").
		First(&news, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &news, nil
}

func (n *DefaultNewsRepository) ExistsByID(id int64) (bool, error) {
	var exists int
	err := n.db.
		Raw("SELECT EXISTS(SELECT 1 FROM news WHERE id = ?)", id).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (n *DefaultNewsRepository) Save(news *entity.News) error {
	return n.db.Omit(clause.Associations).Save(news).Error
}

// SaveAll inserts the given news in a single transaction.
func (n *DefaultNewsRepository) SaveAll(news []*entity.News) error {
	if len(news) == 0 {
		return nil
	}
	return n.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&news).Error
	})
}
