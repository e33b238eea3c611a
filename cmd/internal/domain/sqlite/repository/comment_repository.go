package repository

import (
	"errors"
	"newsnotes/cmd/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultCommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *DefaultCommentRepository {
	return &DefaultCommentRepository{db: db}
}

func (c *DefaultCommentRepository) FindByID(id int64) (*entity.Comment, error) {
	var comment entity.Comment
	err := c.db.First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *DefaultCommentRepository) Count() (int64, error) {
	var count int64
	err := c.db.Model(&entity.Comment{}).Count(&count).Error
	return count, err
}

func (c *DefaultCommentRepository) Save(comment *entity.Comment) error {
	return c.db.Omit(clause.Associations).Save(comment).Error
}

func (c *DefaultCommentRepository) Delete(comment *entity.Comment) error {
	return c.db.Delete(comment).Error
}
