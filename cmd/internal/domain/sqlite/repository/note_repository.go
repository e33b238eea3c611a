package repository

import (
	"errors"
	"newsnotes/cmd/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

func (d *DefaultNoteRepository) FindAllByAuthor(authorID int64) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.Where("author_id = ?", authorID).Order("id ASC").Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) FindBySlug(slug string) (*entity.Note, error) {
	var note entity.Note
	err := d.db.Where("slug = ?", slug).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

// ExistsBySlug reports whether a note other than excludeID already uses slug.
func (d *DefaultNoteRepository) ExistsBySlug(slug string, excludeID int64) (bool, error) {
	var exists int
	err := d.db.
		Raw("SELECT EXISTS(SELECT 1 FROM notes WHERE slug = ? AND id <> ?)", slug, excludeID).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (d *DefaultNoteRepository) Count() (int64, error) {
	var count int64
	err := d.db.Model(&entity.Note{}).Count(&count).Error
	return count, err
}

func (d *DefaultNoteRepository) Save(note *entity.Note) error {
	return d.db.Omit(clause.Associations).Save(note).Error
}

func (d *DefaultNoteRepository) Delete(note *entity.Note) error {
	return d.db.Delete(note).Error
}
