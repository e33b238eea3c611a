package repository

import (
	"errors"
	"newsnotes/cmd/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultSessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *DefaultSessionRepository {
	return &DefaultSessionRepository{db: db}
}

func (s *DefaultSessionRepository) Save(session *entity.Session) error {
	return s.db.Omit(clause.Associations).Save(session).Error
}

// FindActive returns the session with the given ID if it has not expired by now.
func (s *DefaultSessionRepository) FindActive(id string, now int64) (*entity.Session, error) {
	var session entity.Session
	err := s.db.Where("id = ? AND expires_at > ?", id, now).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *DefaultSessionRepository) Delete(id string) error {
	return s.db.Where("id = ?", id).Delete(&entity.Session{}).Error
}

// DeleteExpired removes every session that expired at or before 'before'
// and returns how many rows were swept.
func (s *DefaultSessionRepository) DeleteExpired(before int64) (int64, error) {
	res := s.db.Where("expires_at <= ?", before).Delete(&entity.Session{})
	return res.RowsAffected, res.Error
}
