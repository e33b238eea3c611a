package sqlite

import "newsnotes/cmd/internal/domain/entity"

// NewsModels are the tables backing the news site.
func NewsModels() []any {
	return []any{&entity.User{}, &entity.Session{}, &entity.News{}, &entity.Comment{}}
}

// NoteModels are the tables backing the notes site.
func NoteModels() []any {
	return []any{&entity.User{}, &entity.Session{}, &entity.Note{}}
}
