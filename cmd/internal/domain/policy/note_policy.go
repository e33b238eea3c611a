package policy

import (
	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/utils/apierror"
)

// NotePolicy encapsulates the ownership rules for notes.
// Notes are private: anyone but the author gets a 404, never a 403.
type NotePolicy struct{}

func NewNotePolicy() *NotePolicy {
	return &NotePolicy{}
}

func (p *NotePolicy) CanSee(note *entity.Note, actor *entity.User) apierror.ErrorResponse {
	if note == nil {
		return apierror.NotFoundError
	}

	if !actor.IsAuthor(note.AuthorID) {
		return apierror.NotFoundError // ^^
	}
	return nil
}

func (p *NotePolicy) CanUpdate(note *entity.Note, actor *entity.User) apierror.ErrorResponse {
	return p.CanSee(note, actor)
}

func (p *NotePolicy) CanDelete(note *entity.Note, actor *entity.User) apierror.ErrorResponse {
	return p.CanSee(note, actor)
}
