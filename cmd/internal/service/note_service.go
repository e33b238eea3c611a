package service

import (
	"errors"
	"newsnotes/cmd/internal/contract"
	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/domain/policy"
	"newsnotes/cmd/internal/utils"
	"newsnotes/cmd/internal/utils/apierror"
	"newsnotes/cmd/internal/utils/slugify"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type NoteRepository interface {
	FindAllByAuthor(authorID int64) ([]*entity.Note, error)
	FindBySlug(slug string) (*entity.Note, error)
	ExistsBySlug(slug string, excludeID int64) (bool, error)
	Save(note *entity.Note) error
	Delete(note *entity.Note) error
}

type NoteService struct {
	NoteRepo NoteRepository
	Validate *validator.Validate
	Policy   *policy.NotePolicy
}

func NewNoteService(noteRepo NoteRepository, validate *validator.Validate, notePolicy *policy.NotePolicy) *NoteService {
	return &NoteService{
		NoteRepo: noteRepo,
		Validate: validate,
		Policy:   notePolicy,
	}
}

// GetNotes lists the notes written by actor. Other people's notes never show up.
func (n *NoteService) GetNotes(actor *entity.User) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	notes, err := n.NoteRepo.FindAllByAuthor(actor.ID)
	if err != nil {
		log.Errorf("failed to fetch notes of user %d: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp, nil
}

func (n *NoteService) GetNote(actor *entity.User, slug string) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, apierr := n.fetchNote(slug)
	if apierr != nil {
		return nil, apierr
	}

	if perr := n.Policy.CanSee(note, actor); perr != nil {
		return nil, perr
	}
	return toNoteResponse(note), nil
}

func (n *NoteService) CreateNote(actor *entity.User, req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	slug, apierr := n.resolveSlug(req, 0)
	if apierr != nil {
		return nil, apierr
	}

	note := &entity.Note{
		Title:    req.Title,
		Text:     req.Text,
		Slug:     slug,
		AuthorID: actor.ID,
	}

	if apierr = n.save(note); apierr != nil {
		return nil, apierr
	}
	return toNoteResponse(note), nil
}

// UpdateNote rewrites title, text and slug of a note owned by actor.
// Ownership is checked before the submitted form is even looked at.
func (n *NoteService) UpdateNote(actor *entity.User, slug string, req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, apierr := n.fetchNote(slug)
	if apierr != nil {
		return nil, apierr
	}

	if perr := n.Policy.CanUpdate(note, actor); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	newSlug, apierr := n.resolveSlug(req, note.ID)
	if apierr != nil {
		return nil, apierr
	}

	note.Title = req.Title
	note.Text = req.Text
	note.Slug = newSlug

	if apierr = n.save(note); apierr != nil {
		return nil, apierr
	}
	return toNoteResponse(note), nil
}

func (n *NoteService) DeleteNote(actor *entity.User, slug string) apierror.ErrorResponse {
	note, apierr := n.fetchNote(slug)
	if apierr != nil {
		return apierr
	}

	if perr := n.Policy.CanDelete(note, actor); perr != nil {
		return perr
	}

	if err := n.NoteRepo.Delete(note); err != nil {
		log.Errorf("failed to delete note %d: %v", note.ID, err)
		return apierror.InternalServerError
	}
	return nil
}

// resolveSlug derives the slug from the title when none was submitted and
// makes sure no other note already uses it.
func (n *NoteService) resolveSlug(req *contract.NoteRequest, noteID int64) (string, apierror.ErrorResponse) {
	slug := req.Slug
	if slug == "" {
		slug = slugify.Truncate(slugify.Make(req.Title), entity.MaxNoteSlugLength)
	}

	if slug == "" {
		return "", apierror.NewFieldError("slug", "Could not derive a slug from the title, please provide one.")
	}

	taken, err := n.NoteRepo.ExistsBySlug(slug, noteID)
	if err != nil {
		log.Errorf("failed to check slug %q: %v", slug, err)
		return "", apierror.InternalServerError
	}

	if taken {
		return "", apierror.NewFieldError("slug", slug+contract.SlugTakenWarning)
	}
	return slug, nil
}

func (n *NoteService) save(note *entity.Note) apierror.ErrorResponse {
	err := n.NoteRepo.Save(note)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.NewFieldError("slug", note.Slug+contract.SlugTakenWarning)
	}

	if err != nil {
		log.Errorf("failed to save note %q: %v", note.Slug, err)
		return apierror.InternalServerError
	}
	return nil
}

func (n *NoteService) fetchNote(slug string) (*entity.Note, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindBySlug(slug)
	if err != nil {
		log.Errorf("failed to fetch note %q: %v", slug, err)
		return nil, apierror.InternalServerError
	}
	return note, nil
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	return &contract.NoteResponse{
		ID:       note.ID,
		Title:    note.Title,
		Text:     note.Text,
		Slug:     note.Slug,
		AuthorID: note.AuthorID,
	}
}
