package handler

import (
	"net/http"
	"newsnotes/cmd/internal/contract"
	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/http/render"
	"newsnotes/cmd/internal/utils"
	"newsnotes/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

// DoneURL is where every successful note change lands.
const DoneURL = "/done/"

type NoteService interface {
	GetNotes(actor *entity.User) ([]*contract.NoteResponse, apierror.ErrorResponse)
	GetNote(actor *entity.User, slug string) (*contract.NoteResponse, apierror.ErrorResponse)
	CreateNote(actor *entity.User, req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	UpdateNote(actor *entity.User, slug string, req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	DeleteNote(actor *entity.User, slug string) apierror.ErrorResponse
}

type DefaultNoteRoute struct {
	*Pages
	NoteService NoteService
}

func NewNoteDefault(pages *Pages, noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{Pages: pages, NoteService: noteService}
}

func (n *DefaultNoteRoute) Home(c echo.Context) error {
	return n.Render(c, http.StatusOK, render.NotesHome, nil)
}

func (n *DefaultNoteRoute) GetNotes(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return n.RenderError(c, cerr)
	}

	notes, apierr := n.NoteService.GetNotes(user)
	if apierr != nil {
		return n.RenderError(c, apierr)
	}
	return n.Render(c, http.StatusOK, render.NotesList, &contract.NoteListPage{ObjectList: notes})
}

func (n *DefaultNoteRoute) GetNote(c echo.Context) error {
	note, apierr := n.ownNote(c)
	if apierr != nil {
		return n.RenderError(c, apierr)
	}
	return n.Render(c, http.StatusOK, render.NoteDetail, &contract.NoteDetailPage{Note: note})
}

func (n *DefaultNoteRoute) AddForm(c echo.Context) error {
	page := &contract.NoteFormPage{Form: contract.NewNoteForm(nil, nil)}
	return n.Render(c, http.StatusOK, render.NoteForm, page)
}

func (n *DefaultNoteRoute) CreateNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return n.RenderError(c, cerr)
	}

	var req contract.NoteRequest
	if err := c.Bind(&req); err != nil {
		return n.RenderError(c, apierror.MalformedBodyError)
	}

	_, apierr := n.NoteService.CreateNote(user, &req)
	if apierr != nil {
		return n.renderForm(c, apierr, render.NoteForm, func(serr *apierror.StructuredError) any {
			return &contract.NoteFormPage{Form: contract.NewNoteForm(&req, serr)}
		})
	}
	return c.Redirect(http.StatusFound, DoneURL)
}

func (n *DefaultNoteRoute) EditForm(c echo.Context) error {
	note, apierr := n.ownNote(c)
	if apierr != nil {
		return n.RenderError(c, apierr)
	}

	page := &contract.NoteFormPage{Note: note, Form: contract.NoteFormFromResponse(note)}
	return n.Render(c, http.StatusOK, render.NoteForm, page)
}

func (n *DefaultNoteRoute) UpdateNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return n.RenderError(c, cerr)
	}

	note, apierr := n.NoteService.GetNote(user, c.Param("slug"))
	if apierr != nil {
		return n.RenderError(c, apierr)
	}

	var req contract.NoteRequest
	if err := c.Bind(&req); err != nil {
		return n.RenderError(c, apierror.MalformedBodyError)
	}

	_, apierr = n.NoteService.UpdateNote(user, note.Slug, &req)
	if apierr != nil {
		return n.renderForm(c, apierr, render.NoteForm, func(serr *apierror.StructuredError) any {
			return &contract.NoteFormPage{Note: note, Form: contract.NewNoteForm(&req, serr)}
		})
	}
	return c.Redirect(http.StatusFound, DoneURL)
}

func (n *DefaultNoteRoute) DeleteForm(c echo.Context) error {
	note, apierr := n.ownNote(c)
	if apierr != nil {
		return n.RenderError(c, apierr)
	}
	return n.Render(c, http.StatusOK, render.NoteDelete, &contract.NoteDeletePage{Note: note})
}

func (n *DefaultNoteRoute) DeleteNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return n.RenderError(c, cerr)
	}

	if apierr := n.NoteService.DeleteNote(user, c.Param("slug")); apierr != nil {
		return n.RenderError(c, apierr)
	}
	return c.Redirect(http.StatusFound, DoneURL)
}

func (n *DefaultNoteRoute) Done(c echo.Context) error {
	return n.Render(c, http.StatusOK, render.NoteSuccess, nil)
}

func (n *DefaultNoteRoute) ownNote(c echo.Context) (*contract.NoteResponse, apierror.ErrorResponse) {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return nil, cerr
	}
	return n.NoteService.GetNote(user, c.Param("slug"))
}
