package contract

import "newsnotes/cmd/internal/utils/apierror"

// SlugTakenWarning is appended to a slug that another note already uses.
const SlugTakenWarning = " - такой slug уже существует, придумайте уникальное значение!"

type NoteResponse struct {
	ID       int64
	Title    string
	Text     string
	Slug     string
	AuthorID int64
}

type NoteRequest struct {
	Title string `form:"title" validate:"required,max=100"`
	Text  string `form:"text" validate:"required"`
	Slug  string `form:"slug" validate:"omitempty,max=100,slug"`
}

type NoteForm struct {
	Title  string
	Text   string
	Slug   string
	Errors FormErrors
}

func NewNoteForm(req *NoteRequest, serr *apierror.StructuredError) *NoteForm {
	form := &NoteForm{Errors: newFormErrors(serr)}
	if req != nil {
		form.Title = req.Title
		form.Text = req.Text
		form.Slug = req.Slug
	}
	return form
}

// NoteFormFromResponse prefills the form with a stored note.
func NoteFormFromResponse(note *NoteResponse) *NoteForm {
	return &NoteForm{
		Title:  note.Title,
		Text:   note.Text,
		Slug:   note.Slug,
		Errors: FormErrors{},
	}
}

type NoteListPage struct {
	ObjectList []*NoteResponse
}

// NoteFormPage serves both the add page (Note is nil) and the edit page.
type NoteFormPage struct {
	Note *NoteResponse
	Form *NoteForm
}

type NoteDetailPage struct {
	Note *NoteResponse
}

type NoteDeletePage struct {
	Note *NoteResponse
}
