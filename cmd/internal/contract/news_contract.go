package contract

import "newsnotes/cmd/internal/utils/apierror"

const NewsCountOnHomePage = 10

type NewsResponse struct {
	ID           int64
	Title        string
	Text         string
	Date         string
	DateMillis   int64
	CommentCount int64
}

type CommentResponse struct {
	ID            int64
	NewsID        int64
	AuthorID      int64
	AuthorName    string
	Text          string
	Created       string
	CreatedMillis int64
}

type CommentRequest struct {
	Text string `form:"text" validate:"required,nobadwords"`
}

// CommentForm is the comment form as shown to the user: submitted values
// plus whatever problems they had.
type CommentForm struct {
	Text   string
	Errors FormErrors
}

func NewCommentForm(req *CommentRequest, serr *apierror.StructuredError) *CommentForm {
	form := &CommentForm{Errors: newFormErrors(serr)}
	if req != nil {
		form.Text = req.Text
	}
	return form
}

type Pagination struct {
	Number   int
	NumPages int
	Count    int64
}

func (p *Pagination) HasPrevious() bool {
	return p.Number > 1
}

func (p *Pagination) HasNext() bool {
	return p.Number < p.NumPages
}

func (p *Pagination) PreviousNumber() int {
	return p.Number - 1
}

func (p *Pagination) NextNumber() int {
	return p.Number + 1
}

type NewsHomePage struct {
	ObjectList []*NewsResponse
}

type NewsListPage struct {
	ObjectList []*NewsResponse
	Page       *Pagination
}

// NewsDetailPage only carries a Form for authenticated visitors.
type NewsDetailPage struct {
	News     *NewsResponse
	Comments []*CommentResponse
	Form     *CommentForm
}

type CommentEditPage struct {
	Comment *CommentResponse
	Form    *CommentForm
}

type CommentDeletePage struct {
	Comment *CommentResponse
}

// NewsSeed is one entry of a news import file.
type NewsSeed struct {
	Title string `json:"title" validate:"required,max=250"`
	Text  string `json:"text" validate:"required"`
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
