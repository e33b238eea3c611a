package handler

import (
	"fmt"
	"net/http"
	"newsnotes/cmd/internal/contract"
	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/http/render"
	"newsnotes/cmd/internal/utils"
	"newsnotes/cmd/internal/utils/apierror"
	"strconv"

	"github.com/labstack/echo/v4"
)

type NewsService interface {
	GetHomeNews() ([]*contract.NewsResponse, apierror.ErrorResponse)
	GetNewsPage(number int) (*contract.NewsListPage, apierror.ErrorResponse)
	GetNewsDetail(id int64) (*contract.NewsResponse, []*contract.CommentResponse, apierror.ErrorResponse)
}

type CommentService interface {
	CreateComment(actor *entity.User, newsID int64, req *contract.CommentRequest) (*contract.CommentResponse, apierror.ErrorResponse)
	GetOwnComment(actor *entity.User, commentID int64) (*contract.CommentResponse, apierror.ErrorResponse)
	UpdateComment(actor *entity.User, commentID int64, req *contract.CommentRequest) (*contract.CommentResponse, apierror.ErrorResponse)
	DeleteComment(actor *entity.User, commentID int64) (int64, apierror.ErrorResponse)
}

type DefaultNewsRoute struct {
	*Pages
	NewsService    NewsService
	CommentService CommentService
	LoginURL       string
}

func NewNewsDefault(pages *Pages, newsService NewsService, commentService CommentService, loginURL string) *DefaultNewsRoute {
	return &DefaultNewsRoute{
		Pages:          pages,
		NewsService:    newsService,
		CommentService: commentService,
		LoginURL:       loginURL,
	}
}

func (n *DefaultNewsRoute) Home(c echo.Context) error {
	news, apierr := n.NewsService.GetHomeNews()
	if apierr != nil {
		return n.RenderError(c, apierr)
	}
	return n.Render(c, http.StatusOK, render.NewsHome, &contract.NewsHomePage{ObjectList: news})
}

func (n *DefaultNewsRoute) List(c echo.Context) error {
	number := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return n.RenderError(c, apierror.NotFoundError)
		}
		number = parsed
	}

	page, apierr := n.NewsService.GetNewsPage(number)
	if apierr != nil {
		return n.RenderError(c, apierr)
	}
	return n.Render(c, http.StatusOK, render.NewsList, page)
}

// Detail shows a news item with its comments. Only logged in visitors get
// a comment form.
func (n *DefaultNewsRoute) Detail(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return n.RenderError(c, apierror.NotFoundError)
	}

	news, comments, apierr := n.NewsService.GetNewsDetail(id)
	if apierr != nil {
		return n.RenderError(c, apierr)
	}

	page := &contract.NewsDetailPage{News: news, Comments: comments}
	if utils.CurrentUser(c) != nil {
		page.Form = contract.NewCommentForm(nil, nil)
	}
	return n.Render(c, http.StatusOK, render.NewsDetail, page)
}

func (n *DefaultNewsRoute) CreateComment(c echo.Context) error {
	user := utils.CurrentUser(c)
	if user == nil {
		return c.Redirect(http.StatusFound, utils.LoginRedirectURL(n.LoginURL, c.Request().URL.RequestURI()))
	}

	id, ok := parseID(c, "id")
	if !ok {
		return n.RenderError(c, apierror.NotFoundError)
	}

	var req contract.CommentRequest
	if err := c.Bind(&req); err != nil {
		return n.RenderError(c, apierror.MalformedBodyError)
	}

	_, apierr := n.CommentService.CreateComment(user, id, &req)
	if apierr == nil {
		return c.Redirect(http.StatusFound, commentsAnchor(id))
	}

	serr, isForm := apierr.(*apierror.StructuredError)
	if !isForm {
		return n.RenderError(c, apierr)
	}

	news, comments, apierr := n.NewsService.GetNewsDetail(id)
	if apierr != nil {
		return n.RenderError(c, apierr)
	}

	page := &contract.NewsDetailPage{
		News:     news,
		Comments: comments,
		Form:     contract.NewCommentForm(&req, serr),
	}
	return n.Render(c, http.StatusOK, render.NewsDetail, page)
}

func (n *DefaultNewsRoute) EditCommentForm(c echo.Context) error {
	_, comment, apierr := n.ownComment(c)
	if apierr != nil {
		return n.RenderError(c, apierr)
	}

	req := &contract.CommentRequest{Text: comment.Text}
	page := &contract.CommentEditPage{Comment: comment, Form: contract.NewCommentForm(req, nil)}
	return n.Render(c, http.StatusOK, render.CommentEdit, page)
}

func (n *DefaultNewsRoute) UpdateComment(c echo.Context) error {
	user, comment, apierr := n.ownComment(c)
	if apierr != nil {
		return n.RenderError(c, apierr)
	}

	var req contract.CommentRequest
	if err := c.Bind(&req); err != nil {
		return n.RenderError(c, apierror.MalformedBodyError)
	}

	updated, apierr := n.CommentService.UpdateComment(user, comment.ID, &req)
	if apierr != nil {
		return n.renderForm(c, apierr, render.CommentEdit, func(serr *apierror.StructuredError) any {
			return &contract.CommentEditPage{Comment: comment, Form: contract.NewCommentForm(&req, serr)}
		})
	}
	return c.Redirect(http.StatusFound, commentsAnchor(updated.NewsID))
}

func (n *DefaultNewsRoute) DeleteCommentForm(c echo.Context) error {
	_, comment, apierr := n.ownComment(c)
	if apierr != nil {
		return n.RenderError(c, apierr)
	}
	return n.Render(c, http.StatusOK, render.CommentDelete, &contract.CommentDeletePage{Comment: comment})
}

func (n *DefaultNewsRoute) DeleteComment(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return n.RenderError(c, cerr)
	}

	id, ok := parseID(c, "id")
	if !ok {
		return n.RenderError(c, apierror.NotFoundError)
	}

	newsID, apierr := n.CommentService.DeleteComment(user, id)
	if apierr != nil {
		return n.RenderError(c, apierr)
	}
	return c.Redirect(http.StatusFound, commentsAnchor(newsID))
}

// ownComment loads the comment named in the path, provided the current
// user wrote it.
func (n *DefaultNewsRoute) ownComment(c echo.Context) (*entity.User, *contract.CommentResponse, apierror.ErrorResponse) {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return nil, nil, cerr
	}

	id, ok := parseID(c, "id")
	if !ok {
		return nil, nil, apierror.NotFoundError
	}

	comment, apierr := n.CommentService.GetOwnComment(user, id)
	if apierr != nil {
		return nil, nil, apierr
	}
	return user, comment, nil
}

func commentsAnchor(newsID int64) string {
	return fmt.Sprintf("/news/%d/#comments", newsID)
}
