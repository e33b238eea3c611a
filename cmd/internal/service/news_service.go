package service

import (
	"newsnotes/cmd/internal/contract"
	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/utils"
	"newsnotes/cmd/internal/utils/apierror"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type NewsRepository interface {
	FindLatest(offset, limit int) ([]*entity.NewsSummary, error)
	Count() (int64, error)
	FindByIDWithComments(id int64) (*entity.News, error)
	ExistsByID(id int64) (bool, error)
	Save(news *entity.News) error
	SaveAll(news []*entity.News) error
}

type NewsService struct {
	NewsRepo NewsRepository
	Validate *validator.Validate

	// PerPage caps both the home page and every page of the news list.
	PerPage int
}

func NewNewsService(newsRepo NewsRepository, validate *validator.Validate, perPage int) *NewsService {
	if perPage <= 0 {
		perPage = contract.NewsCountOnHomePage
	}
	return &NewsService{
		NewsRepo: newsRepo,
		Validate: validate,
		PerPage:  perPage,
	}
}

// GetHomeNews returns the freshest news, at most PerPage of them.
func (n *NewsService) GetHomeNews() ([]*contract.NewsResponse, apierror.ErrorResponse) {
	news, err := n.NewsRepo.FindLatest(0, n.PerPage)
	if err != nil {
		log.Errorf("failed to fetch latest news: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNewsSummaryResponses(news), nil
}

// GetNewsPage returns the 1-based page of the news list. The first page
// always exists, even when there is no news at all.
func (n *NewsService) GetNewsPage(number int) (*contract.NewsListPage, apierror.ErrorResponse) {
	count, err := n.NewsRepo.Count()
	if err != nil {
		log.Errorf("failed to count news: %v", err)
		return nil, apierror.InternalServerError
	}

	numPages := int((count + int64(n.PerPage) - 1) / int64(n.PerPage))
	if numPages == 0 {
		numPages = 1
	}

	if number < 1 || number > numPages {
		return nil, apierror.NotFoundError
	}

	news, err := n.NewsRepo.FindLatest((number-1)*n.PerPage, n.PerPage)
	if err != nil {
		log.Errorf("failed to fetch news page %d: %v", number, err)
		return nil, apierror.InternalServerError
	}

	return &contract.NewsListPage{
		ObjectList: toNewsSummaryResponses(news),
		Page: &contract.Pagination{
			Number:   number,
			NumPages: numPages,
			Count:    count,
		},
	}, nil
}

// GetNewsDetail returns a news item together with its comments, oldest first.
func (n *NewsService) GetNewsDetail(id int64) (*contract.NewsResponse, []*contract.CommentResponse, apierror.ErrorResponse) {
	news, err := n.NewsRepo.FindByIDWithComments(id)
	if err != nil {
		log.Errorf("failed to fetch news %d: %v", id, err)
		return nil, nil, apierror.InternalServerError
	}

	if news == nil {
		return nil, nil, apierror.NotFoundError
	}

	comments := make([]*contract.CommentResponse, len(news.Comments))
	for i, comment := range news.Comments {
		comments[i] = toCommentResponse(comment)
	}

	resp := &contract.NewsResponse{
		ID:           news.ID,
		Title:        news.Title,
		Text:         news.Text,
		Date:         utils.FormatDate(news.Date),
		DateMillis:   news.Date,
		CommentCount: int64(len(comments)),
	}
	return resp, comments, nil
}

// SeedNews imports news items in one go. Items without a date are
// published now.
func (n *NewsService) SeedNews(seeds []*contract.NewsSeed) (int, apierror.ErrorResponse) {
	now := utils.NowUTC()
	news := make([]*entity.News, 0, len(seeds))
	for _, seed := range seeds {
		utils.Sanitize(seed)
		if err := n.Validate.Struct(seed); err != nil {
			return 0, apierror.FromValidationError(err)
		}

		date := now
		if seed.Date != "" {
			parsed, err := time.Parse(time.DateOnly, seed.Date)
			if err != nil {
				return 0, apierror.NewFieldError("date", "Enter a valid date.")
			}
			date = parsed.UnixMilli()
		}

		news = append(news, &entity.News{
			Title: seed.Title,
			Text:  seed.Text,
			Date:  date,
		})
	}

	if err := n.NewsRepo.SaveAll(news); err != nil {
		log.Errorf("failed to seed %d news: %v", len(news), err)
		return 0, apierror.InternalServerError
	}
	return len(news), nil
}

// SeedIfEmpty imports seeds only into an empty news table, so restarting
// with the same seed file does not duplicate anything.
func (n *NewsService) SeedIfEmpty(seeds []*contract.NewsSeed) (int, apierror.ErrorResponse) {
	count, err := n.NewsRepo.Count()
	if err != nil {
		log.Errorf("failed to count news: %v", err)
		return 0, apierror.InternalServerError
	}

	if count > 0 {
		return 0, nil
	}
	return n.SeedNews(seeds)
}

func toNewsSummaryResponses(news []*entity.NewsSummary) []*contract.NewsResponse {
	resp := make([]*contract.NewsResponse, len(news))
	for i, item := range news {
		resp[i] = &contract.NewsResponse{
			ID:           item.ID,
			Title:        item.Title,
			Text:         item.Text,
			Date:         utils.FormatDate(item.Date),
			DateMillis:   item.Date,
			CommentCount: item.CommentCount,
		}
	}
	return resp
}

func toCommentResponse(comment *entity.Comment) *contract.CommentResponse {
	return &contract.CommentResponse{
		ID:            comment.ID,
		NewsID:        comment.NewsID,
		AuthorID:      comment.AuthorID,
		AuthorName:    comment.Author.Username,
		Text:          comment.Text,
		Created:       utils.FormatEpoch(comment.CreatedAt),
		CreatedMillis: comment.CreatedAt,
	}
}
