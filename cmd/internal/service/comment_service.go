package service

import (
	"newsnotes/cmd/internal/contract"
	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/domain/policy"
	"newsnotes/cmd/internal/utils"
	"newsnotes/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type CommentRepository interface {
	FindByID(id int64) (*entity.Comment, error)
	Save(comment *entity.Comment) error
	Delete(comment *entity.Comment) error
}

type CommentService struct {
	CommentRepo CommentRepository
	NewsRepo    NewsRepository
	Validate    *validator.Validate
	Policy      *policy.CommentPolicy
}

func NewCommentService(commentRepo CommentRepository, newsRepo NewsRepository, validate *validator.Validate, commentPolicy *policy.CommentPolicy) *CommentService {
	return &CommentService{
		CommentRepo: commentRepo,
		NewsRepo:    newsRepo,
		Validate:    validate,
		Policy:      commentPolicy,
	}
}

func (s *CommentService) CreateComment(actor *entity.User, newsID int64, req *contract.CommentRequest) (*contract.CommentResponse, apierror.ErrorResponse) {
	exists, err := s.NewsRepo.ExistsByID(newsID)
	if err != nil {
		log.Errorf("failed to check news %d: %v", newsID, err)
		return nil, apierror.InternalServerError
	}

	if !exists {
		return nil, apierror.NotFoundError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	comment := &entity.Comment{
		NewsID:    newsID,
		AuthorID:  actor.ID,
		Text:      req.Text,
		CreatedAt: utils.NowUTC(),
	}

	if err = s.CommentRepo.Save(comment); err != nil {
		log.Errorf("failed to save comment: %v", err)
		return nil, apierror.InternalServerError
	}

	comment.Author = *actor
	return toCommentResponse(comment), nil
}

// GetOwnComment returns a comment only to its author; anyone else sees a 404.
func (s *CommentService) GetOwnComment(actor *entity.User, commentID int64) (*contract.CommentResponse, apierror.ErrorResponse) {
	comment, apierr := s.fetchComment(commentID)
	if apierr != nil {
		return nil, apierr
	}

	if perr := s.Policy.CanUpdate(comment, actor); perr != nil {
		return nil, perr
	}

	comment.Author = *actor
	return toCommentResponse(comment), nil
}

// UpdateComment replaces the text of a comment. The news and the author
// of a comment never change.
func (s *CommentService) UpdateComment(actor *entity.User, commentID int64, req *contract.CommentRequest) (*contract.CommentResponse, apierror.ErrorResponse) {
	comment, apierr := s.fetchComment(commentID)
	if apierr != nil {
		return nil, apierr
	}

	if perr := s.Policy.CanUpdate(comment, actor); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	comment.Text = req.Text
	if err := s.CommentRepo.Save(comment); err != nil {
		log.Errorf("failed to update comment %d: %v", comment.ID, err)
		return nil, apierror.InternalServerError
	}

	comment.Author = *actor
	return toCommentResponse(comment), nil
}

// DeleteComment removes a comment and returns the ID of the news it was under.
func (s *CommentService) DeleteComment(actor *entity.User, commentID int64) (int64, apierror.ErrorResponse) {
	comment, apierr := s.fetchComment(commentID)
	if apierr != nil {
		return 0, apierr
	}

	if perr := s.Policy.CanDelete(comment, actor); perr != nil {
		return 0, perr
	}

	if err := s.CommentRepo.Delete(comment); err != nil {
		log.Errorf("failed to delete comment %d: %v", comment.ID, err)
		return 0, apierror.InternalServerError
	}
	return comment.NewsID, nil
}

func (s *CommentService) fetchComment(commentID int64) (*entity.Comment, apierror.ErrorResponse) {
	comment, err := s.CommentRepo.FindByID(commentID)
	if err != nil {
		log.Errorf("failed to fetch comment %d: %v", commentID, err)
		return nil, apierror.InternalServerError
	}
	return comment, nil
}
