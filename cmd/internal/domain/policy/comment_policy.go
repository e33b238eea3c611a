package policy

import (
	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/utils/apierror"
)

// CommentPolicy encapsulates the ownership rules for comments.
// Comments are public to read but only their author may change them.
type CommentPolicy struct{}

func NewCommentPolicy() *CommentPolicy {
	return &CommentPolicy{}
}

func (p *CommentPolicy) CanUpdate(comment *entity.Comment, actor *entity.User) apierror.ErrorResponse {
	if comment == nil || !actor.IsAuthor(comment.AuthorID) {
		return apierror.NotFoundError
	}
	return nil
}

func (p *CommentPolicy) CanDelete(comment *entity.Comment, actor *entity.User) apierror.ErrorResponse {
	return p.CanUpdate(comment, actor)
}
