package routes_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"newsnotes/cmd/internal/contract"
	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/utils/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	commentForm  = url.Values{"text": {"Текст комментария"}}
	modifiedForm = url.Values{"text": {"Новый текст"}}
)

func TestAnonymousCannotSubmitComment(t *testing.T) {
	f := newNewsFixture(t)
	before := countComments(t, f.site)
	detailURL := fmt.Sprintf("/news/%d/", f.news.ID)

	resp := f.site.Anonymous().Post(detailURL, commentForm)
	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/auth/login/?next="+detailURL, resp.Location())
	assert.Equal(t, before, countComments(t, f.site))
}

func TestUserCanSubmitComment(t *testing.T) {
	f := newNewsFixture(t)
	before := countComments(t, f.site)

	resp := f.site.ForceLogin(t, f.notAuthor).Post(fmt.Sprintf("/news/%d/", f.news.ID), commentForm)
	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, fmt.Sprintf("/news/%d/#comments", f.news.ID), resp.Location())
	require.Equal(t, before+1, countComments(t, f.site))

	var created entity.Comment
	require.NoError(t, f.site.DB.Order("id desc").First(&created).Error)
	assert.Equal(t, f.news.ID, created.NewsID)
	assert.Equal(t, f.notAuthor.ID, created.AuthorID)
	assert.Equal(t, commentForm.Get("text"), created.Text)
}

func TestCommentOnMissingNews(t *testing.T) {
	f := newNewsFixture(t)
	before := countComments(t, f.site)

	resp := f.site.ForceLogin(t, f.author).Post("/news/999/", commentForm)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, before, countComments(t, f.site))
}

func TestFormRefusesBadWords(t *testing.T) {
	f := newNewsFixture(t)
	client := f.site.ForceLogin(t, f.author)
	before := countComments(t, f.site)

	for _, word := range validators.BadWords {
		for _, text := range []string{"Это " + word + " текст", "ЭТО " + strings.ToUpper(word) + "!"} {
			t.Run(text, func(t *testing.T) {
				resp := client.Post(fmt.Sprintf("/news/%d/", f.news.ID), url.Values{"text": {text}})
				require.Equal(t, http.StatusOK, resp.Code)

				form := resp.Page().(*contract.NewsDetailPage).Form
				require.NotNil(t, form)
				assert.Equal(t, []string{validators.BadWordsWarning}, form.Errors.Field("text"))
				assert.Equal(t, text, form.Text)
				assert.Contains(t, resp.Body.String(), validators.BadWordsWarning)
			})
		}
	}
	assert.Equal(t, before, countComments(t, f.site))
}

func TestEmptyCommentIsRefused(t *testing.T) {
	f := newNewsFixture(t)
	before := countComments(t, f.site)

	resp := f.site.ForceLogin(t, f.author).Post(fmt.Sprintf("/news/%d/", f.news.ID), url.Values{"text": {"   "}})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotEmpty(t, resp.Page().(*contract.NewsDetailPage).Form.Errors.Field("text"))
	assert.Equal(t, before, countComments(t, f.site))
}

func TestAuthorCanEditComment(t *testing.T) {
	f := newNewsFixture(t)

	resp := f.site.ForceLogin(t, f.author).Post(fmt.Sprintf("/edit_comment/%d/", f.comment.ID), modifiedForm)
	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, fmt.Sprintf("/news/%d/#comments", f.news.ID), resp.Location())

	updated := loadComment(t, f.site, f.comment.ID)
	assert.Equal(t, f.comment.NewsID, updated.NewsID)
	assert.Equal(t, f.comment.AuthorID, updated.AuthorID)
	assert.Equal(t, f.comment.CreatedAt, updated.CreatedAt)
	assert.Equal(t, modifiedForm.Get("text"), updated.Text)
}

func TestEditRefusesBadWords(t *testing.T) {
	f := newNewsFixture(t)

	resp := f.site.ForceLogin(t, f.author).Post(fmt.Sprintf("/edit_comment/%d/", f.comment.ID), url.Values{"text": {"Ты негодяй"}})
	require.Equal(t, http.StatusOK, resp.Code)

	page := resp.Page().(*contract.CommentEditPage)
	assert.Equal(t, []string{validators.BadWordsWarning}, page.Form.Errors.Field("text"))
	assert.Equal(t, f.comment.Text, loadComment(t, f.site, f.comment.ID).Text)
}

func TestAuthorCanDeleteComment(t *testing.T) {
	f := newNewsFixture(t)
	client := f.site.ForceLogin(t, f.author)
	before := countComments(t, f.site)

	resp := client.Delete(fmt.Sprintf("/delete_comment/%d/", f.comment.ID))
	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, fmt.Sprintf("/news/%d/#comments", f.news.ID), resp.Location())
	assert.Equal(t, before-1, countComments(t, f.site))

	var left int64
	require.NoError(t, f.site.DB.Model(&entity.Comment{}).Where("id = ?", f.comment.ID).Count(&left).Error)
	assert.Zero(t, left)
}

func TestAuthorCanDeleteCommentWithForm(t *testing.T) {
	f := newNewsFixture(t)
	before := countComments(t, f.site)

	resp := f.site.ForceLogin(t, f.author).Post(fmt.Sprintf("/delete_comment/%d/", f.comment.ID), url.Values{})
	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, before-1, countComments(t, f.site))
}

func TestUserCannotDeleteOthersComment(t *testing.T) {
	f := newNewsFixture(t)
	before := countComments(t, f.site)

	resp := f.site.ForceLogin(t, f.notAuthor).Delete(fmt.Sprintf("/delete_comment/%d/", f.comment.ID))
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, before, countComments(t, f.site))

	kept := loadComment(t, f.site, f.comment.ID)
	assert.Equal(t, f.comment.NewsID, kept.NewsID)
	assert.Equal(t, f.comment.AuthorID, kept.AuthorID)
	assert.Equal(t, f.comment.Text, kept.Text)
}

func TestUserCannotEditOthersComment(t *testing.T) {
	f := newNewsFixture(t)

	resp := f.site.ForceLogin(t, f.notAuthor).Post(fmt.Sprintf("/edit_comment/%d/", f.comment.ID), modifiedForm)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	kept := loadComment(t, f.site, f.comment.ID)
	assert.Equal(t, f.comment.NewsID, kept.NewsID)
	assert.Equal(t, f.comment.AuthorID, kept.AuthorID)
	assert.Equal(t, f.comment.Text, kept.Text)
}

func TestAnonymousCannotDeleteComment(t *testing.T) {
	f := newNewsFixture(t)
	before := countComments(t, f.site)

	resp := f.site.Anonymous().Delete(fmt.Sprintf("/delete_comment/%d/", f.comment.ID))
	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, before, countComments(t, f.site))
}
