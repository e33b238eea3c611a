package routes_test

import (
	"testing"
	"time"

	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/testutil"

	"github.com/stretchr/testify/require"
)

type newsFixture struct {
	site      *testutil.Site
	author    *entity.User
	notAuthor *entity.User
	news      *entity.News
	comment   *entity.Comment
}

// newNewsFixture sets up a news item carrying one comment by author.
func newNewsFixture(t *testing.T) *newsFixture {
	t.Helper()

	site := testutil.NewNewsSite(t)
	author := testutil.CreateUser(t, site.DB, "Автор")
	news := testutil.CreateNews(t, site.DB, "Заголовок", time.Now())

	return &newsFixture{
		site:      site,
		author:    author,
		notAuthor: testutil.CreateUser(t, site.DB, "Не автор"),
		news:      news,
		comment:   testutil.CreateComment(t, site.DB, news, author, "Текст комментария", time.Now()),
	}
}

func countComments(t *testing.T, site *testutil.Site) int64 {
	t.Helper()

	var count int64
	require.NoError(t, site.DB.Model(&entity.Comment{}).Count(&count).Error)
	return count
}

func loadComment(t *testing.T, site *testutil.Site, id int64) *entity.Comment {
	t.Helper()

	var comment entity.Comment
	require.NoError(t, site.DB.First(&comment, id).Error)
	return &comment
}
