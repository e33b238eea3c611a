package service_test

import (
	"net/http"
	"testing"
	"time"

	"newsnotes/cmd/internal/contract"
	"newsnotes/cmd/internal/domain/sqlite"
	"newsnotes/cmd/internal/domain/sqlite/repository"
	"newsnotes/cmd/internal/service"
	"newsnotes/cmd/internal/testutil"
	"newsnotes/cmd/internal/utils/apierror"
	"newsnotes/cmd/internal/utils/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNewsService(t *testing.T) (*service.NewsService, *gorm.DB) {
	t.Helper()

	db := testutil.NewDB(t, sqlite.NewsModels()...)
	return service.NewNewsService(repository.NewNewsRepository(db), validators.New(), 0), db
}

func TestNewsServiceDefaultsPageSize(t *testing.T) {
	news, _ := newNewsService(t)
	assert.Equal(t, contract.NewsCountOnHomePage, news.PerPage)
}

func TestFirstNewsPageAlwaysExists(t *testing.T) {
	news, _ := newNewsService(t)

	page, apierr := news.GetNewsPage(1)
	require.Nil(t, apierr)
	assert.Empty(t, page.ObjectList)
	assert.Equal(t, 1, page.Page.NumPages)

	_, apierr = news.GetNewsPage(2)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestSeedNews(t *testing.T) {
	news, db := newNewsService(t)

	seeds := []*contract.NewsSeed{
		{Title: "  Старая новость ", Text: "Текст", Date: "2024-01-02"},
		{Title: "Свежая новость", Text: "Текст"},
	}

	count, apierr := news.SeedIfEmpty(seeds)
	require.Nil(t, apierr)
	assert.Equal(t, 2, count)

	home, apierr := news.GetHomeNews()
	require.Nil(t, apierr)
	require.Len(t, home, 2)
	assert.Equal(t, "Свежая новость", home[0].Title)
	assert.Equal(t, "Старая новость", home[1].Title)
	assert.Equal(t, "02.01.2024", home[1].Date)

	// A second run leaves the table alone
	count, apierr = news.SeedIfEmpty(seeds)
	require.Nil(t, apierr)
	assert.Zero(t, count)

	var total int64
	require.NoError(t, db.Table("news").Count(&total).Error)
	assert.EqualValues(t, 2, total)
}

func TestSeedNewsRejectsInvalidItems(t *testing.T) {
	news, db := newNewsService(t)
	testutil.CreateNews(t, db, "Existing", time.Now())

	_, apierr := news.SeedNews([]*contract.NewsSeed{{Title: "", Text: "Текст"}})
	require.NotNil(t, apierr)

	serr, ok := apierr.(*apierror.StructuredError)
	require.True(t, ok)
	assert.NotEmpty(t, serr.Errors["title"])

	_, apierr = news.SeedNews([]*contract.NewsSeed{{Title: "Дата", Text: "Текст", Date: "02.01.2024"}})
	require.NotNil(t, apierr)
}
