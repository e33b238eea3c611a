package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/domain/sqlite"
	"newsnotes/cmd/internal/utils"
	"newsnotes/cmd/internal/utils/slugify"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Password is the password of every fixture user.
const Password = "testpassword1"

// NewDB opens an empty SQLite database in a temp dir, migrated for models.
func NewDB(t testing.TB, models ...any) *gorm.DB {
	t.Helper()

	db, err := sqlite.Init(filepath.Join(t.TempDir(), "test.db"), models...)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func CreateUser(t testing.TB, db *gorm.DB, username string) *entity.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)

	now := utils.NowUTC()
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateNews stores a news item published at date.
func CreateNews(t testing.TB, db *gorm.DB, title string, date time.Time) *entity.News {
	t.Helper()

	news := &entity.News{Title: title, Text: title + " text", Date: date.UnixMilli()}
	require.NoError(t, db.Omit("Comments").Create(news).Error)
	return news
}

func CreateComment(t testing.TB, db *gorm.DB, news *entity.News, author *entity.User, text string, created time.Time) *entity.Comment {
	t.Helper()

	comment := &entity.Comment{
		NewsID:    news.ID,
		AuthorID:  author.ID,
		Text:      text,
		CreatedAt: created.UnixMilli(),
	}
	require.NoError(t, db.Omit("News", "Author").Create(comment).Error)
	return comment
}

// CreateNote stores a note, deriving the slug from the title when slug is
// empty.
func CreateNote(t testing.TB, db *gorm.DB, author *entity.User, title, text, slug string) *entity.Note {
	t.Helper()

	if slug == "" {
		slug = slugify.Truncate(slugify.Make(title), entity.MaxNoteSlugLength)
	}

	note := &entity.Note{Title: title, Text: text, Slug: slug, AuthorID: author.ID}
	require.NoError(t, db.Omit("Author").Create(note).Error)
	return note
}
