package repository_test

import (
	"errors"
	"testing"

	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/domain/sqlite"
	"newsnotes/cmd/internal/domain/sqlite/repository"
	"newsnotes/cmd/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestExistsBySlugExcludesNote(t *testing.T) {
	db := testutil.NewDB(t, sqlite.NoteModels()...)
	repo := repository.NewNoteRepository(db)
	author := testutil.CreateUser(t, db, "author")
	note := testutil.CreateNote(t, db, author, "Заметка", "Текст", "")

	taken, err := repo.ExistsBySlug(note.Slug, 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsBySlug(note.Slug, note.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestDuplicateSlugIsTranslated(t *testing.T) {
	db := testutil.NewDB(t, sqlite.NoteModels()...)
	repo := repository.NewNoteRepository(db)
	author := testutil.CreateUser(t, db, "author")
	testutil.CreateNote(t, db, author, "Заметка", "Текст", "same")

	err := repo.Save(&entity.Note{Title: "Другая", Text: "Текст", Slug: "same", AuthorID: author.ID})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
}

func TestFindBySlugMissing(t *testing.T) {
	db := testutil.NewDB(t, sqlite.NoteModels()...)

	note, err := repository.NewNoteRepository(db).FindBySlug("nope")
	require.NoError(t, err)
	assert.Nil(t, note)
}
