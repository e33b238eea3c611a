package routes_test

import (
	"testing"

	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/testutil"

	"github.com/stretchr/testify/require"
)

type notesFixture struct {
	site   *testutil.Site
	author *entity.User
	reader *entity.User
	note   *entity.Note
}

func newNotesFixture(t *testing.T) *notesFixture {
	t.Helper()

	site := testutil.NewNotesSite(t)
	author := testutil.CreateUser(t, site.DB, "Лев Толстой")

	return &notesFixture{
		site:   site,
		author: author,
		reader: testutil.CreateUser(t, site.DB, "Читатель простой"),
		note:   testutil.CreateNote(t, site.DB, author, "Заголовок", "Текст", ""),
	}
}

func countNotes(t *testing.T, site *testutil.Site) int64 {
	t.Helper()

	var count int64
	require.NoError(t, site.DB.Model(&entity.Note{}).Count(&count).Error)
	return count
}

func loadNote(t *testing.T, site *testutil.Site, id int64) *entity.Note {
	t.Helper()

	var note entity.Note
	require.NoError(t, site.DB.First(&note, id).Error)
	return &note
}
