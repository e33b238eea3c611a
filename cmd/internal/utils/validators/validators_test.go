package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsBadWord(t *testing.T) {
	cases := map[string]bool{
		"Ты редиска!":             true,
		"Какой НЕГОДЯЙ":           true,
		"Редиски":                 false,
		"Обычный комментарий":     false,
		"":                        false,
		"негодяйка тоже попадает": true,
	}

	for text, want := range cases {
		assert.Equal(t, want, ContainsBadWord(text), text)
	}
}

func TestCustomTags(t *testing.T) {
	validate := New()

	type form struct {
		Text     string `validate:"nobadwords"`
		Username string `validate:"username"`
		Password string `validate:"notnumeric"`
		Slug     string `validate:"slug"`
	}

	valid := form{Text: "Хорошая новость", Username: "Лев.Толстой+1@x", Password: "abc12345", Slug: "my-note_1"}
	assert.NoError(t, validate.Struct(&valid))

	cases := map[string]form{
		"Text":     {Text: "Ты редиска", Username: "user", Password: "abc", Slug: "s"},
		"Username": {Text: "ok", Username: "with space", Password: "abc", Slug: "s"},
		"Password": {Text: "ok", Username: "user", Password: "123456789", Slug: "s"},
		"Slug":     {Text: "ok", Username: "user", Password: "abc", Slug: "заметка"},
	}

	for field, f := range cases {
		err := validate.Struct(&f)
		if assert.Error(t, err, field) {
			assert.Contains(t, err.Error(), "'"+field+"'")
		}
	}
}
