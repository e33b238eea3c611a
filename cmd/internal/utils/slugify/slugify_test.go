package slugify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Заголовок", "zagolovok"},
		{"Измененный заголовок", "izmenennyij-zagolovok"},
		{"Заметка для удаления", "zametka-dlya-udaleniya"},
		{"Лев Толстой", "lev-tolstoj"},
		{"Объявление", "obyavlenie"},
		{"Щука и ёж", "schuka-i-yozh"},
		{"Note 1", "note-1"},
		{"  --Hello,   World!--  ", "-hello-world-"},
		{"-Draft-", "-draft-"},
		{"Café Noël", "caf-nol"},
		{"東京 2024", "2024"},
		{"«Цитата»", "tsitata"},
		{"Tom & Jerry", "tom-and-jerry"},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Make(tc.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "жё", Truncate("жёлудь", 2))
}
