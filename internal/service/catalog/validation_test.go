package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMenuName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain name", input: "Grilled salmon"},
		{name: "japanese name", input: "焼肉定食"},
		{name: "ampersand allowed", input: "Fish & Chips"},
		{name: "keyword as part of a word", input: "Dropped beef stew"},
		{name: "max length", input: strings.Repeat("a", 50)},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 51), wantErr: true},
		{name: "sql drop statement", input: "DROP TABLE menu_tbl", wantErr: true},
		{name: "sql select statement", input: "SELECT name secret", wantErr: true},
		{name: "lowercase keyword", input: "delete everything", wantErr: true},
		{name: "union keyword", input: "soup UNION salad", wantErr: true},
		{name: "semicolon", input: "soup; salad", wantErr: true},
		{name: "sql comment", input: "soup -- salad", wantErr: true},
		{name: "block comment open", input: "soup /* salad", wantErr: true},
		{name: "single quoted chunk", input: "the 'special' dish", wantErr: true},
		{name: "double quoted chunk", input: `the "special" dish`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMenuName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMenuName)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSanitizeMenuName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trims whitespace", input: "  Grilled salmon  ", want: "Grilled salmon"},
		{name: "escapes ampersand", input: "Fish & Chips", want: "Fish &amp; Chips"},
		{name: "escapes angle brackets", input: "a<b>c", want: "a&lt;b&gt;c"},
		{name: "plain name untouched", input: "焼肉定食", want: "焼肉定食"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeMenuName(tt.input))
		})
	}
}

// Имя максимальной длины из одних амперсандов проходит валидацию и
// разворачивается в 250 рун: хранилище должно принимать экранированное
// имя целиком.
func TestSanitizeMenuName_WorstCaseExpansion(t *testing.T) {
	input := strings.Repeat("&", 50)

	assert.NoError(t, validateMenuName(input))

	escaped := sanitizeMenuName(input)
	assert.Equal(t, strings.Repeat("&amp;", 50), escaped)
	assert.Len(t, []rune(escaped), 250)
}
