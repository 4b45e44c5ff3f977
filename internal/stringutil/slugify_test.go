package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple lowercase", "hello", "hello"},
		{"mixed case", "Meal Week", "meal-week"},
		{"special characters", "foo@bar!baz", "foo-bar-baz"},
		{"consecutive specials", "foo---bar", "foo-bar"},
		{"leading trailing specials", "---foo---", "foo"},
		{"numbers preserved", "week42", "week42"},
		{"umlauts", "Frühstück", "fruehstueck"},
		{"capital umlaut and eszett", "Größe Übersicht", "groesse-uebersicht"},
		{"mixed specials", "Kalorien, Woche! (2025)", "kalorien-woche-2025"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
