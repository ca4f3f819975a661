package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const foobarJSON = `{
	"title": "Foobar Deck",
	"cards": [
		{ "front": "Foo", "back": "Bar" },
		{ "front": "Bizz", "back": "bazz" }
	]
}`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(foobarJSON))
	require.NoError(t, err)

	assert.Equal(t, "Foobar Deck", d.Title)
	require.Equal(t, 2, d.Size())
	assert.Equal(t, "Foo", d.Cards[0].Front())
	assert.Equal(t, "Bar", d.Cards[0].Back())
	assert.Equal(t, "Bizz", d.Cards[1].Front())
	assert.Equal(t, "bazz", d.Cards[1].Back())
}

func TestParseRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{title`},
		{"missing title", `{"cards": [{"front": "a", "back": "b"}]}`},
		{"no cards", `{"title": "t", "cards": []}`},
		{"card without back", `{"title": "t", "cards": [{"front": "a"}]}`},
		{"card without front", `{"title": "t", "cards": [{"back": "b"}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			assert.ErrorIs(t, err, ErrInvalidDeck)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")
	require.NoError(t, os.WriteFile(path, []byte(foobarJSON), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Foobar Deck", d.Title)
	assert.Equal(t, 2, d.Size())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultDeck(t *testing.T) {
	d := Default()
	assert.Equal(t, "Foobar Deck", d.Title)
	require.Equal(t, 2, d.Size())
	assert.Equal(t, "Foo", d.Cards[0].Front())
	assert.Equal(t, "bazz", d.Cards[1].Back())
}
