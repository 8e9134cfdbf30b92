package moderation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestSplitWords(t *testing.T) {
	req := require.New(t)

	// When
	words := SplitWords(" badger, snake,,badger , ")

	// Then blanks and duplicates are gone
	req.Equal([]string{"badger", "snake"}, words)
}

func TestLoadWords(t *testing.T) {
	req := require.New(t)

	// Given dictionaries with mixed line endings and a file to ignore
	fsys := fstest.MapFS{
		"censored/en.txt":        {Data: []byte("badger\r\nsnake\n\n")},
		"censored/fr.txt":        {Data: []byte("blaireau\nbadger\n")},
		"censored/README.md":     {Data: []byte("not a dictionary")},
		"censored/nested/de.txt": {Data: []byte("dachs\n")},
	}

	// When
	words, err := LoadWords(fsys, "censored")

	// Then
	req.NoError(err)
	req.Equal([]string{"badger", "blaireau", "snake"}, words)
}

func TestLoadWords_Missing_Dir(t *testing.T) {
	_, err := LoadWords(fstest.MapFS{}, "censored")
	require.Error(t, err)
}
