package moderation

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newModerator(t *testing.T, mask rune, words ...string) *Moderator {
	t.Helper()
	mod, err := NewModerator(words, mask, logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)
	return mod
}

func TestModerator_Censor_Chat_Lines(t *testing.T) {
	mod := newModerator(t, '#', "snake", "mushroom")

	tests := []struct {
		name  string
		body  string
		want  string
		found []string
	}{
		{
			name:  "custom mask",
			body:  "a snake in chat001",
			want:  "a ##### in chat001",
			found: []string{"snake"},
		},
		{
			name:  "found words follow the text order",
			body:  "mushroom then snake",
			want:  "######## then #####",
			found: []string{"mushroom", "snake"},
		},
		{
			name:  "dots inside the word are masked too",
			body:  "s.n.a.k.e!",
			want:  "#########!",
			found: []string{"snake"},
		},
		{
			name:  "a space splitting the word is masked",
			body:  "mush room",
			want:  "#########",
			found: []string{"mushroom"},
		},
		{
			name:  "leet and upper case",
			body:  "SN4K3 attack",
			want:  "##### attack",
			found: []string{"snake"},
		},
		{
			name:  "clean line is returned as is",
			body:  "see you in the group",
			want:  "see you in the group",
			found: nil,
		},
		{
			name:  "noise only line",
			body:  "... ---",
			want:  "... ---",
			found: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			// When the line is censored
			got, found := mod.Censor(tt.body)

			// Then
			req.Equal(tt.want, got)
			req.Equal(tt.found, found)
		})
	}
}

func TestModerator_Duplicate_Entries_Match_Once(t *testing.T) {
	req := require.New(t)

	// Given three spellings of the same word
	mod := newModerator(t, '*', "Snake", "snake", "SN4KE")

	// When a line holds the word once
	got, found := mod.Censor("hello snake")

	// Then it is reported once
	req.Equal("hello *****", got)
	req.Equal([]string{"snake"}, found)
}

func TestModerator_Noise_Only_Dictionary_Censors_Nothing(t *testing.T) {
	req := require.New(t)

	// Given a dictionary without any letter
	mod := newModerator(t, '*', "...", ",,,", "", "  ", "--")

	// Then no automaton is built
	req.Nil(mod.matcher)

	// And lines, noise included, go through untouched
	got, found := mod.Censor("wait... what -- ok")
	req.Equal("wait... what -- ok", got)
	req.Nil(found)
}

func TestModerator_Nil_Dictionary(t *testing.T) {
	req := require.New(t)

	// Given no dictionary at all
	mod := newModerator(t, '*')

	// Then the moderator is a pass-through
	req.Nil(mod.matcher)
	got, found := mod.Censor("snake")
	req.Equal("snake", got)
	req.Nil(found)
}

func TestModerator_Noise_Entries_Are_Dropped_Beside_Real_Words(t *testing.T) {
	req := require.New(t)

	// Given noise next to a real word
	mod := newModerator(t, '*', "...", "snake")

	// When the line holds both
	got, found := mod.Censor("snake...")

	// Then only the word is masked
	req.Equal("*****...", got)
	req.Equal([]string{"snake"}, found)
}
