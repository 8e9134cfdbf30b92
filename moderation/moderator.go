// Package moderation masks forbidden words in message bodies before they are displayed.
package moderation

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Moderator is safe for concurrent use once built.
type Moderator struct {
	matcher *goahocorasick.Machine // nil when there is nothing to match
	mask    rune
}

// textMapping keeps, for each normalized rune, its index in the original text.
type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator builds the Aho-Corasick automaton from the normalized words.
// Words made only of noise are dropped.
func NewModerator(words []string, mask rune, log *slog.Logger) (*Moderator, error) {
	patterns := lo.UniqBy(
		lo.FilterMap(words, func(w string, _ int) ([]rune, bool) {
			p := normalize(w).normalized
			return p, len(p) > 0
		}),
		func(p []rune) string { return string(p) })

	log.Info("Moderation dictionary loaded", "words", len(patterns))
	if len(patterns) == 0 {
		return &Moderator{mask: mask}, nil
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, mask: mask}, nil
}

// Censor replaces every character of a forbidden word with the mask,
// noise inside the word included, and returns the words found.
func (m *Moderator) Censor(original string) (string, []string) {
	if m.matcher == nil {
		return original, nil
	}
	mapping := normalize(original)
	if len(mapping.normalized) == 0 {
		return original, nil
	}
	terms := m.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(terms) == 0 {
		return original, nil
	}

	runes := []rune(original)
	var found []string
	for _, term := range terms {
		start, end := term.Pos, term.Pos+len(term.Word)
		if start < 0 || end > len(mapping.origIdx) {
			continue
		}
		for i := mapping.origIdx[start]; i <= mapping.origIdx[end-1]; i++ {
			runes[i] = m.mask
		}
		found = append(found, string(term.Word))
	}
	return string(runes), found
}

func normalize(input string) textMapping {
	var mapping textMapping
	for i, r := range []rune(input) {
		clean := unleet(r)
		if isNoise(clean) {
			continue
		}
		mapping.normalized = append(mapping.normalized, unicode.ToLower(clean))
		mapping.origIdx = append(mapping.origIdx, i)
	}
	return mapping
}

// unleet maps common leet speak characters back to letters.
func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
