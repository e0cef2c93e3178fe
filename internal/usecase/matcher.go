package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"museumpass/internal/data/entity"
	"museumpass/internal/data/repository"
	"museumpass/pkg/fuzzy"
)

const bookingPhrase = "book me a ticket to"

// museumMatcher resolves free text to a catalog record.
type museumMatcher struct {
	catalog   repository.CatalogRepository
	threshold int
}

func newMuseumMatcher(catalog repository.CatalogRepository, threshold int) *museumMatcher {
	return &museumMatcher{catalog: catalog, threshold: threshold}
}

// Resolve tries an exact title first, then the best fuzzy title at or above
// the threshold.
func (m *museumMatcher) Resolve(ctx context.Context, input string) (*entity.Museum, error) {
	query := strings.TrimSpace(strings.ReplaceAll(cleanInput(input), bookingPhrase, ""))
	if query == "" {
		return nil, fmt.Errorf("%w: %q", ErrMuseumNotFound, input)
	}

	museum, err := m.catalog.FindByTitle(ctx, query)
	if err != nil {
		return nil, err
	}
	if museum != nil {
		return museum, nil
	}

	museum, _, err = m.best(ctx, query)
	if err != nil {
		return nil, err
	}
	if museum == nil {
		return nil, fmt.Errorf("%w: %q", ErrMuseumNotFound, input)
	}
	return museum, nil
}

// best returns the top fuzzy title match for text, or nil when it scores
// below the threshold.
func (m *museumMatcher) best(ctx context.Context, text string) (*entity.Museum, int, error) {
	match, ok := fuzzy.ExtractOne(text, m.catalog.Titles(ctx))
	if !ok || match.Score < m.threshold {
		return nil, match.Score, nil
	}

	museum, err := m.catalog.FindByTitle(ctx, match.Choice)
	if err != nil {
		return nil, 0, err
	}
	return museum, match.Score, nil
}

// cleanInput drops punctuation and lower-cases text.
func cleanInput(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r), r == '_':
			return unicode.ToLower(r)
		default:
			return -1
		}
	}, text)
}
