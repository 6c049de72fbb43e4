package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/dyluth/teamify/internal/store"
)

// MinShortIDLength is the minimum required length for short ID prefixes.
const MinShortIDLength = 6

// maxListedMatches caps how many candidates an ambiguity message lists.
const maxListedMatches = 10

// DrawStore is the subset of store.Client used to resolve draw IDs.
type DrawStore interface {
	GetDraw(ctx context.Context, drawID string) (*store.Draw, error)
	ScanDraws(ctx context.Context, prefix string) ([]string, error)
}

// ResolveDrawID resolves a short ID prefix to a full draw UUID.
//
// A full UUID (36 chars, 4 hyphens) is checked for existence and returned
// as-is. Shorter input must be at least MinShortIDLength characters and
// match exactly one stored draw.
func ResolveDrawID(ctx context.Context, s DrawStore, shortID string) (string, error) {
	shortID = strings.ToLower(strings.TrimSpace(shortID))

	if len(shortID) == 36 && strings.Count(shortID, "-") == 4 {
		if _, err := s.GetDraw(ctx, shortID); err != nil {
			if store.IsNotFound(err) {
				return "", &NotFoundError{ShortID: shortID}
			}
			return "", fmt.Errorf("failed to verify draw existence: %w", err)
		}
		return shortID, nil
	}

	if len(shortID) < MinShortIDLength {
		return "", fmt.Errorf("short ID must be at least %d characters (got %d)", MinShortIDLength, len(shortID))
	}

	matches, err := s.ScanDraws(ctx, shortID)
	if err != nil {
		return "", fmt.Errorf("failed to search for draw: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{ShortID: shortID}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousError{ShortID: shortID, Matches: matches}
	}
}

// NotFoundError indicates no draws matched the short ID.
type NotFoundError struct {
	ShortID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no draws found matching '%s'", e.ShortID)
}

// AmbiguousError indicates multiple draws matched the short ID.
type AmbiguousError struct {
	ShortID string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous short ID '%s' matches %d draws", e.ShortID, len(e.Matches))
}

// Candidates lists the matching IDs for display, capped at ten entries with
// an "...and N more" line.
func (e *AmbiguousError) Candidates() []string {
	shown := min(len(e.Matches), maxListedMatches)
	out := make([]string, 0, shown+1)
	out = append(out, e.Matches[:shown]...)
	if extra := len(e.Matches) - shown; extra > 0 {
		out = append(out, fmt.Sprintf("...and %d more", extra))
	}
	return out
}
