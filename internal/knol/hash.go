package knol

import (
	"crypto/sha256"
	"fmt"
	"slices"
	"strings"

	"github.com/conorfennell/memora/internal/domain"
)

// Normalize concatenates the card's content after cleaning each part.
// It trims whitespace, lowercases, and normalizes line endings for each field
// before joining them. Tags are order-insensitive.
func Normalize(c domain.Content) string {
	normalizePart := func(part string) string {
		p := strings.ToLower(part)
		p = strings.TrimSpace(p)
		p = strings.ReplaceAll(p, "\r\n", "\n")
		return p
	}

	tags := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		if t = normalizePart(t); t != "" {
			tags = append(tags, t)
		}
	}
	slices.Sort(tags)
	tags = slices.Compact(tags)

	return strings.Join([]string{
		normalizePart(c.Front),
		normalizePart(c.Back),
		strings.Join(tags, ","),
	}, "\n")
}

// Hash normalizes the content and returns its SHA-256 hash as a hex string.
func Hash(c domain.Content) string {
	normalized := Normalize(c)
	hashBytes := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%x", hashBytes)
}

// CardHash hashes the content of an existing card.
func CardHash(card domain.Card) string {
	return Hash(domain.Content{Front: card.Front, Back: card.Back, Tags: card.Tags})
}
