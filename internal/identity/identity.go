// Package identity derives reproducible book identifiers.
package identity

import (
	"strings"

	"github.com/google/uuid"
)

// BookID returns a deterministic version-5 UUID for a title/author pair.
// The same pair always yields the same identifier across runs and
// machines, so downstream readers can tie reading progress and
// annotations to it. Title and author are trimmed of surrounding
// whitespace before hashing; no case folding is applied. Empty inputs
// still hash to a valid identifier.
func BookID(title, author string) string {
	name := strings.TrimSpace(title) + "-" + strings.TrimSpace(author)
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(name)).String()
}
