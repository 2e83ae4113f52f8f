// Package blog holds the symposium news posts shown on the public site
// and managed from the admin console.
package blog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Slug      string    `db:"slug" json:"slug"`
	Title     string    `db:"title" json:"title"`
	Author    string    `db:"author" json:"author"`
	Summary   string    `db:"summary" json:"summary"`
	Content   string    `db:"content" json:"content"`
	Published bool      `db:"published" json:"published"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Slugify derives a URL slug from a title: lowercase, alphanumerics
// kept, runs of everything else collapsed to single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
