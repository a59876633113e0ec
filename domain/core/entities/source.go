package entities

import (
	"net/url"
	"strings"
	"time"

	pkgerrors "infograph-backend/pkg/errors"
)

// Source is a citation-like record attributed to a session. Sources have
// no identity of their own; they live in their session's ordered list.
type Source struct {
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	Snippet    string    `json:"snippet"`
	FetchedAt  time.Time `json:"fetched_at"`
	Confidence float64   `json:"confidence"`
}

// NewSource validates and builds a source fetched at fetchedAt
func NewSource(title, rawURL, snippet string, confidence float64, fetchedAt time.Time) (Source, error) {
	if strings.TrimSpace(title) == "" {
		return Source{}, pkgerrors.NewValidationError("title is required")
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Source{}, pkgerrors.NewValidationError("url must be an absolute URL")
	}
	if confidence < 0 || confidence > 1 {
		return Source{}, pkgerrors.NewValidationError("confidence must be between 0 and 1")
	}

	return Source{
		Title:      title,
		URL:        rawURL,
		Snippet:    snippet,
		FetchedAt:  fetchedAt.UTC(),
		Confidence: confidence,
	}, nil
}
