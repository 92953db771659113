// Package content resolves personalized content recommendations across the
// movie, song and book providers, with per-provider degradation to static
// fallback catalogs.
package content

import (
	"context"
	"errors"

	"github.com/TechMintOfficial/emotion-verse-recommend/internal/emotion"
)

// Kind identifies a content category.
type Kind string

const (
	KindMovie Kind = "movie"
	KindSong  Kind = "song"
	KindBook  Kind = "book"
)

// pageSize caps how many items a provider contributes per resolution.
const pageSize = 8

// Item is a provider-agnostic recommendation entry. IDs are unique within
// a single provider response; items carry no cross-provider identity.
type Item struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Artist       string  `json:"artist,omitempty"`
	Author       string  `json:"author,omitempty"`
	Description  string  `json:"description"`
	Genre        string  `json:"genre"`
	Year         int     `json:"year,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	Media        string  `json:"media,omitempty"`
	ExternalLink string  `json:"external_link,omitempty"`
}

// Recommendations is the aggregate of one resolution cycle.
type Recommendations struct {
	Movies []Item `json:"movies"`
	Songs  []Item `json:"songs"`
	Books  []Item `json:"books"`
}

// Provider is one external content source with its own authentication and
// failure mode.
type Provider interface {
	Kind() Kind
	Search(ctx context.Context, label emotion.Label) ([]Item, error)
}

// ErrNoCredentials means the provider's credentials are absent from the
// store. This is a normal state, not a failure; the resolver degrades to
// the fallback catalog.
var ErrNoCredentials = errors.New("provider credentials not configured")

// CredentialSource is the read side of the credential store providers use.
type CredentialSource interface {
	GetCredential(name string) (string, bool)
}
