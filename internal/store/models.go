package store

import "time"

// Credential is one stored provider credential, keyed by a
// provider-specific name (e.g. "faceplus_api_key"). Values never leave the
// server; only names are listed externally.
type Credential struct {
	Name      string    `json:"name"`
	Value     string    `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}
