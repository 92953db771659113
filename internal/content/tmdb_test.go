package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechMintOfficial/emotion-verse-recommend/internal/config"
	"github.com/TechMintOfficial/emotion-verse-recommend/internal/emotion"
)

// mapCreds is an in-memory credential source for provider tests.
type mapCreds map[string]string

func (m mapCreds) GetCredential(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func TestTMDBProvider_NoCredentials(t *testing.T) {
	p := NewTMDBProvider(mapCreds{}, zerolog.Nop())

	_, err := p.Search(context.Background(), emotion.Happy)
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestTMDBProvider_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "comedy", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{
					"id": 42,
					"title": "Paddington 2",
					"overview": "A bear hunts for a pop-up book.",
					"release_date": "2017-11-10",
					"vote_average": 7.8,
					"poster_path": "/paddington.jpg"
				},
				{
					"id": 43,
					"title": "Untitled",
					"overview": "",
					"release_date": "",
					"vote_average": 0
				}
			]
		}`))
	}))
	defer server.Close()

	p := NewTMDBProvider(mapCreds{config.CredTMDBAPIKey: "test-key"}, zerolog.Nop())
	p.baseURL = server.URL
	p.imageURL = "https://img.example/w500"

	items, err := p.Search(context.Background(), emotion.Happy)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "42", items[0].ID)
	assert.Equal(t, "Paddington 2", items[0].Title)
	assert.Equal(t, "comedy", items[0].Genre)
	assert.Equal(t, 2017, items[0].Year)
	assert.Equal(t, 7.8, items[0].Rating)
	assert.Equal(t, "https://img.example/w500/paddington.jpg", items[0].Media)
	assert.Equal(t, "https://www.themoviedb.org/movie/42", items[0].ExternalLink)

	assert.Equal(t, "No description available", items[1].Description)
	assert.Zero(t, items[1].Year)
	assert.Empty(t, items[1].Media)
}

func TestTMDBProvider_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	p := NewTMDBProvider(mapCreds{config.CredTMDBAPIKey: "bad-key"}, zerolog.Nop())
	p.baseURL = server.URL

	_, err := p.Search(context.Background(), emotion.Happy)
	assert.ErrorContains(t, err, "status 401")
}

func TestTMDBProvider_CapsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [
			{"id": 1, "title": "A"}, {"id": 2, "title": "B"}, {"id": 3, "title": "C"},
			{"id": 4, "title": "D"}, {"id": 5, "title": "E"}, {"id": 6, "title": "F"},
			{"id": 7, "title": "G"}, {"id": 8, "title": "H"}, {"id": 9, "title": "I"},
			{"id": 10, "title": "J"}
		]}`))
	}))
	defer server.Close()

	p := NewTMDBProvider(mapCreds{config.CredTMDBAPIKey: "test-key"}, zerolog.Nop())
	p.baseURL = server.URL

	items, err := p.Search(context.Background(), emotion.Neutral)
	require.NoError(t, err)
	assert.Len(t, items, pageSize)
}
