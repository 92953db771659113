package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/TechMintOfficial/emotion-verse-recommend/internal/emotion"
)

func TestBooksProvider_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/volumes"), "unexpected path %s", r.URL.Path)
		assert.Equal(t, "comfort healing books", r.URL.Query().Get("q"))
		assert.Equal(t, "relevance", r.URL.Query().Get("orderBy"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"id": "b1",
					"volumeInfo": {
						"title": "A Man Called Ove",
						"authors": ["Fredrik Backman"],
						"description": "A grumpy yet loveable man.",
						"publishedDate": "2014-07-15",
						"averageRating": 4.5,
						"infoLink": "https://books.example/b1",
						"imageLinks": {"thumbnail": "https://img.example/b1.jpg"}
					}
				},
				{
					"id": "b2",
					"volumeInfo": {}
				},
				{
					"id": "b3"
				}
			]
		}`))
	}))
	defer server.Close()

	p, err := NewBooksProvider(zerolog.Nop(), option.WithEndpoint(server.URL))
	require.NoError(t, err)

	items, err := p.Search(context.Background(), emotion.Sad)
	require.NoError(t, err)
	require.Len(t, items, 2, "volumes without info are skipped")

	assert.Equal(t, "b1", items[0].ID)
	assert.Equal(t, "A Man Called Ove", items[0].Title)
	assert.Equal(t, "Fredrik Backman", items[0].Author)
	assert.Equal(t, 2014, items[0].Year)
	assert.Equal(t, 4.5, items[0].Rating)
	assert.Equal(t, "https://img.example/b1.jpg", items[0].Media)
	assert.Equal(t, "https://books.example/b1", items[0].ExternalLink)

	assert.Equal(t, "Unknown Title", items[1].Title)
	assert.Equal(t, "Unknown Author", items[1].Author)
	assert.Equal(t, "No description available", items[1].Description)
	assert.Equal(t, googleBooksURL+"b2", items[1].ExternalLink)
}

func TestBooksProvider_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p, err := NewBooksProvider(zerolog.Nop(), option.WithEndpoint(server.URL))
	require.NoError(t, err)

	_, err = p.Search(context.Background(), emotion.Happy)
	assert.ErrorContains(t, err, "book search failed")
}
