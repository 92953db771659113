package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/TechMintOfficial/emotion-verse-recommend/internal/config"
	"github.com/TechMintOfficial/emotion-verse-recommend/internal/emotion"
)

const (
	defaultSpotifyTokenURL  = "https://accounts.spotify.com/api/token"
	defaultSpotifySearchURL = "https://api.spotify.com/v1/search"
)

// songMoodMap turns an emotion into a Spotify track search term.
var songMoodMap = map[emotion.Label]string{
	emotion.Happy:     "happy upbeat",
	emotion.Sad:       "sad melancholy",
	emotion.Angry:     "angry rock",
	emotion.Surprised: "energetic dance",
	emotion.Fear:      "calm relaxing",
	emotion.Disgusted: "chill ambient",
	emotion.Neutral:   "popular hits",
}

// SpotifyProvider resolves songs via the Spotify search API. A short-lived
// bearer token is obtained through the client-credentials exchange; the
// token source is cached and rebuilt only when the stored credentials
// change.
type SpotifyProvider struct {
	creds     CredentialSource
	limiter   *rate.Limiter
	tokenURL  string
	searchURL string
	logger    zerolog.Logger

	mu         sync.Mutex
	authClient *http.Client
	authID     string
	authSecret string
}

func NewSpotifyProvider(creds CredentialSource, logger zerolog.Logger) *SpotifyProvider {
	return &SpotifyProvider{
		creds:     creds,
		limiter:   rate.NewLimiter(rate.Every(250*time.Millisecond), 4),
		tokenURL:  defaultSpotifyTokenURL,
		searchURL: defaultSpotifySearchURL,
		logger:    logger.With().Str("provider", "spotify").Logger(),
	}
}

func (p *SpotifyProvider) Kind() Kind {
	return KindSong
}

// client returns an HTTP client that injects the client-credentials bearer
// token, or ErrNoCredentials when the exchange cannot even be attempted.
func (p *SpotifyProvider) client(ctx context.Context) (*http.Client, error) {
	clientID, okID := p.creds.GetCredential(config.CredSpotifyClientID)
	clientSecret, okSecret := p.creds.GetCredential(config.CredSpotifyClientSecret)
	if !okID || !okSecret || clientID == "" || clientSecret == "" {
		return nil, ErrNoCredentials
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.authClient != nil && p.authID == clientID && p.authSecret == clientSecret {
		return p.authClient, nil
	}

	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     p.tokenURL,
	}
	// The token source refreshes expired tokens on its own; context here
	// only scopes the exchange requests, so detach it from the caller.
	p.authClient = cfg.Client(context.Background())
	p.authClient.Timeout = 10 * time.Second
	p.authID = clientID
	p.authSecret = clientSecret
	return p.authClient, nil
}

type spotifySearchResponse struct {
	Tracks struct {
		Items []struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Artists []struct {
				Name string `json:"name"`
			} `json:"artists"`
			Album struct {
				Name        string `json:"name"`
				ReleaseDate string `json:"release_date"`
				Images      []struct {
					URL string `json:"url"`
				} `json:"images"`
			} `json:"album"`
			ExternalURLs struct {
				Spotify string `json:"spotify"`
			} `json:"external_urls"`
		} `json:"items"`
	} `json:"tracks"`
}

func (p *SpotifyProvider) Search(ctx context.Context, label emotion.Label) ([]Item, error) {
	client, err := p.client(ctx)
	if err != nil {
		return nil, err
	}

	searchTerm, ok := songMoodMap[label]
	if !ok {
		searchTerm = "popular"
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("q", searchTerm)
	query.Set("type", "track")
	query.Set("limit", strconv.Itoa(pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.searchURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("song search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("song search returned status %d", resp.StatusCode)
	}

	var parsed spotifySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode song search response: %w", err)
	}

	tracks := parsed.Tracks.Items
	if len(tracks) > pageSize {
		tracks = tracks[:pageSize]
	}

	items := make([]Item, 0, len(tracks))
	for _, track := range tracks {
		artist := "Unknown Artist"
		if len(track.Artists) > 0 {
			artist = track.Artists[0].Name
		}

		item := Item{
			ID:           track.ID,
			Title:        track.Name,
			Artist:       artist,
			Description:  fmt.Sprintf("%s - %s", artist, track.Album.Name),
			Genre:        searchTerm,
			ExternalLink: track.ExternalURLs.Spotify,
		}
		if len(track.Album.ReleaseDate) >= 4 {
			if year, err := strconv.Atoi(track.Album.ReleaseDate[:4]); err == nil {
				item.Year = year
			}
		}
		if len(track.Album.Images) > 1 {
			item.Media = track.Album.Images[1].URL
		} else if len(track.Album.Images) > 0 {
			item.Media = track.Album.Images[0].URL
		}
		items = append(items, item)
	}

	p.logger.Debug().Int("count", len(items)).Str("query", searchTerm).Msg("Resolved songs")
	return items, nil
}
