package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/TechMintOfficial/emotion-verse-recommend/internal/config"
	"github.com/TechMintOfficial/emotion-verse-recommend/internal/emotion"
)

const (
	defaultTMDBBaseURL  = "https://api.themoviedb.org/3"
	defaultTMDBImageURL = "https://image.tmdb.org/t/p/w500"
	tmdbMovieURL        = "https://www.themoviedb.org/movie/"
)

// movieGenreMap turns an emotion into a TMDB search term.
var movieGenreMap = map[emotion.Label]string{
	emotion.Happy:     "comedy",
	emotion.Sad:       "drama",
	emotion.Angry:     "action",
	emotion.Surprised: "thriller",
	emotion.Fear:      "horror",
	emotion.Disgusted: "documentary",
	emotion.Neutral:   "adventure",
}

// TMDBProvider resolves movies via the TMDB search API.
type TMDBProvider struct {
	creds    CredentialSource
	client   *http.Client
	limiter  *rate.Limiter
	baseURL  string
	imageURL string
	logger   zerolog.Logger
}

func NewTMDBProvider(creds CredentialSource, logger zerolog.Logger) *TMDBProvider {
	return &TMDBProvider{
		creds:    creds,
		client:   &http.Client{Timeout: 10 * time.Second},
		limiter:  rate.NewLimiter(rate.Every(250*time.Millisecond), 4),
		baseURL:  defaultTMDBBaseURL,
		imageURL: defaultTMDBImageURL,
		logger:   logger.With().Str("provider", "tmdb").Logger(),
	}
}

func (p *TMDBProvider) Kind() Kind {
	return KindMovie
}

type tmdbSearchResponse struct {
	Results []struct {
		ID          int64   `json:"id"`
		Title       string  `json:"title"`
		Overview    string  `json:"overview"`
		ReleaseDate string  `json:"release_date"`
		VoteAverage float64 `json:"vote_average"`
		PosterPath  string  `json:"poster_path"`
	} `json:"results"`
}

func (p *TMDBProvider) Search(ctx context.Context, label emotion.Label) ([]Item, error) {
	apiKey, ok := p.creds.GetCredential(config.CredTMDBAPIKey)
	if !ok || apiKey == "" {
		return nil, ErrNoCredentials
	}

	searchTerm, ok := movieGenreMap[label]
	if !ok {
		searchTerm = "popular"
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("api_key", apiKey)
	query.Set("query", searchTerm)
	query.Set("sort_by", "popularity.desc")
	query.Set("page", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/search/movie?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("movie search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("movie search returned status %d", resp.StatusCode)
	}

	var parsed tmdbSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode movie search response: %w", err)
	}

	results := parsed.Results
	if len(results) > pageSize {
		results = results[:pageSize]
	}

	items := make([]Item, 0, len(results))
	for _, movie := range results {
		item := Item{
			ID:           strconv.FormatInt(movie.ID, 10),
			Title:        movie.Title,
			Description:  movie.Overview,
			Genre:        searchTerm,
			Rating:       movie.VoteAverage,
			ExternalLink: tmdbMovieURL + strconv.FormatInt(movie.ID, 10),
		}
		if item.Description == "" {
			item.Description = "No description available"
		}
		if len(movie.ReleaseDate) >= 4 {
			if year, err := strconv.Atoi(movie.ReleaseDate[:4]); err == nil {
				item.Year = year
			}
		}
		if movie.PosterPath != "" {
			item.Media = p.imageURL + movie.PosterPath
		}
		items = append(items, item)
	}

	p.logger.Debug().Int("count", len(items)).Str("query", searchTerm).Msg("Resolved movies")
	return items, nil
}
