package content

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	books "google.golang.org/api/books/v1"
	"google.golang.org/api/option"

	"github.com/TechMintOfficial/emotion-verse-recommend/internal/emotion"
)

const googleBooksURL = "https://books.google.com/books?id="

// bookQueryMap turns an emotion into a Google Books search term.
var bookQueryMap = map[emotion.Label]string{
	emotion.Happy:     "uplifting inspirational books",
	emotion.Sad:       "comfort healing books",
	emotion.Angry:     "mindfulness meditation books",
	emotion.Surprised: "adventure mystery books",
	emotion.Fear:      "courage self-help books",
	emotion.Disgusted: "philosophy wisdom books",
	emotion.Neutral:   "bestseller popular books",
}

// BooksProvider resolves books via the Google Books volumes API. The
// public volumes search needs no credentials.
type BooksProvider struct {
	svc     *books.Service
	limiter *rate.Limiter
	logger  zerolog.Logger
}

func NewBooksProvider(logger zerolog.Logger, opts ...option.ClientOption) (*BooksProvider, error) {
	opts = append([]option.ClientOption{option.WithoutAuthentication()}, opts...)
	svc, err := books.NewService(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create books service: %w", err)
	}
	return &BooksProvider{
		svc:     svc,
		limiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 4),
		logger:  logger.With().Str("provider", "googlebooks").Logger(),
	}, nil
}

func (p *BooksProvider) Kind() Kind {
	return KindBook
}

func (p *BooksProvider) Search(ctx context.Context, label emotion.Label) ([]Item, error) {
	searchTerm, ok := bookQueryMap[label]
	if !ok {
		searchTerm = "popular books"
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	res, err := p.svc.Volumes.List(searchTerm).
		MaxResults(pageSize).
		OrderBy("relevance").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("book search failed: %w", err)
	}

	items := make([]Item, 0, len(res.Items))
	for _, volume := range res.Items {
		if len(items) >= pageSize {
			break
		}
		info := volume.VolumeInfo
		if info == nil {
			continue
		}

		item := Item{
			ID:           volume.Id,
			Title:        info.Title,
			Author:       "Unknown Author",
			Description:  info.Description,
			Genre:        searchTerm,
			Rating:       info.AverageRating,
			ExternalLink: info.InfoLink,
		}
		if item.Title == "" {
			item.Title = "Unknown Title"
		}
		if len(info.Authors) > 0 {
			item.Author = info.Authors[0]
		}
		if item.Description == "" {
			item.Description = "No description available"
		}
		if len(info.PublishedDate) >= 4 {
			if year, err := strconv.Atoi(info.PublishedDate[:4]); err == nil {
				item.Year = year
			}
		}
		if info.ImageLinks != nil {
			item.Media = info.ImageLinks.Thumbnail
		}
		if item.ExternalLink == "" {
			item.ExternalLink = googleBooksURL + volume.Id
		}
		items = append(items, item)
	}

	p.logger.Debug().Int("count", len(items)).Str("query", searchTerm).Msg("Resolved books")
	return items, nil
}
