package emotion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/TechMintOfficial/emotion-verse-recommend/internal/config"
)

const defaultFacePlusEndpoint = "https://api-us.faceplusplus.com/facepp/v3/detect"

// FacePlusStrategy submits frames to the Face++ detect endpoint and picks
// the dominant emotion from the per-face score vector.
type FacePlusStrategy struct {
	creds    CredentialSource
	client   *http.Client
	endpoint string
	logger   zerolog.Logger
}

func NewFacePlusStrategy(creds CredentialSource, logger zerolog.Logger) *FacePlusStrategy {
	return &FacePlusStrategy{
		creds:    creds,
		client:   &http.Client{Timeout: 15 * time.Second},
		endpoint: defaultFacePlusEndpoint,
		logger:   logger.With().Str("strategy", "faceplus").Logger(),
	}
}

func (s *FacePlusStrategy) Name() string {
	return "faceplus"
}

type facePlusResponse struct {
	Faces []struct {
		Attributes struct {
			Emotion map[string]float64 `json:"emotion"`
		} `json:"attributes"`
	} `json:"faces"`
}

func (s *FacePlusStrategy) Detect(ctx context.Context, frame *Frame) (*Result, error) {
	apiKey, okKey := s.creds.GetCredential(config.CredFacePlusAPIKey)
	apiSecret, okSecret := s.creds.GetCredential(config.CredFacePlusAPISecret)
	if !okKey || !okSecret || apiKey == "" || apiSecret == "" {
		return nil, ErrUnavailable
	}

	imageBytes, err := frame.JPEG()
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	_ = writer.WriteField("api_key", apiKey)
	_ = writer.WriteField("api_secret", apiSecret)
	_ = writer.WriteField("return_attributes", "emotion")
	part, err := writer.CreateFormFile("image_file", "face.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(imageBytes); err != nil {
		return nil, fmt.Errorf("failed to write image to form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detect request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detect endpoint returned status %d", resp.StatusCode)
	}

	var parsed facePlusResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode detect response: %w", err)
	}

	if len(parsed.Faces) == 0 {
		s.logger.Debug().Msg("No face in frame")
		return nil, ErrNoFace
	}

	raw, score := dominantScore(parsed.Faces[0].Attributes.Emotion)
	if raw == "" {
		return nil, ErrNoFace
	}

	result := &Result{
		Emotion:    Normalize(raw),
		Confidence: score / 100,
		Timestamp:  time.Now(),
	}
	s.logger.Debug().
		Str("emotion", string(result.Emotion)).
		Float64("confidence", result.Confidence).
		Msg("Detected emotion")
	return result, nil
}

// dominantScore returns the argmax entry of a raw emotion score vector
// (scores on a 0-100 scale).
func dominantScore(scores map[string]float64) (string, float64) {
	best := ""
	bestScore := 0.0
	for raw, score := range scores {
		if best == "" || score > bestScore {
			best = raw
			bestScore = score
		}
	}
	return best, bestScore
}
