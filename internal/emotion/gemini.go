package emotion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/TechMintOfficial/emotion-verse-recommend/internal/config"
)

const (
	defaultVisionModelName = "gemini-1.5-flash-latest"

	visionSystemInstruction = "You analyze a single photo of a person's face and rate their facial expression. " +
		"Respond with JSON only, no prose and no code fences, in the form " +
		`{"face": true, "scores": {"happiness": 0, "sadness": 0, "anger": 0, "surprise": 0, "fear": 0, "disgust": 0, "neutral": 0}} ` +
		"where scores are 0-100 and sum to roughly 100. " +
		"If the photo contains no human face, respond with {\"face\": false, \"scores\": {}}."
)

// GeminiStrategy is the second remote tier: when a Gemini API key is
// configured it classifies the frame with a vision model. The client is
// rebuilt lazily whenever the stored key changes, since credential
// availability can change at runtime.
type GeminiStrategy struct {
	creds  CredentialSource
	logger zerolog.Logger

	mu        sync.Mutex
	client    *genai.Client
	clientKey string
}

func NewGeminiStrategy(creds CredentialSource, logger zerolog.Logger) *GeminiStrategy {
	return &GeminiStrategy{
		creds:  creds,
		logger: logger.With().Str("strategy", "gemini").Logger(),
	}
}

func (s *GeminiStrategy) Name() string {
	return "gemini"
}

func (s *GeminiStrategy) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		if err := s.client.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("Error closing GenAI client")
		}
		s.client = nil
		s.clientKey = ""
	}
}

func (s *GeminiStrategy) getClient(ctx context.Context) (*genai.Client, error) {
	apiKey, ok := s.creds.GetCredential(config.CredGeminiAPIKey)
	if !ok || apiKey == "" {
		return nil, ErrUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil && s.clientKey == apiKey {
		return s.client, nil
	}
	if s.client != nil {
		_ = s.client.Close()
		s.client = nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	s.client = client
	s.clientKey = apiKey
	return client, nil
}

type visionVerdict struct {
	Face   bool               `json:"face"`
	Scores map[string]float64 `json:"scores"`
}

func (s *GeminiStrategy) Detect(ctx context.Context, frame *Frame) (*Result, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	imageBytes, err := frame.JPEG()
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(defaultVisionModelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(visionSystemInstruction)},
	}

	temp := float32(0.0)
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}

	resp, err := model.GenerateContent(ctx,
		genai.ImageData("jpeg", imageBytes),
		genai.Text("Rate the facial expression in this photo."),
	)
	if err != nil {
		return nil, fmt.Errorf("gemini vision request failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini response was empty")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}

	var verdict visionVerdict
	raw := strings.TrimSpace(strings.Trim(strings.TrimSpace(text.String()), "`"))
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		return nil, fmt.Errorf("failed to parse gemini verdict: %w", err)
	}

	if !verdict.Face {
		s.logger.Debug().Msg("No face in frame")
		return nil, ErrNoFace
	}

	rawLabel, score := dominantScore(verdict.Scores)
	if rawLabel == "" {
		return nil, ErrNoFace
	}

	result := &Result{
		Emotion:    Normalize(rawLabel),
		Confidence: score / 100,
		Timestamp:  time.Now(),
	}
	s.logger.Debug().
		Str("emotion", string(result.Emotion)).
		Float64("confidence", result.Confidence).
		Msg("Detected emotion")
	return result, nil
}
