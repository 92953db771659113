package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/TechMintOfficial/emotion-verse-recommend/internal/auth"
	"github.com/TechMintOfficial/emotion-verse-recommend/internal/chat"
	"github.com/TechMintOfficial/emotion-verse-recommend/internal/content"
	"github.com/TechMintOfficial/emotion-verse-recommend/internal/emotion"
	"github.com/TechMintOfficial/emotion-verse-recommend/internal/store"
)

// maxFrameBytes bounds the size of a pushed still frame.
const maxFrameBytes = 8 << 20

type APIHandler struct {
	scheduler *emotion.Scheduler
	state     *emotion.State
	frames    *emotion.PushFrameSource
	resolver  *content.Resolver
	engine    *chat.Engine
	creds     *store.SQLiteStore

	jwtSecret         string
	adminPasswordHash string

	logger zerolog.Logger
}

func NewAPIHandler(
	scheduler *emotion.Scheduler,
	state *emotion.State,
	frames *emotion.PushFrameSource,
	resolver *content.Resolver,
	engine *chat.Engine,
	creds *store.SQLiteStore,
	jwtSecret string,
	adminPasswordHash string,
	logger zerolog.Logger,
) *APIHandler {
	return &APIHandler{
		scheduler:         scheduler,
		state:             state,
		frames:            frames,
		resolver:          resolver,
		engine:            engine,
		creds:             creds,
		jwtSecret:         jwtSecret,
		adminPasswordHash: adminPasswordHash,
		logger:            logger.With().Str("component", "api").Logger(),
	}
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to encode response")
	}
}

// JWTAuthMiddleware guards the credential-management surface.
func (h *APIHandler) JWTAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header is required", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if _, err := auth.ValidateJWT(h.jwtSecret, tokenString); err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type LoginRequest struct {
	Password string `json:"password"`
}

func (h *APIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if h.adminPasswordHash == "" || !auth.CheckPasswordHash(req.Password, h.adminPasswordHash) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateJWT(h.jwtSecret, "admin")
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to generate JWT")
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// PushFrameHandler accepts an encoded still frame from the capture surface.
func (h *APIHandler) PushFrameHandler(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxFrameBytes))
	if err != nil {
		http.Error(w, "Failed to read frame", http.StatusBadRequest)
		return
	}
	if len(data) == 0 {
		http.Error(w, "Frame body is empty", http.StatusBadRequest)
		return
	}

	if err := h.frames.Push(data); err != nil {
		http.Error(w, "Invalid frame: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *APIHandler) CurrentEmotionHandler(w http.ResponseWriter, r *http.Request) {
	result, ok := h.state.Current()
	if !ok {
		http.Error(w, "No emotion detected yet", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *APIHandler) AnalyzeNowHandler(w http.ResponseWriter, r *http.Request) {
	err := h.scheduler.AnalyzeNow(r.Context())
	switch {
	case errors.Is(err, emotion.ErrInactive):
		http.Error(w, "Capture is not active", http.StatusConflict)
		return
	case errors.Is(err, emotion.ErrBusy):
		http.Error(w, "A classification is already in flight", http.StatusTooManyRequests)
		return
	case err != nil:
		h.logger.Warn().Err(err).Msg("Manual analysis failed")
		http.Error(w, "Analysis failed", http.StatusInternalServerError)
		return
	}

	if result, ok := h.state.Current(); ok {
		h.writeJSON(w, http.StatusOK, result)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) StartCaptureHandler(w http.ResponseWriter, r *http.Request) {
	h.scheduler.Start()
	h.writeJSON(w, http.StatusOK, map[string]bool{"active": true})
}

func (h *APIHandler) StopCaptureHandler(w http.ResponseWriter, r *http.Request) {
	h.scheduler.Stop()
	h.writeJSON(w, http.StatusOK, map[string]bool{"active": false})
}

func (h *APIHandler) CaptureStatusHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]bool{"active": h.scheduler.Active()})
}

func (h *APIHandler) RecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	label, ok := emotion.ParseLabel(chi.URLParam(r, "emotion"))
	if !ok {
		http.Error(w, "Unknown emotion", http.StatusBadRequest)
		return
	}

	recs := h.resolver.Resolve(r.Context(), label)
	h.writeJSON(w, http.StatusOK, recs)
}

type PostChatMessageRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type PostChatMessageResponse struct {
	UserMessage *chat.Message `json:"user_message,omitempty"`
	BotMessage  chat.Message  `json:"bot_message"`
}

// PostChatMessageHandler appends the user message to the context, then
// computes and appends the bot reply. An empty text is a first-contact
// greeting request.
func (h *APIHandler) PostChatMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req PostChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	lang := chat.ParseLanguage(req.Language)
	label := emotion.Neutral
	if result, ok := h.state.Current(); ok {
		label = result.Emotion
	}

	var resp PostChatMessageResponse
	var input *string
	if strings.TrimSpace(req.Text) != "" {
		userMsg := chat.Message{
			ID:        uuid.NewString(),
			Text:      req.Text,
			Sender:    chat.SenderUser,
			Timestamp: time.Now(),
			Emotion:   label,
		}
		h.engine.Append(userMsg)
		resp.UserMessage = &userMsg
		input = &req.Text
	}

	resp.BotMessage = h.engine.Respond(input, label, lang)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *APIHandler) ChatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.engine.History())
}

func (h *APIHandler) SuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	label, ok := emotion.ParseLabel(r.URL.Query().Get("emotion"))
	if !ok {
		label = emotion.Neutral
	}
	lang := chat.ParseLanguage(r.URL.Query().Get("lang"))

	h.writeJSON(w, http.StatusOK, h.engine.Suggestions(label, lang))
}

func (h *APIHandler) ListCredentialsHandler(w http.ResponseWriter, r *http.Request) {
	names, err := h.creds.ListCredentialNames()
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list credentials")
		http.Error(w, "Failed to list credentials", http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}
	h.writeJSON(w, http.StatusOK, map[string][]string{"names": names})
}

type SetCredentialRequest struct {
	Value string `json:"value"`
}

func (h *APIHandler) SetCredentialHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req SetCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Value == "" {
		http.Error(w, "Credential value cannot be empty", http.StatusBadRequest)
		return
	}

	if err := h.creds.SetCredential(name, req.Value); err != nil {
		h.logger.Error().Err(err).Str("name", name).Msg("Failed to store credential")
		http.Error(w, "Failed to store credential", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) ClearCredentialHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.creds.ClearCredential(name); err != nil {
		h.logger.Error().Err(err).Str("name", name).Msg("Failed to clear credential")
		http.Error(w, "Failed to clear credential", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
