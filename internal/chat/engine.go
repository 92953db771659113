package chat

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/TechMintOfficial/emotion-verse-recommend/internal/emotion"
)

// maxContextMessages bounds the conversation context. Oldest messages are
// dropped from the front once the bound is exceeded.
const maxContextMessages = 10

// Engine owns the bounded conversation context and turns an emotion plus
// free-text input into a reply. No other component mutates the context.
type Engine struct {
	mu       sync.Mutex
	messages []Message
	rng      *rand.Rand
	logger   zerolog.Logger
}

// NewEngine builds a conversation engine. rng may be nil, in which case a
// time-seeded source is used; tests inject a seeded one.
func NewEngine(rng *rand.Rand, logger zerolog.Logger) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		rng:    rng,
		logger: logger.With().Str("component", "chat").Logger(),
	}
}

// Append adds a message to the bounded context, evicting from the front
// when the bound is exceeded. Callers append user messages before asking
// for a response; the engine appends its own bot messages.
func (e *Engine) Append(msg Message) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.appendLocked(msg)
}

func (e *Engine) appendLocked(msg Message) {
	e.messages = append(e.messages, msg)
	if len(e.messages) > maxContextMessages {
		e.messages = e.messages[len(e.messages)-maxContextMessages:]
	}
}

// History returns a copy of the current context, oldest first.
func (e *Engine) History() []Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Message, len(e.messages))
	copy(out, e.messages)
	return out
}

// Respond produces the bot reply for the given input and emotion, appends
// it to the context and returns it. A nil input is a first-contact
// greeting. Response selection never fails; there is always a bank to
// draw from.
func (e *Engine) Respond(input *string, label emotion.Label, lang Language) Message {
	e.mu.Lock()
	defer e.mu.Unlock()

	var text string
	switch {
	case input == nil || strings.TrimSpace(*input) == "":
		text = e.pickBankResponse(label, lang)
	default:
		text = e.contextualResponse(*input, label, lang)
	}

	msg := Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    SenderBot,
		Timestamp: time.Now(),
		Emotion:   label,
	}
	e.appendLocked(msg)

	e.logger.Debug().
		Str("emotion", string(label)).
		Str("language", string(lang)).
		Msg("Generated response")
	return msg
}

// contextualResponse applies the keyword override (movie, then song, then
// book; first match wins), then falls back to the emotion bank.
func (e *Engine) contextualResponse(input string, label emotion.Label, lang Language) string {
	lower := strings.ToLower(input)

	if containsAny(lower, movieKeywords) {
		return fmt.Sprintf(movieReply.text(lang), label)
	}
	if containsAny(lower, songKeywords) {
		return songReply.text(lang)
	}
	if containsAny(lower, bookKeywords) {
		return bookReply.text(lang)
	}

	return e.pickBankResponse(label, lang)
}

func (e *Engine) pickBankResponse(label emotion.Label, lang Language) string {
	entries := bankEntries(label)
	return entries[e.rng.Intn(len(entries))].text(lang)
}

// Suggestions returns the localized quick-reply strings for an emotion.
// Display capping is a presentation concern; the engine returns the full
// list.
func (e *Engine) Suggestions(label emotion.Label, lang Language) []string {
	byLang, ok := suggestionBank[label]
	if !ok {
		byLang = suggestionBank[emotion.Neutral]
	}
	suggestions, ok := byLang[lang]
	if !ok {
		suggestions = byLang[LanguageEnglish]
	}
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
