// Package chat selects contextual, bilingual bot responses from the
// current emotion and free-text input, over a bounded conversation context.
package chat

import (
	"time"

	"github.com/TechMintOfficial/emotion-verse-recommend/internal/emotion"
)

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Language selects the response language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageTamil   Language = "ta"
)

// ParseLanguage returns the Language for s, defaulting to English.
func ParseLanguage(s string) Language {
	if s == string(LanguageTamil) {
		return LanguageTamil
	}
	return LanguageEnglish
}

// Message is one conversation turn. Ordered by timestamp; the engine owns
// an append-only bounded sequence of these.
type Message struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Sender    Sender        `json:"sender"`
	Timestamp time.Time     `json:"timestamp"`
	Emotion   emotion.Label `json:"emotion,omitempty"`
}
