package chat

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechMintOfficial/emotion-verse-recommend/internal/emotion"
)

func newTestEngine() *Engine {
	return NewEngine(rand.New(rand.NewSource(1)), zerolog.Nop())
}

func userMessage(text string) Message {
	return Message{
		ID:        text,
		Text:      text,
		Sender:    SenderUser,
		Timestamp: time.Now(),
	}
}

func strptr(s string) *string { return &s }

func TestEngine_ContextBoundedAtTen(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 15; i++ {
		e.Append(userMessage(fmt.Sprintf("msg-%d", i)))
	}

	history := e.History()
	require.Len(t, history, 10)
	assert.Equal(t, "msg-5", history[0].Text, "oldest messages evicted from the front")
	assert.Equal(t, "msg-14", history[9].Text)
}

func TestEngine_RespondAppendsBotMessage(t *testing.T) {
	e := newTestEngine()

	msg := e.Respond(strptr("hello there"), emotion.Happy, LanguageEnglish)

	assert.Equal(t, SenderBot, msg.Sender)
	assert.Equal(t, emotion.Happy, msg.Emotion)
	assert.NotEmpty(t, msg.ID)

	history := e.History()
	require.Len(t, history, 1)
	assert.Equal(t, msg.Text, history[0].Text)
}

func TestEngine_GreetingDrawsFromBank(t *testing.T) {
	e := newTestEngine()

	msg := e.Respond(nil, emotion.Sad, LanguageEnglish)

	var texts []string
	for _, entry := range responseBank[emotion.Sad] {
		texts = append(texts, entry.EN)
	}
	assert.Contains(t, texts, msg.Text)
}

func TestEngine_KeywordOverridesBank(t *testing.T) {
	e := newTestEngine()

	msg := e.Respond(strptr("Can you show me a MOVIE tonight?"), emotion.Happy, LanguageEnglish)

	assert.Contains(t, msg.Text, "movies")
	assert.Contains(t, msg.Text, string(emotion.Happy), "movie reply carries the current emotion")
}

func TestEngine_KeywordPriorityMovieOverSong(t *testing.T) {
	e := newTestEngine()

	msg := e.Respond(strptr("a movie with good music"), emotion.Neutral, LanguageEnglish)

	assert.Contains(t, msg.Text, "movies")
	assert.NotContains(t, msg.Text, "songs")
}

func TestEngine_TamilKeywordAndReply(t *testing.T) {
	e := newTestEngine()

	msg := e.Respond(strptr("எனக்கு ஒரு பாடல் வேணும்"), emotion.Happy, LanguageTamil)

	assert.Equal(t, songReply.TA, msg.Text)
}

func TestEngine_KeywordsMatchAcrossLanguages(t *testing.T) {
	e := newTestEngine()

	// Code-switched input: Tamil keyword, English replies requested.
	// Intent detection spans both keyword tables; only the reply text
	// follows the requested language.
	msg := e.Respond(strptr("ஒரு படம் சொல்லு"), emotion.Happy, LanguageEnglish)

	assert.Contains(t, msg.Text, "movies")
}

func TestEngine_TamilBankResponse(t *testing.T) {
	e := newTestEngine()

	msg := e.Respond(nil, emotion.Fear, LanguageTamil)

	assert.Equal(t, responseBank[emotion.Fear][0].TA, msg.Text)
}

func TestEngine_UnknownEmotionFallsBackToNeutralBank(t *testing.T) {
	e := newTestEngine()

	msg := e.Respond(strptr("just chatting"), emotion.Label("bogus"), LanguageEnglish)

	assert.Equal(t, responseBank[emotion.Neutral][0].EN, msg.Text)
}

func TestEngine_Suggestions(t *testing.T) {
	e := newTestEngine()

	got := e.Suggestions(emotion.Happy, LanguageEnglish)
	assert.Equal(t, suggestionBank[emotion.Happy][LanguageEnglish], got)

	got = e.Suggestions(emotion.Happy, LanguageTamil)
	assert.Equal(t, suggestionBank[emotion.Happy][LanguageTamil], got)
}

func TestEngine_SuggestionsFallbacks(t *testing.T) {
	e := newTestEngine()

	// Disgusted has no suggestion list of its own.
	assert.Equal(t, suggestionBank[emotion.Neutral][LanguageEnglish], e.Suggestions(emotion.Disgusted, LanguageEnglish))

	// An unknown language falls back to English.
	assert.Equal(t, suggestionBank[emotion.Sad][LanguageEnglish], e.Suggestions(emotion.Sad, Language("fr")))
}

func TestEngine_SuggestionsReturnsCopy(t *testing.T) {
	e := newTestEngine()

	got := e.Suggestions(emotion.Happy, LanguageEnglish)
	got[0] = "mutated"

	assert.NotEqual(t, "mutated", e.Suggestions(emotion.Happy, LanguageEnglish)[0])
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LanguageTamil, ParseLanguage("ta"))
	assert.Equal(t, LanguageEnglish, ParseLanguage("en"))
	assert.Equal(t, LanguageEnglish, ParseLanguage(""))
	assert.Equal(t, LanguageEnglish, ParseLanguage("de"))
}

func TestEngine_VariantSelectionStaysInBank(t *testing.T) {
	e := NewEngine(rand.New(rand.NewSource(time.Now().UnixNano())), zerolog.Nop())

	var texts []string
	for _, entry := range responseBank[emotion.Happy] {
		texts = append(texts, entry.EN)
	}

	for i := 0; i < 20; i++ {
		msg := e.Respond(nil, emotion.Happy, LanguageEnglish)
		assert.Contains(t, texts, msg.Text)
		if strings.TrimSpace(msg.Text) == "" {
			t.Fatal("empty bank response")
		}
	}
}
