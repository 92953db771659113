package chat

import "github.com/TechMintOfficial/emotion-verse-recommend/internal/emotion"

// bankEntry is one canned response variant with both localizations.
type bankEntry struct {
	EN string
	TA string
}

func (e bankEntry) text(lang Language) string {
	if lang == LanguageTamil && e.TA != "" {
		return e.TA
	}
	return e.EN
}

// responseBank holds the emotion-keyed canned responses. Selection among
// same-emotion variants is uniformly random; emotions without a bank fall
// back to the neutral bank.
var responseBank = map[emotion.Label][]bankEntry{
	emotion.Happy: {
		{
			EN: "I can see you're in a great mood! 😊 That's wonderful to see. Would you like me to suggest some uplifting content to keep those good vibes going?",
			TA: "நீங்கள் நல்ல மனநிலையில் இருப்பதை என்னால் பார்க்க முடிகிறது! 😊 அது பார்க்க அற்புதமாக இருக்கிறது. உங்கள் நல்ல உணர்வுகளை தொடர்ந்து வைக்க சில உற்சாகமான உள்ளடக்கங்களை பரிந்துரைக்கட்டுமா?",
		},
		{
			EN: "Your happiness is contagious! ✨ I love seeing that smile. Let me find some content that matches your joyful energy.",
			TA: "உங்கள் மகிழ்ச்சி பரவக்கூடியது! ✨ அந்த புன்னகையைப் பார்ப்பது எனக்கு மிகவும் பிடிக்கிறது. உங்கள் மகிழ்ச்சியான ஆற்றலுக்கு பொருந்தும் சில உள்ளடக்கங்களைக் கண்டுபிடிக்கிறேன்.",
		},
	},
	emotion.Sad: {
		{
			EN: "I notice you seem a bit down today. 💙 It's okay to feel sad sometimes - emotions are part of being human. Would you like some gentle content to help you process these feelings?",
			TA: "நீங்கள் இன்று கொஞ்சம் மனமுடைந்திருப்பதை என்னால் காண முடிகிறது. 💙 சில சமயங்களில் சோகமாக உணர்வது பரவாயில்லை - உணர்ச்சிகள் மனிதனாக இருப்பதன் ஒரு பகுதி. இந்த உணர்வுகளை சமாளிக்க சில மென்மையான உள்ளடக்கங்கள் வேண்டுமா?",
		},
		{
			EN: "I'm here with you. 🤗 Sometimes we need content that helps us cry it out or find hope again. What would help you most right now?",
			TA: "நான் உங்களுடன் இருக்கிறேன். 🤗 சில சமயங்களில் நமக்கு அழுவதற்கு அல்லது மீண்டும் நம்பிக்கையைக் கண்டுபிடிக்க உதவும் உள்ளடக்கம் தேவைப்படுகிறது. இப்போது உங்களுக்கு எது மிகவும் உதவும்?",
		},
	},
	emotion.Angry: {
		{
			EN: "I can sense some intensity in your emotions right now. 🔥 Anger can be powerful - sometimes we need to channel it or find ways to release it constructively.",
			TA: "இப்போது உங்கள் உணர்ச்சிகளில் சில தீவிரத்தை என்னால் உணர முடிகிறது. 🔥 கோபம் சக்திவாய்ந்ததாக இருக்கலாம் - சில சமயங்களில் நாம் அதை வழிநடத்த வேண்டும் அல்லது அதை ஆக்கபூர்வமாக வெளியிட வழிகளைக் கண்டுபிடிக்க வேண்டும்.",
		},
	},
	emotion.Surprised: {
		{
			EN: "Wow, you look surprised! 😲 I love that expression - there's something exciting about being caught off guard in a good way. Want to explore some mind-blowing content?",
			TA: "ஆஹா, நீங்கள் ஆச்சரியமாக இருக்கிறீர்கள்! 😲 அந்த வெளிப்பாடு எனக்கு மிகவும் பிடிக்கிறது - நல்ல விதத்தில் ஆச்சரியப்படுவதில் ஏதோ உற்சாகமான விஷயம் இருக்கிறது. மனதை வியப்பிக்கும் சில உள்ளடக்கங்களை ஆராய விரும்புகிறீர்களா?",
		},
	},
	emotion.Fear: {
		{
			EN: "I can see you might be feeling a bit scared or anxious. 🤗 That's completely normal. Would you like something comforting, or are you in the mood for some thrills?",
			TA: "நீங்கள் கொஞ்சம் பயமாக அல்லது கவலையாக உணர்கிறீர்கள் என்பதை என்னால் பார்க்க முடிகிறது. 🤗 அது முற்றிலும் இயல்பானது. உங்களுக்கு ஏதாவது ஆறுதல் வேண்டுமா, அல்லது சில சிலிர்ப்பான விஷயங்கள் வேண்டுமா?",
		},
	},
	emotion.Disgusted: {
		{
			EN: "I notice you might be feeling a bit disgusted or uncomfortable. 😔 Sometimes we need content that cleanses the palate or lifts our spirits.",
			TA: "நீங்கள் கொஞ்சம் வெறுப்பாக அல்லது சங்கடமாக உணர்கிறீர்கள் என்பதை என்னால் காண முடிகிறது. 😔 சில சமயங்களில் நமக்கு மனதை சுத்தப்படுத்தும் அல்லது ஆன்மாவை உயர்த்தும் உள்ளடக்கம் தேவைப்படுகிறது.",
		},
	},
	emotion.Neutral: {
		{
			EN: "You seem pretty balanced right now! 😌 That's a great state to be in. What kind of content are you in the mood for?",
			TA: "நீங்கள் இப்போது மிகவும் சமநிலையில் இருக்கிறீர்கள்! 😌 அது ஒரு சிறந்த நிலை. எந்த வகையான உள்ளடக்கத்திற்கு உங்களுக்கு மூட் இருக்கிறது?",
		},
	},
}

// bankEntries returns the canned variants for an emotion, falling back to
// the neutral bank.
func bankEntries(label emotion.Label) []bankEntry {
	if entries, ok := responseBank[label]; ok {
		return entries
	}
	return responseBank[emotion.Neutral]
}

// Keyword tables for intent override. Checked in a fixed priority order
// (movie, then song, then book) across both languages; first match wins.
var (
	movieKeywords = []string{"movie", "film", "சினிமா", "படம்"}
	songKeywords  = []string{"song", "music", "பாடல்", "இசை"}
	bookKeywords  = []string{"book", "read", "புத்தகம்", "படிக்க"}
)

// Templated keyword replies. The movie reply interpolates the current
// emotion label.
var (
	movieReply = bankEntry{
		EN: "I'd love to recommend some great movies that match your %s mood! 🎬",
		TA: "உங்கள் %s உணர்வுக்கு ஏற்ற சில அருமையான படங்களை பரிந்துரைக்கிறேன்! 🎬",
	}
	songReply = bankEntry{
		EN: "I have some amazing songs that fit your current vibe! 🎵",
		TA: "உங்கள் உணர்வுக்கு பொருந்தும் அற்புதமான பாடல்கள் உள்ளன! 🎵",
	}
	bookReply = bankEntry{
		EN: "Let me suggest some wonderful books that align with your current mindset! 📚",
		TA: "உங்கள் மனநிலைக்கு ஏற்ற சில அருமையான புத்தகங்களை பரிந்துரைக்கிறேன்! 📚",
	}
)

// suggestionBank holds the localized quick-reply strings per emotion.
// Emotions without an entry use the neutral list.
var suggestionBank = map[emotion.Label]map[Language][]string{
	emotion.Happy: {
		LanguageEnglish: {"Show me happy movies", "Play upbeat songs", "Suggest inspiring books"},
		LanguageTamil:   {"மகிழ்ச்சியான படங்கள் காட்டு", "உற்சாகமான பாடல்கள் பாடு", "உத்வேகம் தரும் புத்தகங்கள் பரிந்துரை"},
	},
	emotion.Sad: {
		LanguageEnglish: {"Comforting movies", "Soothing music", "Uplifting books"},
		LanguageTamil:   {"ஆறுதல் தரும் படங்கள்", "மனதை அமைதிப்படுத்தும் இசை", "நம்பிக்கை தரும் புத்தகங்கள்"},
	},
	emotion.Angry: {
		LanguageEnglish: {"Action movies", "Intense music", "Calming content"},
		LanguageTamil:   {"அதிரடி படங்கள்", "தீவிரமான இசை", "அமைதிப்படுத்தும் உள்ளடக்கம்"},
	},
	emotion.Surprised: {
		LanguageEnglish: {"Mind-blowing movies", "Amazing discoveries"},
		LanguageTamil:   {"ஆச்சரியமான படங்கள்", "அசத்தும் உள்ளடக்கம்"},
	},
	emotion.Fear: {
		LanguageEnglish: {"Comforting content", "Gentle entertainment"},
		LanguageTamil:   {"ஆறுதல் தரும் உள்ளடக்கம்", "மென்மையான உள்ளடக்கம்"},
	},
	emotion.Neutral: {
		LanguageEnglish: {"Explore all content", "Get personalized suggestions"},
		LanguageTamil:   {"எல்லா உள்ளடக்கமும் ஆராய்", "தனிப்பட்ட பரிந்துரைகள்"},
	},
}
