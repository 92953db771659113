// Package emotion implements the emotion signal pipeline: the face presence
// gate, the tiered classifier strategies and the capture scheduler that
// drives them.
package emotion

import (
	"errors"
	"time"
)

// Label is one of the seven canonical mood categories the system reasons
// about. Raw labels from external classifiers are normalized into this set.
type Label string

const (
	Happy     Label = "happy"
	Sad       Label = "sad"
	Angry     Label = "angry"
	Surprised Label = "surprised"
	Fear      Label = "fear"
	Disgusted Label = "disgusted"
	Neutral   Label = "neutral"
)

// Labels lists every valid label, in a fixed order.
func Labels() []Label {
	return []Label{Happy, Sad, Angry, Surprised, Fear, Disgusted, Neutral}
}

// ParseLabel returns the Label for s, or false if s is not one of the seven.
func ParseLabel(s string) (Label, bool) {
	for _, l := range Labels() {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// rawLabelMap translates provider-native emotion names into canonical labels.
var rawLabelMap = map[string]Label{
	"happiness": Happy,
	"happy":     Happy,
	"sadness":   Sad,
	"sad":       Sad,
	"anger":     Angry,
	"angry":     Angry,
	"surprise":  Surprised,
	"surprised": Surprised,
	"fear":      Fear,
	"disgust":   Disgusted,
	"disgusted": Disgusted,
	"neutral":   Neutral,
}

// Normalize maps a raw provider label into the closed label set. Unknown
// labels clamp to Neutral so every consumer downstream can rely on the
// closed set.
func Normalize(raw string) Label {
	if l, ok := rawLabelMap[raw]; ok {
		return l
	}
	return Neutral
}

// Result is one classification outcome. Immutable once created; superseded
// by the next detection cycle.
type Result struct {
	Emotion    Label     `json:"emotion"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// Sentinel errors shared by the pipeline.
var (
	// ErrNoFace is an affirmative "no face in frame" from a remote
	// classifier. It means "no update this cycle", not a failure, and is
	// never papered over by a lower strategy tier.
	ErrNoFace = errors.New("no face detected")

	// ErrUnavailable means a strategy cannot run right now (missing
	// credentials, no loadable pipeline). The next tier is tried.
	ErrUnavailable = errors.New("strategy unavailable")

	// ErrNotReady means the frame source has nothing usable yet.
	ErrNotReady = errors.New("frame source not ready")
)

// CredentialSource is the read side of the credential store the pipeline
// consumes. Absence of a credential is a normal, expected state.
type CredentialSource interface {
	GetCredential(name string) (string, bool)
}
