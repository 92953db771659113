package emotion

import "image"

// defaultSkinRatio is the fraction of skin-toned pixels above which a frame
// is considered to contain a face.
const defaultSkinRatio = 0.02

// FacePresenceGate is a coarse admission filter run before classification.
// It is not a face detector: false positives and negatives are acceptable
// because the classifier output is confidence-gated downstream.
type FacePresenceGate struct {
	ratio float64
}

func NewFacePresenceGate() *FacePresenceGate {
	return &FacePresenceGate{ratio: defaultSkinRatio}
}

// IsFacePresent reports whether the frame is worth classifying. Pure
// function of pixel content: identical buffers yield identical results.
func (g *FacePresenceGate) IsFacePresent(img image.Image) bool {
	if img == nil {
		return false
	}
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return false
	}

	skin := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r32, g32, b32, _ := img.At(x, y).RGBA()
			r := int(r32 >> 8)
			gc := int(g32 >> 8)
			b := int(b32 >> 8)

			if isSkinTone(r, gc, b) {
				skin++
			}
		}
	}

	return float64(skin)/float64(total) > g.ratio
}

// isSkinTone applies a fixed linear threshold in RGB space.
func isSkinTone(r, g, b int) bool {
	return r > 95 && g > 40 && b > 20 &&
		r > g && r > b &&
		abs(r-g) > 15 && r-b > 15
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
