// Package measure implements text measurement for layout with the Go fonts.
// It answers the two questions the flex solver asks of text: how large is it
// on one line, and how narrow can it get before a word has to overflow.
package measure

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face measures strings at one font size. It is not safe for concurrent use.
type Face struct {
	face       font.Face
	size       float32
	lineHeight float32
	space      float32
}

// New returns a Face for Go Regular at size pixels.
func New(size float32) (*Face, error) {
	return NewFromTTF(goregular.TTF, size)
}

// NewFromTTF parses a TrueType or OpenType font and returns a Face at size
// pixels.
func NewFromTTF(data []byte, size float32) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("measure: font size must be positive, got %v", size)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("measure: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72, // 1pt == 1px
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("measure: create face: %w", err)
	}

	m := face.Metrics()
	return &Face{
		face:       face,
		size:       size,
		lineHeight: toFloat(m.Height),
		space:      toFloat(font.MeasureString(face, " ")),
	}, nil
}

// Size returns the font size in pixels.
func (f *Face) Size() float32 { return f.size }

// LineHeight returns the distance between two baselines.
func (f *Face) LineHeight() float32 { return f.lineHeight }

// Ascent returns the distance from the top of a line to its baseline.
func (f *Face) Ascent() float32 { return toFloat(f.face.Metrics().Ascent) }

// FontFace exposes the underlying face for rasterisation.
func (f *Face) FontFace() font.Face { return f.face }

// Advance returns the width of s set on a single line.
func (f *Face) Advance(s string) float32 {
	return toFloat(font.MeasureString(f.face, s))
}

// MeasureText returns the size of text. With maxWidth > 0 the text is
// wrapped at word boundaries so no line is wider than maxWidth, unless a
// single word already is.
func (f *Face) MeasureText(text string, maxWidth float32) (width, height float32) {
	lines := f.Lines(text, maxWidth)
	for _, l := range lines {
		if w := f.Advance(l); w > width {
			width = w
		}
	}
	return width, float32(len(lines)) * f.lineHeight
}

// MinWidth returns the width of the widest word: text cannot be narrower
// without breaking inside a word.
func (f *Face) MinWidth(text string) float32 {
	var widest float32
	for _, word := range strings.Fields(text) {
		if w := f.Advance(word); w > widest {
			widest = w
		}
	}
	return widest
}

// Lines breaks text into lines no wider than maxWidth. Explicit newlines
// always break. maxWidth <= 0 disables wrapping.
func (f *Face) Lines(text string, maxWidth float32) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		if maxWidth <= 0 {
			lines = append(lines, strings.Join(words, " "))
			continue
		}

		current := words[0]
		width := f.Advance(current)
		for _, word := range words[1:] {
			w := f.Advance(word)
			if width+f.space+w > maxWidth {
				lines = append(lines, current)
				current, width = word, w
				continue
			}
			current += " " + word
			width += f.space + w
		}
		lines = append(lines, current)
	}
	return lines
}

// Close releases the face.
func (f *Face) Close() error {
	return f.face.Close()
}

func toFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
