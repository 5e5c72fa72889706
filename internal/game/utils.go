package game

import (
	"image/color"
	"strings"
	"unicode/utf8"
)

// glyphWidth is the advance of ebitenutil's debug font.
const glyphWidth = 6

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * clamp01(alpha))}
}

// centerX returns the x at which s is horizontally centred in width pixels.
func centerX(s string, width int) int {
	x := (width - utf8.RuneCountInString(s)*glyphWidth) / 2
	if x < 0 {
		return 0
	}
	return x
}

// wrapText breaks s into lines of at most maxCols runes, splitting on spaces.
// Words longer than maxCols get a line of their own.
func wrapText(s string, maxCols int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if maxCols <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var (
		lines []string
		line  strings.Builder
	)
	for _, w := range words {
		n := utf8.RuneCountInString(line.String())
		if n > 0 && n+1+utf8.RuneCountInString(w) > maxCols {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(w)
	}
	return append(lines, line.String())
}
