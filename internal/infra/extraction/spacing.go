package extraction

import (
	"strings"
	"unicode"
)

// IsConcatenated flags OCR output where words have been run together:
// long letter runs without a space, or long lines with almost no spaces.
// More than 30% of substantial lines looking like that marks the whole
// text as concatenated and triggers a second OCR pass.
func IsConcatenated(text string) bool {
	lines := strings.Split(text, "\n")
	substantial := 0
	concatenated := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 20 {
			continue
		}
		substantial++
		if longestLetterRun(line) > 15 {
			concatenated++
			continue
		}
		if len(line) > 30 && strings.Count(line, " ") < 2 {
			concatenated++
		}
	}
	return substantial > 0 && float64(concatenated)/float64(substantial) > 0.3
}

func longestLetterRun(line string) int {
	run, best := 0, 0
	for _, r := range line {
		if unicode.IsLetter(r) {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

// FixSpacing inserts spaces at case-transition and punctuation boundaries.
// Runs after the OCR re-pass; text that already has normal spacing passes
// through unchanged.
func FixSpacing(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)

	runes := []rune(text)
	for i, r := range runes {
		if i > 0 {
			prev := runes[i-1]
			switch {
			// wordBoundary -> "word Boundary"
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				b.WriteRune(' ')
			// rent5000 -> "rent 5000"
			case unicode.IsLetter(prev) && unicode.IsDigit(r):
				b.WriteRune(' ')
			// end.Next -> "end. Next"
			case isSentencePunct(prev) && unicode.IsLetter(r):
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isSentencePunct(r rune) bool {
	switch r {
	case '.', ',', ';', ':', '!', '?':
		return true
	}
	return false
}
