package extract

import "strings"

// splitSentences splits text on sentence terminators. A terminator only
// ends a sentence when followed by whitespace and an uppercase letter,
// digit or opening quote, which keeps abbreviations intact.
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+2 < len(runes) && isSpace(runes[i+1]) && startsSentence(runes[i+2]) {
			flushSentence(&sentences, &current)
		}
	}
	flushSentence(&sentences, &current)

	return sentences
}

func flushSentence(sentences *[]string, current *strings.Builder) {
	s := strings.TrimSpace(current.String())
	current.Reset()
	if s != "" {
		*sentences = append(*sentences, s)
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func startsSentence(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		return true
	}
	if r >= '0' && r <= '9' {
		return true
	}
	switch r {
	case '"', '“', '(', '[':
		return true
	}
	return false
}

// isDegenerate filters fragments that cannot carry a factual claim.
func isDegenerate(sentence string, minWords int) bool {
	words := strings.Fields(sentence)
	if len(words) < minWords {
		return true
	}
	letters := 0
	for _, r := range sentence {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			letters++
		}
	}
	return letters < 10
}
