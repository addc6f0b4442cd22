package categorizer

import "strings"

// stopWords is the English stop-word list stripped before
// vectorization. Merchant tokens are what carry signal in statement
// narrations; filler words only inflate the vocabulary.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "and", "are", "as", "at", "be", "been", "but", "by",
		"for", "from", "had", "has", "have", "he", "her", "his", "i",
		"in", "is", "it", "its", "me", "my", "no", "not", "of", "on",
		"or", "our", "she", "so", "that", "the", "their", "them",
		"then", "there", "these", "they", "this", "to", "was", "we",
		"were", "which", "will", "with", "you", "your",
	} {
		stopWords[w] = struct{}{}
	}
}

// tokenize normalizes a description for the learned tier: lower-case,
// strip everything but letters to spaces, split, drop stop-words.
func tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			builder.WriteRune(r)
		} else {
			builder.WriteByte(' ')
		}
	}

	fields := strings.Fields(builder.String())
	tokens := fields[:0]
	for _, f := range fields {
		if _, skip := stopWords[f]; !skip {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
