package search

import "strings"

// normalizeText lowercases text and replaces runs of non-alphanumeric
// characters with single spaces. Apostrophes are kept when they sit between
// two alphanumerics ("mom's") so possessives survive as one token. The same
// normalization is applied to queries and to recipe text, so phrase matching
// is insensitive to punctuation differences like "gluten-free" vs
// "gluten free".
func normalizeText(text string) string {
	lower := strings.ToLower(text)
	runes := []rune(lower)

	var b strings.Builder
	b.Grow(len(lower))
	lastSpace := true

	for i, r := range runes {
		keep := isAlnum(r)
		if r == '\'' && i > 0 && i+1 < len(runes) && isAlnum(runes[i-1]) && isAlnum(runes[i+1]) {
			keep = true
		}
		if keep {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteRune(' ')
			lastSpace = true
		}
	}

	return strings.TrimSpace(b.String())
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// tokenSet returns the set of tokens in already-normalized text.
func tokenSet(normalized string) map[string]bool {
	words := strings.Fields(normalized)
	set := make(map[string]bool, len(words))
	for _, word := range words {
		set[word] = true
	}
	return set
}

// countMatches counts how many required terms appear in the candidate text.
// Terms containing a space are phrases and are tested by substring
// containment on word boundaries; single tokens are tested by membership in
// the token set. Both the terms and the text must already be normalized.
func countMatches(terms []string, normalized string, tokens map[string]bool) int {
	padded := ""
	count := 0
	for _, term := range terms {
		if strings.ContainsRune(term, ' ') {
			if padded == "" {
				padded = " " + normalized + " "
			}
			if strings.Contains(padded, " "+term+" ") {
				count++
			}
			continue
		}
		if tokens[term] {
			count++
		}
	}
	return count
}
