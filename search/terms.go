package search

import "strings"

// Stop words filtered out of queries: grammatical filler plus the marketing
// vocabulary recipe queries are full of ("best easy dinner recipes").
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "of": true,
	"for": true, "to": true, "in": true, "on": true, "with": true, "without": true,
	"is": true, "are": true, "be": true, "it": true, "that": true, "this": true,
	"you": true, "your": true, "my": true, "our": true, "me": true, "i": true,
	"we": true, "some": true, "any": true, "at": true, "by": true, "from": true,
	"how": true, "what": true, "make": true, "making": true, "made": true,
	"cook": true, "cooking": true, "recipe": true, "recipes": true,
	"idea": true, "ideas": true, "dish": true, "dishes": true,
	"meal": true, "meals": true, "food": true, "foods": true,
	"best": true, "top": true, "easy": true, "quick": true, "simple": true,
	"great": true, "good": true, "delicious": true, "tasty": true,
	"amazing": true, "perfect": true, "favorite": true, "ultimate": true,
	"new": true, "ever": true, "must": true, "try": true, "list": true,
}

// Multi-word dietary, equipment and occasion modifiers recognized as single
// required terms. Entries are in normalized form (lowercase, punctuation
// collapsed to spaces), so "gluten-free" in a query matches "gluten free"
// here after normalization.
var specialPhrases = []string{
	"air fryer",
	"slow cooker",
	"pressure cooker",
	"instant pot",
	"sheet pan",
	"one pot",
	"one pan",
	"dutch oven",
	"gluten free",
	"dairy free",
	"sugar free",
	"nut free",
	"egg free",
	"low carb",
	"low fat",
	"low sodium",
	"high protein",
	"plant based",
	"no bake",
	"no cook",
	"make ahead",
	"meal prep",
	"comfort food",
	"game day",
	"date night",
	"weeknight dinner",
}

// ExtractRequiredTerms derives the keyword terms a strong match for the query
// should contain. Special phrases are matched first and emitted verbatim;
// their constituent words are reserved so they are not re-emitted as single
// tokens. Remaining tokens are appended in query order, skipping stopwords
// and purely numeric tokens. The result may be empty: a query of nothing but
// stopwords and numbers carries no keyword signal.
func ExtractRequiredTerms(query string) []string {
	normalized := normalizeText(query)
	if normalized == "" {
		return nil
	}

	var terms []string
	reserved := map[string]bool{}

	padded := " " + normalized + " "
	for _, phrase := range specialPhrases {
		if !strings.Contains(padded, " "+phrase+" ") {
			continue
		}
		terms = append(terms, phrase)
		for _, word := range strings.Fields(phrase) {
			reserved[word] = true
		}
	}

	for _, token := range strings.Fields(normalized) {
		if isNumeric(token) {
			continue
		}
		if stopWords[token] {
			continue
		}
		if reserved[token] {
			continue
		}
		terms = append(terms, token)
	}

	return terms
}

// isNumeric reports whether the token consists solely of digits.
func isNumeric(token string) bool {
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(token) > 0
}
