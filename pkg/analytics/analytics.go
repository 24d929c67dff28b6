package analytics

import (
	"sort"
	"strings"
	"unicode"
)

type Analytics struct{}

// commonWords is a map of frequently occurring words that should be ignored
// in frequency analysis. English stopwords plus the boilerplate vocabulary
// of court judgments, which otherwise drowns out the substantive terms.
// This list can be extended as needed.
var commonWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "across": {}, "after": {}, "again": {},
	"against": {}, "all": {}, "also": {}, "although": {}, "am": {}, "among": {},
	"an": {}, "and": {}, "another": {}, "any": {}, "are": {}, "as": {}, "at": {},

	"be": {}, "became": {}, "because": {}, "become": {}, "been": {}, "before": {},
	"behind": {}, "being": {}, "below": {}, "between": {}, "beyond": {},
	"both": {}, "but": {}, "by": {},

	"can": {}, "cannot": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {}, "done": {}, "down": {},
	"during": {},

	"each": {}, "either": {}, "enough": {}, "etc": {}, "even": {}, "ever": {},
	"every": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "hence": {},
	"her": {}, "here": {}, "him": {}, "himself": {}, "his": {}, "how": {},
	"however": {},

	"i": {}, "if": {}, "in": {}, "indeed": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "itself": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "me": {}, "might": {},
	"more": {}, "moreover": {}, "most": {}, "much": {}, "must": {}, "my": {},

	"neither": {}, "never": {}, "no": {}, "nor": {}, "not": {}, "nothing": {},
	"now": {},

	"of": {}, "off": {}, "on": {}, "once": {}, "one": {}, "only": {}, "onto": {},
	"or": {}, "other": {}, "our": {}, "out": {}, "over": {}, "own": {},

	"per": {}, "rather": {},

	"same": {}, "shall": {}, "she": {}, "should": {}, "since": {}, "so": {},
	"some": {}, "such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "then": {},
	"there": {}, "thereafter": {}, "thereby": {}, "therefore": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "thus": {}, "to": {},
	"together": {}, "too": {}, "toward": {}, "towards": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {},

	"very": {}, "via": {}, "vide": {},

	"was": {}, "we": {}, "were": {}, "what": {}, "when": {}, "whence": {},
	"where": {}, "whereas": {}, "whereby": {}, "wherein": {}, "whether": {},
	"which": {}, "while": {}, "who": {}, "whom": {}, "whose": {}, "why": {},
	"will": {}, "with": {}, "within": {}, "without": {}, "would": {},

	"yet": {}, "you": {}, "your": {},

	// Judgment boilerplate
	"aforesaid": {}, "hereinafter": {}, "hereinbefore": {}, "hereto": {},
	"herewith": {}, "honble": {}, "instant": {}, "learned": {}, "namely": {},
	"pursuant": {}, "said": {}, "thereof": {}, "thereto": {}, "whereof": {},
	"mr": {}, "mrs": {}, "md": {}, "vs": {}, "versus": {},
}

// IsStopword checks if a word is a common stopword that should be filtered out.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

// WordFrequency counts word occurrences in cleaned text, skipping stopwords.
// Words are trimmed to their letter/digit core; the trim is Unicode-aware so
// Bengali words count alongside English ones.
func (a *Analytics) WordFrequency(text string) map[string]int {
	words := strings.Fields(strings.ToLower(text)) // strings.Fields handles multiple spaces and newlines
	frequencies := make(map[string]int)

	for _, word := range words {
		// Remove punctuation from word edges
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})

		// Skip if it's a common word or empty after cleaning
		if _, exists := commonWords[word]; exists || word == "" {
			continue
		}

		frequencies[word]++
	}

	return frequencies
}

type wordCount struct {
	Word  string
	Count int
}

func (a *Analytics) TopNWords(text string, n int) []string {
	frequencies := a.WordFrequency(text)

	counts := make([]wordCount, 0, len(frequencies))
	for k, v := range frequencies {
		counts = append(counts, wordCount{k, v})
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	limit := n
	if len(counts) < n {
		limit = len(counts)
	}

	topN := make([]string, limit)
	for i := 0; i < limit; i++ {
		topN[i] = counts[i].Word
	}

	return topN
}
