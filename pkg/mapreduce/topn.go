package mapreduce

import (
	"fmt"
	"sort"
	"strings"
)

// isValidKeyword filters obviously broken tokens out of keyword lists:
// unmatched delimiters, trailing separators, unbalanced quotes. OCR and
// content-stream scraping both produce these.
func isValidKeyword(word string) bool {
	if strings.HasSuffix(word, ":") || strings.HasSuffix(word, "=") {
		return false
	}

	if strings.Contains(word, "(") && !strings.Contains(word, ")") {
		return false
	}
	if strings.Contains(word, "[") && !strings.Contains(word, "]") {
		return false
	}
	if strings.Contains(word, "{") && !strings.Contains(word, "}") {
		return false
	}

	if strings.Count(word, "\"")%2 != 0 {
		return false
	}
	if strings.Count(word, "'")%2 != 0 {
		return false
	}

	return true
}

// TopKeywords returns the top N keywords from aggregated word counts as
// formatted "word:count" strings (e.g., "appellant:1153").
func TopKeywords(wordCounts map[string]int, n int) []string {
	type kv struct {
		Key   string
		Value int
	}

	var ss []kv
	for k, v := range wordCounts {
		if isValidKeyword(k) {
			ss = append(ss, kv{k, v})
		}
	}

	sort.Slice(ss, func(i, j int) bool {
		return ss[i].Value > ss[j].Value
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}

	return keywords
}
