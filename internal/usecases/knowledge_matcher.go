package usecases

import (
	"strings"

	"pagemind/internal/entities"
)

const knowledgeDelimiter = "\n\n---\n\n"

// SearchKnowledge returns the concatenated text of every document that
// matches the query: case-insensitive, the full query as a substring or
// any whitespace token longer than 3 characters. Documents keep store
// order; no ranking, no length cap.
func SearchKnowledge(query string, docs []entities.Document) string {
	q := strings.ToLower(query)
	tokens := tokensOver3(q)

	var matched []string
	for _, doc := range docs {
		text := strings.ToLower(doc.Content)
		if strings.Contains(text, q) || containsAny(text, tokens) {
			matched = append(matched, doc.Content)
		}
	}
	return strings.Join(matched, knowledgeDelimiter)
}

func tokensOver3(q string) []string {
	var out []string
	for _, tok := range strings.Fields(q) {
		if len(tok) > 3 {
			out = append(out, tok)
		}
	}
	return out
}

func containsAny(text string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}
