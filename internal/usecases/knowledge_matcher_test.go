package usecases

import (
	"testing"

	"pagemind/internal/entities"
)

func TestSearchKnowledgeNoMatch(t *testing.T) {
	docs := []entities.Document{
		{Name: "shipping", Content: "We ship orders within 2 business days."},
	}

	if got := SearchKnowledge("refund policy", docs); got != "" {
		t.Errorf("expected empty context, got %q", got)
	}
}

func TestSearchKnowledgeFullQuerySubstring(t *testing.T) {
	docs := []entities.Document{
		{Name: "hours", Content: "Our Opening Hours are 9am to 5pm on weekdays."},
	}

	got := SearchKnowledge("opening hours", docs)
	if got != docs[0].Content {
		t.Errorf("expected matching document content verbatim, got %q", got)
	}
}

func TestSearchKnowledgeTokenMatch(t *testing.T) {
	docs := []entities.Document{
		{Name: "shipping", Content: "Shipping takes two days."},
	}

	// "shipping" is longer than three characters and appears in the document
	// even though the full query does not.
	got := SearchKnowledge("what about shipping costs", docs)
	if got != docs[0].Content {
		t.Errorf("expected token match to include document, got %q", got)
	}
}

func TestSearchKnowledgeShortTokensIgnored(t *testing.T) {
	docs := []entities.Document{
		{Name: "faq", Content: "You can pay by card or cash."},
	}

	// Every token is three characters or fewer, so none qualify, and the
	// full query is not a substring either.
	if got := SearchKnowledge("pay by app", docs); got != "" {
		t.Errorf("expected short tokens to be ignored, got %q", got)
	}
}

func TestSearchKnowledgeJoinsMatches(t *testing.T) {
	docs := []entities.Document{
		{Name: "a", Content: "Returns are accepted within 30 days."},
		{Name: "b", Content: "We do not ship internationally."},
		{Name: "c", Content: "Returns must include the receipt."},
	}

	got := SearchKnowledge("returns", docs)
	want := docs[0].Content + "\n\n---\n\n" + docs[2].Content
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSearchKnowledgeCaseInsensitive(t *testing.T) {
	docs := []entities.Document{
		{Name: "promo", Content: "Use code WELCOME for a discount."},
	}

	got := SearchKnowledge("welcome", docs)
	if got != docs[0].Content {
		t.Errorf("expected case-insensitive match, got %q", got)
	}
}
