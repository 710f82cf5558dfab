package domain_test

import (
	"testing"

	"podcast-recommender/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseLinkStrategy(t *testing.T) {
	assert.Equal(t, domain.LinkByName, domain.ParseLinkStrategy("name"))
	assert.Equal(t, domain.LinkByNameAndCreator, domain.ParseLinkStrategy("name_creator"))
	assert.Equal(t, domain.LinkByNameAndCreator, domain.ParseLinkStrategy(""))
	assert.Equal(t, domain.LinkByNameAndCreator, domain.ParseLinkStrategy("bogus"))
}

func TestLinkStrategy_SearchLink(t *testing.T) {
	item := domain.RecommendationItem{Name: "The Daily", Creator: "The New York Times"}

	assert.Equal(t,
		"https://www.google.com/search?q=The+Daily+podcast",
		domain.LinkByName.SearchLink(item),
	)
	assert.Equal(t,
		"https://www.google.com/search?q=The+Daily+The+New+York+Times+podcast",
		domain.LinkByNameAndCreator.SearchLink(item),
	)
}

func TestLinkStrategy_SearchLink_BlankCreator(t *testing.T) {
	item := domain.RecommendationItem{Name: "SmartLess", Creator: "  "}

	assert.Equal(t,
		"https://www.google.com/search?q=SmartLess+podcast",
		domain.LinkByNameAndCreator.SearchLink(item),
		"blank creators never leak into the query",
	)
}

func TestFillMissingLinks(t *testing.T) {
	items := []domain.RecommendationItem{
		{Name: "Has Link", Link: "https://example.com/feed"},
		{Name: "Needs Link", Creator: "Someone"},
		{Name: "Whitespace Link", Link: "   "},
	}

	domain.FillMissingLinks(items, domain.LinkByName)

	assert.Equal(t, "https://example.com/feed", items[0].Link, "existing links stay untouched")
	assert.Equal(t, "https://www.google.com/search?q=Needs+Link+podcast", items[1].Link)
	assert.Equal(t, "https://www.google.com/search?q=Whitespace+Link+podcast", items[2].Link)
}
