package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogMatchesEveryRuleKeyword(t *testing.T) {
	catalog := DefaultCatalog()

	rules := catalog.Rules()
	require.Len(t, rules, 9)

	for i, rule := range rules {
		for _, keyword := range rule.Keywords {
			matched, ok := catalog.MatchRule("so, " + keyword + " today")
			require.True(t, ok, "keyword %q", keyword)

			// A keyword may also trip an earlier rule; the earlier rule then wins.
			first := firstRuleContaining(rules[:i+1], keyword)
			assert.Equal(t, first.Response, matched.Response, "keyword %q", keyword)
		}
	}
}

func firstRuleContaining(rules []ResponseRule, text string) ResponseRule {
	for _, rule := range rules {
		if rule.matches(text) {
			return rule
		}
	}
	return ResponseRule{}
}

func TestCatalogMatchIsCaseInsensitive(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, defaultRules[1].Response, catalog.Match("My THROAT is scratchy"))
}

func TestCatalogMatchEarlierRuleWins(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "fever before emergency", text: "urgent: my fever will not break", want: defaultRules[0].Response},
		{name: "headache before stomach", text: "I have a headache and nausea", want: defaultRules[2].Response},
		{name: "headache before pain substring", text: "terrible headache", want: defaultRules[2].Response},
		{name: "cold before appointment", text: "can I book a visit for my flu", want: defaultRules[5].Response},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Match(tt.text))
		})
	}
}

func TestCatalogMatchFallsBack(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, DefaultFallbackResponse, catalog.Match(""))
	assert.Equal(t, DefaultFallbackResponse, catalog.Match("xyz-unrelated-text"))

	_, ok := catalog.MatchRule("")
	assert.False(t, ok)
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name     string
		fallback string
		rules    []ResponseRule
	}{
		{name: "empty fallback", fallback: " ", rules: nil},
		{name: "no keywords", fallback: "fb", rules: []ResponseRule{{Response: "r"}}},
		{name: "empty keyword", fallback: "fb", rules: []ResponseRule{{Keywords: []string{""}, Response: "r"}}},
		{name: "uppercase keyword", fallback: "fb", rules: []ResponseRule{{Keywords: []string{"Fever"}, Response: "r"}}},
		{name: "empty response", fallback: "fb", rules: []ResponseRule{{Keywords: []string{"fever"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.fallback, tt.rules...)
			assert.Error(t, err)
		})
	}
}

func TestNewCatalogCopiesRules(t *testing.T) {
	keywords := []string{"rash"}
	catalog, err := NewCatalog("fb", ResponseRule{Keywords: keywords, Response: "skin"})
	require.NoError(t, err)

	keywords[0] = "zzz"

	assert.Equal(t, "skin", catalog.Match("a rash appeared"))
	assert.Equal(t, "fb", catalog.Fallback())
}
