package search

import (
	"strings"

	"github.com/poiesic/recipebox/core"
)

// normalizeQuery lowercases and trims a query. A blank query normalizes to "".
func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// containsFold reports whether text contains the already normalized needle, ignoring case.
func containsFold(text, needle string) bool {
	return strings.Contains(strings.ToLower(text), needle)
}

// matchesText reports whether the recipe's title or description contains the normalized query.
func matchesText(recipe *core.Recipe, query string) bool {
	return containsFold(recipe.Title, query) || containsFold(recipe.Description, query)
}
