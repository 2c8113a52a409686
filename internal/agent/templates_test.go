package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackCoversAllCategories(t *testing.T) {
	for _, category := range Categories() {
		text := Fallback(category)
		require.NotEmpty(t, text, "category %s", category)
	}
}

func TestFallbackUnknownCategoryGetsGeneral(t *testing.T) {
	assert.Equal(t, Fallback(CategoryGeneral), Fallback(Category("bogus")))
}

func TestFallbackTemplatesAreDistinct(t *testing.T) {
	seen := make(map[string]Category)
	for _, category := range Categories() {
		text := Fallback(category)
		prev, dup := seen[text]
		require.False(t, dup, "categories %s and %s share a template", prev, category)
		seen[text] = category
	}
}
