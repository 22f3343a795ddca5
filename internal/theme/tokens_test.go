package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorsGet(t *testing.T) {
	t.Parallel()

	c := Colors{Primary: "#abc", Extra: map[string]string{"link": "#00f"}}

	v, ok := c.Get(ColorPrimary)
	assert.True(t, ok)
	assert.Equal(t, "#abc", v)

	_, ok = c.Get(ColorAccent)
	assert.False(t, ok, "unset required slot reports missing")

	v, ok = c.Get("link")
	assert.True(t, ok)
	assert.Equal(t, "#00f", v)
}

func TestTypographyAndSpacingGet(t *testing.T) {
	t.Parallel()

	light, _ := DefaultRegistry().Lookup(Light)

	size, ok := light.Typography.Get(TypographyCaption)
	assert.True(t, ok)
	assert.Equal(t, 12.0, size)

	_, ok = light.Typography.Get("display")
	assert.False(t, ok)

	gap, ok := light.Spacing.Get(SpacingMedium)
	assert.True(t, ok)
	assert.Equal(t, 16.0, gap)
}

func TestToMapFlattensTokens(t *testing.T) {
	t.Parallel()

	th := Theme{
		Colors:     Colors{Primary: "#abc", Extra: map[string]string{"link": "#00f"}},
		Typography: Typography{Body: 14},
		Extensions: map[string]any{"shadows": []any{"sm", "lg"}},
	}

	doc := th.ToMap()
	colors := doc["colors"].(map[string]any)
	assert.Equal(t, "#abc", colors["primary"])
	assert.Equal(t, "#00f", colors["link"])
	assert.Equal(t, 14.0, doc["typography"].(map[string]any)["body"])
	assert.Equal(t, []any{"sm", "lg"}, doc["shadows"])
}

func TestKeyListsAreCopies(t *testing.T) {
	t.Parallel()

	keys := ColorKeys()
	keys[0] = "mutated"
	assert.Equal(t, ColorPrimary, ColorKeys()[0])
	assert.Len(t, TypographyKeys(), 4)
	assert.Len(t, SpacingKeys(), 3)
}
