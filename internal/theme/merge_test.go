package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOverrideWinsOnLeaves(t *testing.T) {
	t.Parallel()

	base, _ := DefaultRegistry().Lookup(Light)
	merged := Merge(base, Override{
		Colors:     ColorsOverride{Primary: String("#abc")},
		Typography: TypographyOverride{Body: Number(18)},
		Spacing:    SpacingOverride{Large: Number(32)},
	})

	expected := base.Clone()
	expected.Colors.Primary = "#abc"
	expected.Typography.Body = 18
	expected.Spacing.Large = 32
	assert.Equal(t, expected, merged)
}

func TestMergeDoesNotMutateBase(t *testing.T) {
	t.Parallel()

	base := Theme{
		Colors:     Colors{Primary: "#111", Extra: map[string]string{"link": "#222"}},
		Extensions: map[string]any{"radius": map[string]any{"sm": 2}},
	}
	_ = Merge(base, Override{
		Colors:     ColorsOverride{Extra: map[string]string{"link": "#333"}},
		Extensions: map[string]any{"radius": map[string]any{"sm": 4}},
	})

	assert.Equal(t, "#222", base.Colors.Extra["link"])
	assert.Equal(t, 2, base.Extensions["radius"].(map[string]any)["sm"])
}

func TestMergeExtensions(t *testing.T) {
	t.Parallel()

	base := Theme{Extensions: map[string]any{
		"radius":  map[string]any{"sm": 2, "lg": 8},
		"shadows": []any{"a", "b", "c"},
		"opacity": 0.5,
	}}

	tests := []struct {
		name     string
		override map[string]any
		key      string
		want     any
	}{
		{
			name:     "maps merge key by key",
			override: map[string]any{"radius": map[string]any{"lg": 12, "xl": 16}},
			key:      "radius",
			want:     map[string]any{"sm": 2, "lg": 12, "xl": 16},
		},
		{
			name:     "slices are replaced, not concatenated",
			override: map[string]any{"shadows": []any{"z"}},
			key:      "shadows",
			want:     []any{"z"},
		},
		{
			name:     "scalar replaced",
			override: map[string]any{"opacity": 0.9},
			key:      "opacity",
			want:     0.9,
		},
		{
			name:     "kind mismatch replaces",
			override: map[string]any{"radius": 4},
			key:      "radius",
			want:     4,
		},
		{
			name:     "new key added",
			override: map[string]any{"zIndex": map[string]any{"modal": 100}},
			key:      "zIndex",
			want:     map[string]any{"modal": 100},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			merged := Merge(base, Override{Extensions: tt.override})
			assert.Equal(t, tt.want, merged.Extensions[tt.key])
		})
	}
}

func TestMergeExtraMaps(t *testing.T) {
	t.Parallel()

	base := Theme{Colors: Colors{Extra: map[string]string{"link": "#00f", "muted": "#999"}}}
	merged := Merge(base, Override{Colors: ColorsOverride{Extra: map[string]string{"link": "#0ff", "danger": "#f00"}}})

	assert.Equal(t, map[string]string{"link": "#0ff", "muted": "#999", "danger": "#f00"}, merged.Colors.Extra)
}

func TestMergeEmptyOverrideIsIdentity(t *testing.T) {
	t.Parallel()

	for _, name := range DefaultRegistry().Names() {
		base, ok := DefaultRegistry().Lookup(name)
		require.True(t, ok)
		assert.Equal(t, base, Merge(base, Override{}))
	}
}

func TestOverrideMergedResultIsIndependent(t *testing.T) {
	t.Parallel()

	override := Override{Extensions: map[string]any{"radius": map[string]any{"sm": 2}}}
	merged := Merge(Theme{}, override)
	merged.Extensions["radius"].(map[string]any)["sm"] = 10

	assert.Equal(t, 2, override.Extensions["radius"].(map[string]any)["sm"])
}
