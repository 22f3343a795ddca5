package components

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/thematic/internal/store"
	"github.com/alexisbeaulieu97/thematic/internal/theme"
)

// TextAlign is horizontal text alignment.
type TextAlign string

const (
	TextAlignAuto    TextAlign = "auto"
	TextAlignLeft    TextAlign = "left"
	TextAlignCenter  TextAlign = "center"
	TextAlignRight   TextAlign = "right"
	TextAlignJustify TextAlign = "justify"
)

// TextProps are the typography props accepted by ThemedText.
type TextProps struct {
	// Variant picks the font size; body when empty.
	Variant theme.TypographyKey
	// Color overrides the theme text color.
	Color            string
	Margin           *float64
	MarginHorizontal *float64
	MarginVertical   *float64
	TextAlign        TextAlign
}

// TextStyle is the computed style for a run of text.
type TextStyle struct {
	Variant          theme.TypographyKey
	FontSize         float64
	Color            string
	Margin           *float64
	MarginHorizontal *float64
	MarginVertical   *float64
	TextAlign        TextAlign
}

// TextStyleFor maps props onto t. An unknown variant falls back to the body
// size.
func TextStyleFor(props TextProps, t theme.Theme) TextStyle {
	variant := props.Variant
	if variant == "" {
		variant = theme.TypographyBody
	}
	size, ok := t.Typography.Get(variant)
	if !ok || size == 0 {
		size = t.Typography.Body
	}

	color := props.Color
	if color == "" {
		color = t.Colors.Text
	}

	return TextStyle{
		Variant:          variant,
		FontSize:         size,
		Color:            color,
		Margin:           clonePtr(props.Margin),
		MarginHorizontal: clonePtr(props.MarginHorizontal),
		MarginVertical:   clonePtr(props.MarginVertical),
		TextAlign:        props.TextAlign,
	}
}

// Lipgloss converts the style for terminal rendering. Terminals have one font
// size, so headings are bold and captions faint instead.
func (s TextStyle) Lipgloss() lipgloss.Style {
	out := lipgloss.NewStyle()
	if s.Color != "" {
		out = out.Foreground(lipgloss.Color(s.Color))
	}

	switch s.Variant {
	case theme.TypographyHeading, theme.TypographySubheading:
		out = out.Bold(true)
	case theme.TypographyCaption:
		out = out.Faint(true)
	}

	mt, mr, mb, ml := box(s.Margin, s.MarginHorizontal, s.MarginVertical)
	out = out.Margin(mt, mr, mb, ml)

	switch s.TextAlign {
	case TextAlignCenter:
		out = out.Align(lipgloss.Center)
	case TextAlignRight:
		out = out.Align(lipgloss.Right)
	case TextAlignLeft, TextAlignJustify:
		out = out.Align(lipgloss.Left)
	}
	return out
}

// ThemedText is a run of text styled from the theme.
type ThemedText struct {
	Content string
	Props   TextProps
}

// NewThemedText creates a ThemedText.
func NewThemedText(content string, props TextProps) *ThemedText {
	return &ThemedText{Content: content, Props: props}
}

// Render draws the text with the theme from the store in ctx. It panics when
// ctx carries no store.
func (t *ThemedText) Render(ctx context.Context) string {
	snapshot := store.Use(ctx)
	return TextStyleFor(t.Props, snapshot.Theme).Lipgloss().Render(t.Content)
}
