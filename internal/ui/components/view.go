package components

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/thematic/internal/store"
	"github.com/alexisbeaulieu97/thematic/internal/theme"
)

// Justify places children along the main axis.
type Justify string

const (
	JustifyStart        Justify = "flex-start"
	JustifyCenter       Justify = "center"
	JustifyEnd          Justify = "flex-end"
	JustifySpaceBetween Justify = "space-between"
	JustifySpaceAround  Justify = "space-around"
	JustifySpaceEvenly  Justify = "space-evenly"
)

// Align places children along the cross axis.
type Align string

const (
	AlignStart    Align = "flex-start"
	AlignCenter   Align = "center"
	AlignEnd      Align = "flex-end"
	AlignStretch  Align = "stretch"
	AlignBaseline Align = "baseline"
)

// Direction is the main axis of a ThemedView.
type Direction int

const (
	DirectionColumn Direction = iota
	DirectionRow
)

// ViewProps are the layout props accepted by ThemedView. Nil pointers and
// empty strings mean "not set".
type ViewProps struct {
	Flex              *float64
	JustifyContent    Justify
	AlignItems        Align
	Padding           *float64
	PaddingHorizontal *float64
	PaddingVertical   *float64
	Margin            *float64
	MarginHorizontal  *float64
	MarginVertical    *float64
	// BackgroundColor overrides the theme background.
	BackgroundColor string
	Direction       Direction
}

// ViewStyle is the computed style for a box. Only props that were set are
// carried over; BackgroundColor is always present.
type ViewStyle struct {
	BackgroundColor   string
	Flex              *float64
	JustifyContent    Justify
	AlignItems        Align
	Padding           *float64
	PaddingHorizontal *float64
	PaddingVertical   *float64
	Margin            *float64
	MarginHorizontal  *float64
	MarginVertical    *float64
}

// ViewStyleFor maps props onto t.
func ViewStyleFor(props ViewProps, t theme.Theme) ViewStyle {
	style := ViewStyle{
		BackgroundColor:   props.BackgroundColor,
		Flex:              clonePtr(props.Flex),
		JustifyContent:    props.JustifyContent,
		AlignItems:        props.AlignItems,
		Padding:           clonePtr(props.Padding),
		PaddingHorizontal: clonePtr(props.PaddingHorizontal),
		PaddingVertical:   clonePtr(props.PaddingVertical),
		Margin:            clonePtr(props.Margin),
		MarginHorizontal:  clonePtr(props.MarginHorizontal),
		MarginVertical:    clonePtr(props.MarginVertical),
	}
	if style.BackgroundColor == "" {
		style.BackgroundColor = t.Colors.Background
	}
	return style
}

// Lipgloss converts the style for terminal rendering. Flex has no terminal
// equivalent and is ignored.
func (s ViewStyle) Lipgloss() lipgloss.Style {
	out := lipgloss.NewStyle()
	if s.BackgroundColor != "" {
		out = out.Background(lipgloss.Color(s.BackgroundColor))
	}

	pt, pr, pb, pl := box(s.Padding, s.PaddingHorizontal, s.PaddingVertical)
	out = out.Padding(pt, pr, pb, pl)

	mt, mr, mb, ml := box(s.Margin, s.MarginHorizontal, s.MarginVertical)
	out = out.Margin(mt, mr, mb, ml)

	switch s.JustifyContent {
	case JustifyCenter, JustifySpaceAround, JustifySpaceEvenly:
		out = out.Align(lipgloss.Center)
	case JustifyEnd:
		out = out.Align(lipgloss.Right)
	}
	switch s.AlignItems {
	case AlignCenter:
		out = out.AlignVertical(lipgloss.Center)
	case AlignEnd:
		out = out.AlignVertical(lipgloss.Bottom)
	}
	return out
}

// ThemedView is a box that paints the theme background behind its children.
type ThemedView struct {
	Props    ViewProps
	Children []Renderable
}

// NewThemedView creates a ThemedView.
func NewThemedView(props ViewProps, children ...Renderable) *ThemedView {
	return &ThemedView{Props: props, Children: children}
}

// Render draws the view with the theme from the store in ctx. It panics when
// ctx carries no store.
func (v *ThemedView) Render(ctx context.Context) string {
	snapshot := store.Use(ctx)
	style := ViewStyleFor(v.Props, snapshot.Theme).Lipgloss()

	views := make([]string, 0, len(v.Children))
	for _, child := range v.Children {
		if child == nil {
			continue
		}
		views = append(views, child.Render(ctx))
	}

	if v.Props.Direction == DirectionRow {
		return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, views...))
}
