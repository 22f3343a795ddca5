package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/thematic/internal/store"
	"github.com/alexisbeaulieu97/thematic/internal/theme"
	"github.com/alexisbeaulieu97/thematic/internal/ui/components"
)

// View renders the picker.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{titleStyle.Render("thematic • theme picker")}

	if m.hydrating {
		sections = append(sections, fmt.Sprintf("%s loading saved theme…", m.spinner.View()))
	}

	sections = append(sections, sectionStyle.Render("Themes"), m.renderList())
	sections = append(sections, sectionStyle.Render("Preview"), m.renderPreview())
	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderList() string {
	if len(m.names) == 0 {
		return mutedStyle.Render("  no themes available")
	}

	lines := make([]string, 0, len(m.names))
	for i, name := range m.names {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		label := inactiveStyle.Render(name.String())
		if name == m.current {
			label = activeStyle.Render(name.String() + " *")
		}
		lines = append(lines, pointer+label)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPreview() string {
	snapshot := store.Use(m.ctx)

	swatches := make([]string, 0, len(theme.ColorKeys()))
	for _, key := range theme.ColorKeys() {
		value, _ := snapshot.Theme.Colors.Get(key)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("  ")
		swatches = append(swatches, fmt.Sprintf("%s %-10s %s", swatch, key, value))
	}

	card := components.NewThemedView(
		components.ViewProps{Padding: components.Units(8), PaddingHorizontal: components.Units(16)},
		components.NewThemedText(string(snapshot.ThemeName), components.TextProps{Variant: theme.TypographyHeading}),
		components.NewThemedText("Subheading sample", components.TextProps{Variant: theme.TypographySubheading}),
		components.NewThemedText("Body text uses the theme text color.", components.TextProps{}),
		components.NewThemedText("Accent", components.TextProps{Color: snapshot.Theme.Colors.Accent}),
		components.NewThemedText(fmt.Sprintf("caption • body %gpt • spacing %g/%g/%g",
			snapshot.Theme.Typography.Body,
			snapshot.Theme.Spacing.Small, snapshot.Theme.Spacing.Medium, snapshot.Theme.Spacing.Large,
		), components.TextProps{Variant: theme.TypographyCaption}),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card.Render(m.ctx),
		lipgloss.NewStyle().MarginLeft(2).Render(strings.Join(swatches, "\n")),
	)
}
