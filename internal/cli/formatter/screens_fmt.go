package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatWelcome renders the landing screen with the stage at cursor highlighted.
func FormatWelcome(cursor int) string {
	var b strings.Builder

	b.WriteString(StylePurple.Bold(true).Render("PATHWISE"))
	b.WriteString("\n")
	b.WriteString(Dim("AI career roadmaps for Indian students"))
	b.WriteString("\n\n")
	b.WriteString(StyleFg.Render("Who are you?"))
	b.WriteString("\n\n")

	for i, s := range domain.Stages {
		b.WriteString(stageCard(s, i == cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func stageCard(s domain.Stage, selected bool) string {
	border := ColorDim
	marker := "  "
	if selected {
		border = ColorHeader
		marker = StyleHeader.Render("› ")
	}
	body := StageColor(s).Bold(true).Render(string(s)) + "\n" + Dim(s.Tagline())
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2).
		Width(44).
		Render(body)
	return lipgloss.JoinHorizontal(lipgloss.Center, marker, card)
}

// FormatLoading renders the in-flight request screen.
func FormatLoading(name, spinner string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", spinner, StyleHeader.Render("Analyzing Profile..."))
	fmt.Fprintf(&b, "Crafting a unique path for %s.\n", StyleBlue.Bold(true).Render(name))
	b.WriteString(Dim("Searching Indian educational resources & exams..."))
	b.WriteString("\n")
	return b.String()
}

// KeyStatus describes which credential source is active.
type KeyStatus struct {
	Source    string
	Masked    string
	UpdatedAt *time.Time
}

// FormatKeyStatus renders the credential status report. A nil status
// means no source produced a key.
func FormatKeyStatus(s *KeyStatus) string {
	var b strings.Builder
	b.WriteString(Header("API Key"))
	b.WriteString("\n")

	if s == nil {
		b.WriteString(StyleYellow.Render("No API key configured."))
		b.WriteString("\n")
		b.WriteString(Dim("Run `pathwise key set` or export GEMINI_API_KEY."))
		b.WriteString("\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%s %s\n", Dim("Source: "), StyleGreen.Render(s.Source))
	fmt.Fprintf(&b, "%s %s\n", Dim("Key:    "), StyleFg.Render(s.Masked))
	if s.UpdatedAt != nil {
		fmt.Fprintf(&b, "%s %s\n", Dim("Updated:"), StyleFg.Render(HumanTimestamp(*s.UpdatedAt)))
	}
	return b.String()
}
