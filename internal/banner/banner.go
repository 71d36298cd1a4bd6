package banner

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 120

//go:embed logo.txt
var logo string

//go:embed title.txt
var title string

var (
	logoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6007A"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	welcomeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
)

// Welcome is printed under the title.
const Welcome = "Welcome to Polkadot Cloud Project Starter by ⚡WEB3DEV ⚡"

// Center left-pads every line by the same amount so the widest line sits in
// the middle of width. Lines wider than width are not padded.
func Center(lines []string, width int) []string {
	maxLen := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > maxLen {
			maxLen = w
		}
	}

	pad := max(0, (width-maxLen)/2)
	prefix := strings.Repeat(" ", pad)

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = prefix + l
	}
	return out
}

// Lines returns the logo and title art.
func Lines() (logoLines, titleLines []string) {
	return splitArt(logo), splitArt(title)
}

// Render writes the centered logo, title and welcome line to w. A width of
// zero or less falls back to DefaultWidth.
func Render(w io.Writer, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	logoLines, titleLines := Lines()

	var b strings.Builder
	b.WriteString("\n\n")
	for _, l := range Center(logoLines, width) {
		b.WriteString(logoStyle.Render(l))
		b.WriteByte('\n')
	}
	b.WriteString("\n\n")
	for _, l := range Center(titleLines, width) {
		b.WriteString(titleStyle.Render(l))
		b.WriteByte('\n')
	}
	b.WriteString("\n")
	b.WriteString(welcomeStyle.Render(Welcome))
	b.WriteString("\n\n")

	_, err := fmt.Fprint(w, b.String())
	return err
}

func splitArt(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
