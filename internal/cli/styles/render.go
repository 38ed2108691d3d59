package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/twinview/internal/domain/build"
)

// Renderer turns command results into styled terminal output.
type Renderer struct {
	theme *Theme
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(theme *Theme) *Renderer {
	if theme == nil {
		theme = NewTheme()
	}
	return &Renderer{theme: theme}
}

// RenderGreeting renders the greet command's reply.
func (r *Renderer) RenderGreeting(message string) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconHand)
	return fmt.Sprintf("%s %s", icon, r.theme.Normal.Render(message))
}

// RenderConfigPath renders the config file location.
func (r *Renderer) RenderConfigPath(path string) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconConfig)
	return fmt.Sprintf("%s Config %s", icon, r.theme.Subtle.Render(path))
}

// RenderError renders an error line.
func (r *Renderer) RenderError(err error) string {
	icon := r.theme.ErrorStyle.Render(IconError)
	return fmt.Sprintf("%s %s", icon, r.theme.ErrorStyle.Render(err.Error()))
}

// RenderVersion renders build info as key/value lines.
func (r *Renderer) RenderVersion(info build.Info) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	key := r.theme.Subtle
	val := r.theme.Highlight

	lines := []string{
		r.theme.Title.Render("twinview"),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconVersion), key.Render("Version"), val.Render(info.Version)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGit), key.Render("Commit"), val.Render(info.Commit)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconInfo), key.Render("Built"), val.Render(info.BuildDate)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGo), key.Render("Go"), val.Render(info.GoVersion)),
		key.Render(build.RepoURL()),
	}
	return r.theme.Box.Render(strings.Join(lines, "\n"))
}
