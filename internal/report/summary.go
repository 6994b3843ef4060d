package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/register-model/internal/logger"
	"github.com/alexisbeaulieu97/register-model/internal/registration"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#3FB950"})
	skippedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#D29922"})
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F85149"})
)

// Renderer writes the one-line run summary, styled only when the
// destination is a terminal.
type Renderer struct {
	out    io.Writer
	styled bool
}

// NewRenderer returns a Renderer for out. Styling is enabled when out is a
// terminal file descriptor.
func NewRenderer(out io.Writer) *Renderer {
	styled := false
	if f, ok := out.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return &Renderer{out: out, styled: styled}
}

// Summary formats the final line for outcome. err is the fatal error, if any.
func (r *Renderer) Summary(outcome registration.Outcome, err error) string {
	p := outcome.Params
	var line string
	style := successStyle

	switch {
	case err != nil:
		line = fmt.Sprintf("%s %s", logger.GlyphFailure, err.Error())
		style = failureStyle
	case outcome.State == registration.StateAlreadyRegistered:
		line = fmt.Sprintf("%s %s:%s already registered in %s/%s", logger.GlyphSuccess, p.ModelName, p.ModelVersion, p.ResourceGroup, p.WorkspaceName)
	case outcome.State == registration.StateRegistered:
		line = fmt.Sprintf("%s %s:%s registered in %s/%s", logger.GlyphSuccess, p.ModelName, p.ModelVersion, p.ResourceGroup, p.WorkspaceName)
	case outcome.State == registration.StateRegistrationSkipped:
		line = fmt.Sprintf("%s %s:%s not registered (dry run)", logger.GlyphProgress, p.ModelName, p.ModelVersion)
		style = skippedStyle
	default:
		line = fmt.Sprintf("%s run stopped in state %s", logger.GlyphFailure, outcome.State)
		style = failureStyle
	}

	if r.styled {
		return style.Render(line)
	}
	return line
}

// Print writes the summary followed by a newline.
func (r *Renderer) Print(outcome registration.Outcome, err error) error {
	_, werr := fmt.Fprintln(r.out, r.Summary(outcome, err))
	return werr
}
