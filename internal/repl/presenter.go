package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/colonyops/blob/internal/core/styles"
)

// Header introduces every block of output.
const Header = "Blob says:"

// Presenter renders command results and errors for the user.
type Presenter interface {
	Present(lines []string)
	PresentError(err error)
}

// NewPresenter returns a lipgloss presenter for w, or a plain text one when
// plain is set.
func NewPresenter(w io.Writer, palette styles.Palette, plain bool) Presenter {
	if plain {
		return &PlainPresenter{w: w}
	}
	return &StyledPresenter{
		w:      w,
		styles: styles.New(lipgloss.NewRenderer(w), palette),
	}
}

// StyledPresenter draws each result in a bordered block.
type StyledPresenter struct {
	w      io.Writer
	styles styles.Styles
}

func (p *StyledPresenter) Present(lines []string) {
	body := make([]string, len(lines))
	for i, line := range lines {
		body[i] = p.styles.Body.Render(line)
	}
	p.block(body)
}

func (p *StyledPresenter) PresentError(err error) {
	p.block([]string{p.styles.Error.Render(err.Error())})
}

func (p *StyledPresenter) block(body []string) {
	content := p.styles.Header.Render(Header) + "\n" + strings.Join(body, "\n")
	_, _ = fmt.Fprintln(p.w, p.styles.Block.Render(content))
}

// divider separates blocks in plain output.
var divider = strings.Repeat("=", 60)

// PlainPresenter writes unstyled, tab-indented lines between dividers.
type PlainPresenter struct {
	w io.Writer
}

func (p *PlainPresenter) Present(lines []string) {
	p.block(lines)
}

func (p *PlainPresenter) PresentError(err error) {
	p.block([]string{err.Error()})
}

func (p *PlainPresenter) block(lines []string) {
	var b strings.Builder
	b.WriteString(divider + "\n")
	b.WriteString(Header + "\n")
	for _, line := range lines {
		b.WriteString("\t" + line + "\n")
	}
	b.WriteString(divider + "\n")
	_, _ = io.WriteString(p.w, b.String())
}
