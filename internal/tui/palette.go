package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/lapclock/internal/command"
	"github.com/jask/lapclock/internal/stopwatch"
)

type palette struct {
	input textinput.Model
	reg   *command.Registry
}

func newPalette(reg *command.Registry) *palette {
	inp := textinput.New()
	inp.Placeholder = "start, pause, lap, reset..."
	inp.Prompt = "cmd> "
	inp.CharLimit = 32
	inp.Focus()
	return &palette{input: inp, reg: reg}
}

func (p *palette) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// choose resolves the typed text, falling back to the first enabled match
// when nothing has been typed.
func (p *palette) choose(e *stopwatch.Engine) (command.Command, error) {
	q := strings.TrimSpace(p.input.Value())
	if q == "" {
		for _, r := range p.reg.Search("", e) {
			if !r.Disabled {
				return p.reg.Resolve(r.ID)
			}
		}
	}
	return p.reg.Resolve(q)
}

func (p *palette) view(e *stopwatch.Engine, width int) string {
	rows := []string{p.input.View()}
	for _, r := range p.reg.Search(p.input.Value(), e) {
		line := fmt.Sprintf("%-10s %s", r.ID, helpDescStyle.Render(r.Desc))
		if r.Disabled {
			line = paletteDisabledStyle.Render(fmt.Sprintf("%-10s %s (%s)", r.ID, r.Desc, r.Reason))
		}
		rows = append(rows, line)
	}
	return paletteStyle.Width(max(20, width-4)).Render(strings.Join(rows, "\n"))
}
