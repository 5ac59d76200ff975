package cli

import (
	"fmt"
	"math"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/marcusmichaels/wiggly-border-generator/pkg/pipeline"
)

// tuiCommand creates the tui command for interactive parameter tuning.
func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Tune border parameters interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(newParamModel(c.defaultOptions()), tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return err
			}

			m, ok := final.(paramModel)
			if !ok {
				return nil
			}
			if m.saveErr != nil {
				printError("Save failed: %v", m.saveErr)
				return m.saveErr
			}
			if m.savedPath != "" {
				printSuccess("Saved border")
				printFile(m.savedPath)
			}
			return nil
		},
	}
}

// =============================================================================
// paramModel - Interactive parameter editor
// =============================================================================

// tuiFields describes the tunable parameters, their adjustment step,
// and the lowest value the editor allows.
var tuiFields = []struct {
	name string
	step float64
	min  float64
}{
	{"Amplitude", 0.5, 0},
	{"Segment size", 1, 1},
	{"Stroke inset", 0.5, 0},
	{"Width", 10, 10},
	{"Height", 10, 10},
	{"Seed", 0.5, math.Inf(-1)},
	{"Stroke width", 0.5, 0},
}

// paramModel is the bubbletea model for the parameter editor.
type paramModel struct {
	opts      pipeline.Options
	cursor    int
	curves    int
	spaceW    float64
	spaceH    float64
	status    string
	savedPath string
	saveErr   error
}

// newParamModel creates an editor starting from the given options.
func newParamModel(opts pipeline.Options) paramModel {
	m := paramModel{opts: opts}
	return m.refresh()
}

func (m paramModel) Init() tea.Cmd {
	return nil
}

func (m paramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(tuiFields)-1 {
				m.cursor++
			}
		case "left", "h":
			m = m.adjust(m.cursor, -1).refresh()
		case "right", "l":
			m = m.adjust(m.cursor, +1).refresh()
		case "s":
			m = m.save()
			if m.saveErr != nil {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m paramModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Wiggly Border Controls"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ select  ←/→ adjust  s save svg  q quit"))
	b.WriteString("\n\n")

	for i := range tuiFields {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-14s %s", cursor, tuiFields[i].name, formatParam(m.value(i)))
		if i == m.cursor {
			b.WriteString(StyleHighlight.Render(line))
		} else {
			b.WriteString(StyleValue.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  space %.0f×%.0f · %d curves", m.spaceW, m.spaceH, m.curves)))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render("  " + m.status))
	}
	if m.savedPath != "" {
		b.WriteString("\n")
		b.WriteString(StyleSuccess.Render("  saved " + m.savedPath))
	}

	return b.String()
}

// value reads the parameter at field index i.
func (m paramModel) value(i int) float64 {
	switch i {
	case 0:
		return m.opts.Amplitude
	case 1:
		return m.opts.SegmentSize
	case 2:
		return m.opts.StrokeInset
	case 3:
		return m.opts.Width
	case 4:
		return m.opts.Height
	case 5:
		return m.opts.Seed
	default:
		return m.opts.StrokeWidth
	}
}

// adjust nudges the parameter at field index i by one step in direction dir.
func (m paramModel) adjust(i int, dir float64) paramModel {
	f := tuiFields[i]
	next := m.value(i) + dir*f.step
	if next < f.min {
		next = f.min
	}
	switch i {
	case 0:
		m.opts.Amplitude = next
	case 1:
		m.opts.SegmentSize = next
	case 2:
		m.opts.StrokeInset = next
	case 3:
		m.opts.Width = next
	case 4:
		m.opts.Height = next
	case 5:
		m.opts.Seed = next
	default:
		m.opts.StrokeWidth = next
	}
	return m
}

// refresh regenerates the border and updates the preview stats.
func (m paramModel) refresh() paramModel {
	m.status = ""
	b, err := pipeline.Generate(m.opts)
	if err != nil {
		m.status = err.Error()
		m.curves = 0
		return m
	}
	m.curves = len(b.Path)
	m.spaceW = b.Space.Width
	m.spaceH = b.Space.Height
	return m
}

// save renders the current parameters to an SVG file.
func (m paramModel) save() paramModel {
	b, err := pipeline.Generate(m.opts)
	if err != nil {
		m.status = err.Error()
		return m
	}
	data, err := pipeline.Render(b, pipeline.FormatSVG, m.opts)
	if err != nil {
		m.saveErr = err
		return m
	}

	path := fmt.Sprintf("border-%s.svg", uuid.NewString()[:8])
	if err := os.WriteFile(path, data, 0o644); err != nil {
		m.saveErr = err
		return m
	}
	m.savedPath = path
	return m
}

// formatParam trims trailing zeros so "4.0" renders as "4".
func formatParam(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	s = strings.TrimSuffix(s, ".0")
	return s
}
