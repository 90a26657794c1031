package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/eimlab/internal/grid"
	"github.com/san-kum/eimlab/internal/waveguide"
)

// adjustable parameters, in display order
const (
	paramWidth = iota
	paramTRib
	paramTSlab
	paramLambda
	paramOrder
	paramCount
)

var paramNames = [paramCount]string{"width", "t_rib", "t_slab", "lambda", "order"}
var paramSteps = [paramCount]float64{0.05, 0.01, 0.01, 0.01, 1}

// Model is the interactive strip explorer: every parameter change
// re-solves the waveguide and redraws the lateral field cut.
type Model struct {
	strip    waveguide.Strip
	selected int
	points   int
	extent   float64

	neff float64
	cut  []complex128
}

func NewModel(s waveguide.Strip, points int, extent float64) Model {
	m := Model{strip: s, points: points, extent: extent}
	m.resolve()
	return m
}

func (m *Model) resolve() {
	m.neff = m.strip.Solve()

	x := grid.Linspace(-m.extent, m.extent, m.points)
	field, err := m.strip.ModeField2D(x, x, 0)
	if err != nil || len(field) == 0 {
		m.cut = nil
		return
	}

	// lateral cut at the vertical core center
	center := m.strip.TRib / 2
	row := 0
	best := math.Inf(1)
	for i, xi := range x {
		if d := math.Abs(xi - center); d < best {
			best = d
			row = i
		}
	}
	m.cut = field[row]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.selected = (m.selected + paramCount - 1) % paramCount
	case "down", "j":
		m.selected = (m.selected + 1) % paramCount
	case "left", "h":
		m.adjust(-1)
		m.resolve()
	case "right", "l":
		m.adjust(1)
		m.resolve()
	case "m":
		m.strip.Mode = m.strip.Mode.Opposite()
		m.resolve()
	}
	return m, nil
}

func (m *Model) adjust(dir float64) {
	step := paramSteps[m.selected] * dir
	switch m.selected {
	case paramWidth:
		m.strip.WRib = clamp(m.strip.WRib+step, 0.05)
	case paramTRib:
		m.strip.TRib = clamp(m.strip.TRib+step, 0.01)
	case paramTSlab:
		m.strip.TSlab = math.Max(m.strip.TSlab+step, 0)
	case paramLambda:
		m.strip.Wavelength = clamp(m.strip.Wavelength+step, 0.1)
	case paramOrder:
		m.strip.Order += int(dir)
		if m.strip.Order < 0 {
			m.strip.Order = 0
		}
	}
}

func clamp(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("eimlab mode explorer"))
	b.WriteString("\n")

	values := [paramCount]string{
		fmt.Sprintf("%.3f", m.strip.WRib),
		fmt.Sprintf("%.3f", m.strip.TRib),
		fmt.Sprintf("%.3f", m.strip.TSlab),
		fmt.Sprintf("%.3f", m.strip.Wavelength),
		fmt.Sprintf("%d", m.strip.Order),
	}
	for i := 0; i < paramCount; i++ {
		label := labelStyle.Render(paramNames[i])
		value := valueStyle.Render(values[i])
		if i == m.selected {
			value = activeParamStyle.Render("< " + values[i] + " >")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", label, value))
	}

	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("mode"),
		valueStyle.Render(fmt.Sprintf("%s%d", m.strip.Mode, m.strip.Order))))
	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("neff"),
		resultStyle.Render(fmt.Sprintf("%.6g", m.neff))))

	if len(m.cut) > 0 {
		b.WriteString(graphStyle.Render(RenderCut(m.cut, "lateral field cut |E|")))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ select  ←/→ adjust  m toggle TE/TM  q quit"))
	b.WriteString("\n")

	return b.String()
}
