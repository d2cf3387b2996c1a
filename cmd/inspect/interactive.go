package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SteveFortune/ocmock/encoding"
	"github.com/SteveFortune/ocmock/invocation"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	encStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	catStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	fieldEncoding = iota
	fieldValue
	numFields
)

type inspectModel struct {
	inputs   []textinput.Model
	focusIdx int
	history  []trialResult
}

type trialResult struct {
	encoding encoding.Encoding
	category encoding.Category
	layout   string
	outcome  string
	failed   bool
}

func newInspectModel() *inspectModel {
	inputs := make([]textinput.Model, numFields)

	enc := textinput.New()
	enc.Placeholder = `encoding, e.g. i or {CGPoint=dd}`
	enc.Prompt = "encoding: "
	enc.Width = 40
	enc.Focus()
	inputs[fieldEncoding] = enc

	val := textinput.New()
	val.Placeholder = "value: 42, 1.5, true, obj:<name>, or empty for default"
	val.Prompt = "value:    "
	val.Width = 40
	inputs[fieldValue] = val

	return &inspectModel{inputs: inputs}
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + 1) % numFields
			m.inputs[m.focusIdx].Focus()
			return m, nil

		case "enter":
			m.evaluate()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *inspectModel) evaluate() {
	raw := strings.TrimSpace(m.inputs[fieldEncoding].Value())
	if raw == "" {
		return
	}

	enc := encoding.Encoding(raw)
	res := trialResult{
		encoding: enc,
		category: enc.Category(),
	}
	if info, err := enc.Layout(); err == nil {
		res.layout = fmt.Sprintf("size=%d align=%d", info.Size, info.Align)
	} else {
		res.layout = err.Error()
	}

	res.outcome, res.failed = m.trial(enc, strings.TrimSpace(m.inputs[fieldValue].Value()))
	m.history = append(m.history, res)
	if len(m.history) > 8 {
		m.history = m.history[len(m.history)-8:]
	}
}

func (m *inspectModel) trial(enc encoding.Encoding, valueStr string) (string, bool) {
	arg, err := parseArgument(valueStr)
	if err != nil {
		return err.Error(), true
	}

	probe := &probeTarget{sig: invocation.Signature{enc}}
	frame, err := invocation.NewMarshaler(arg).Build(probe)
	if err != nil {
		return err.Error(), true
	}

	if frame.IsObject(0) {
		ref, _ := frame.Object(0)
		return fmt.Sprintf("object %v", ref), false
	}
	return fmt.Sprintf("bytes % X", frame.Bytes(0)), false
}

// parseArgument turns a trial value string into an argument. Integers box
// as 64-bit signed, decimals as 64-bit float, so the coercion rules decide
// whether the slot can hold them.
func parseArgument(value string) (invocation.Argument, error) {
	switch {
	case value == "":
		return nil, nil
	case value == "true" || value == "false":
		return invocation.BoxBool(value == "true"), nil
	case strings.HasPrefix(value, "obj:"):
		return invocation.Object(strings.TrimPrefix(value, "obj:")), nil
	}

	if v, err := strconv.ParseInt(value, 10, 64); err == nil {
		return invocation.BoxInt64(v), nil
	}
	if v, err := strconv.ParseFloat(value, 64); err == nil {
		return invocation.BoxFloat64(v), nil
	}
	return nil, fmt.Errorf("cannot parse trial value %q", value)
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Encoding Inspector"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i := len(m.history) - 1; i >= 0; i-- {
		r := m.history[i]
		b.WriteString(encStyle.Render(fmt.Sprintf("%q", r.encoding)))
		b.WriteString("  ")
		b.WriteString(catStyle.Render(r.category.String()))
		b.WriteString("  ")
		b.WriteString(r.layout)
		b.WriteString("\n    ")
		if r.failed {
			b.WriteString(errorStyle.Render(r.outcome))
		} else {
			b.WriteString(resultStyle.Render(r.outcome))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab switch field • enter evaluate • esc quit"))
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInspectModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
