//go:build !tinygo

package hal

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Hz int
}

var termLCDStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#4a6b2a")).
	Foreground(lipgloss.Color("#122410")).
	Background(lipgloss.Color("#7cb342")).
	Padding(0, 1)

var (
	termLEDOn   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e03020")).Render("●")
	termLEDOff  = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")).Render("○")
	termHelp    = lipgloss.NewStyle().Faint(true)
	termHelpTxt = "0-9  + - . = (A B C *)  tab: shift (D)  backspace: #  ctrl+c: quit"
)

// RunTerminal runs the OS inside the terminal, drawing the LCD as text.
// It blocks until the user quits or ctx is done.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, host HostConfig, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	h := newHost(host)
	m := newTermModel(h, newApp(h), time.Second/time.Duration(cfg.Hz))

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return m.err
}

type termTickMsg time.Time

type termModel struct {
	h     *hostHAL
	step  func() error
	every time.Duration
	err   error
}

func newTermModel(h *hostHAL, step func() error, every time.Duration) *termModel {
	return &termModel{h: h, step: step, every: every}
}

func (m *termModel) Init() tea.Cmd { return m.tick() }

func (m *termModel) tick() tea.Cmd {
	return tea.Tick(m.every, func(t time.Time) tea.Msg { return termTickMsg(t) })
}

func (m *termModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		for _, ev := range termKeyEvents(msg) {
			m.h.kbd.inject(ev)
		}
		return m, nil
	case termTickMsg:
		m.h.t.step()
		if m.step != nil {
			if err := m.step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *termModel) View() string {
	led := termLEDOff
	if m.h.led.On() {
		led = termLEDOn
	}
	lcd := termLCDStyle.Render(strings.Join(m.h.lcd.Lines(), "\n"))
	return lipgloss.JoinVertical(lipgloss.Left,
		lcd,
		led+" shift",
		termHelp.Render(termHelpTxt),
	) + "\n"
}

func termKeyEvents(msg tea.KeyMsg) []KeyEvent {
	switch msg.Type {
	case tea.KeyRunes:
		evs := make([]KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			evs = append(evs, KeyEvent{Press: true, Rune: r})
		}
		return evs
	case tea.KeySpace:
		return []KeyEvent{{Press: true, Rune: ' '}}
	case tea.KeyEnter:
		return []KeyEvent{{Press: true, Code: KeyEnter}}
	case tea.KeyBackspace:
		return []KeyEvent{{Press: true, Code: KeyBackspace}}
	case tea.KeyTab:
		return []KeyEvent{{Press: true, Code: KeyTab}}
	case tea.KeyDelete:
		return []KeyEvent{{Press: true, Code: KeyDelete}}
	case tea.KeyEsc:
		return []KeyEvent{{Press: true, Code: KeyEscape}}
	}
	return nil
}
