package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/curricle/internal/cli/formatter"
	"github.com/alexanderramin/curricle/internal/contract"
	"github.com/alexanderramin/curricle/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// shellAction is one menu entry; run produces the rendered output for the
// signed-in student.
type shellAction struct {
	label string
	run   func(ctx context.Context, app *App, studentID string) (string, error)
}

// shellOutputMsg carries a finished action's rendering into the model.
type shellOutputMsg struct {
	output string
	err    error
}

// shellModel is the bubbletea model for the interactive session: a menu
// over the signed-in student's views, a scrollable output viewport, and a
// catalog search input.
type shellModel struct {
	app     *App
	student *domain.Student

	actions []shellAction
	cursor  int

	outputVP   viewport.Model
	showOutput bool

	searchInput textinput.Model
	searching   bool

	width  int
	height int
	errMsg string
}

func newShellModel(app *App, student *domain.Student) shellModel {
	ti := textinput.New()
	ti.Placeholder = "module code or name"
	ti.CharLimit = 64

	return shellModel{
		app:         app,
		student:     student,
		actions:     shellActions(),
		outputVP:    viewport.New(0, 0),
		searchInput: ti,
	}
}

func shellActions() []shellAction {
	return []shellAction{
		{"Progress", func(ctx context.Context, app *App, id string) (string, error) {
			report, err := app.Students.Progress(ctx, id)
			if err != nil {
				return "", err
			}
			return formatter.FormatProgress(report), nil
		}},
		{"Eligible modules", func(ctx context.Context, app *App, id string) (string, error) {
			resp, err := app.Advisor.Eligible(ctx, id)
			if err != nil {
				return "", err
			}
			return formatter.FormatEligibility(resp), nil
		}},
		{"Upcoming order", func(ctx context.Context, app *App, id string) (string, error) {
			resp, err := app.Advisor.Upcoming(ctx, id)
			if err != nil {
				return "", err
			}
			return formatter.FormatUpcoming(resp), nil
		}},
		{"Semester plan", func(ctx context.Context, app *App, id string) (string, error) {
			resp, err := app.Planning.Plan(ctx, contract.NewPlanRequest(id))
			if err != nil {
				return "", err
			}
			return formatter.FormatPlan(resp), nil
		}},
		{"Prerequisite graph", func(ctx context.Context, app *App, id string) (string, error) {
			resp, err := app.Advisor.Graph(ctx, id)
			if err != nil {
				return "", err
			}
			return formatter.FormatGraph(resp), nil
		}},
	}
}

func (m shellModel) Init() tea.Cmd {
	return nil
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.outputVP.Width = msg.Width
		m.outputVP.Height = msg.Height - 2
		return m, nil

	case shellOutputMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.showOutput = true
		m.outputVP.SetContent(msg.output)
		m.outputVP.GotoTop()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m shellModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		case "enter":
			query := m.searchInput.Value()
			m.searching = false
			m.searchInput.Blur()
			return m, m.runSearch(query)
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	if m.showOutput {
		switch msg.String() {
		case "q", "esc", "b":
			m.showOutput = false
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.outputVP, cmd = m.outputVP.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.actions) { // last row is search
			m.cursor++
		}
	case "enter":
		if m.cursor == len(m.actions) {
			m.searching = true
			m.searchInput.SetValue("")
			return m, m.searchInput.Focus()
		}
		action := m.actions[m.cursor]
		return m, func() tea.Msg {
			out, err := action.run(context.Background(), m.app, m.student.ID)
			return shellOutputMsg{output: out, err: err}
		}
	}
	return m, nil
}

func (m shellModel) runSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.app.Advisor.Search(context.Background(), query)
		if err != nil {
			return shellOutputMsg{err: err}
		}
		return shellOutputMsg{output: formatter.FormatSearchResults(query, results)}
	}
}

func (m shellModel) View() string {
	if m.showOutput {
		return m.outputVP.View() + "\n" + formatter.Dim("  q/esc back · ↑/↓ scroll")
	}

	var b strings.Builder
	b.WriteString(formatter.FormatShellWelcome(m.student.ID, m.student.Name))
	b.WriteString("\n")

	for i, action := range m.actions {
		b.WriteString(menuRow(action.label, i == m.cursor))
	}
	b.WriteString(menuRow("Search catalog", m.cursor == len(m.actions)))

	if m.searching {
		b.WriteString("\n  " + m.searchInput.View() + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + formatter.StyleRed.Render("  Error: "+m.errMsg) + "\n")
	}
	return b.String()
}

func menuRow(label string, selected bool) string {
	if selected {
		return fmt.Sprintf("  %s %s\n", formatter.StyleHeader.Render("❯"), formatter.Bold(label))
	}
	return fmt.Sprintf("    %s\n", formatter.StyleFg.Render(label))
}
