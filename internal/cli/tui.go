package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/fmckeogh/isla/pkg/model"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ExecutionListModel - Interactive candidate execution selection
// =============================================================================

// ExecutionListModel is the bubbletea model for picking one candidate
// execution out of an evaluator document.
type ExecutionListModel struct {
	Executions []model.Execution
	Cursor     int
	Selected   int // index of the chosen execution, -1 until chosen
	Height     int
	Offset     int
}

// NewExecutionListModel creates a new execution list model.
func NewExecutionListModel(executions []model.Execution) ExecutionListModel {
	return ExecutionListModel{
		Executions: executions,
		Selected:   -1,
		Height:     15,
	}
}

func (m ExecutionListModel) Init() tea.Cmd {
	return nil
}

func (m ExecutionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Executions)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Cursor
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ExecutionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Execution"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Executions) {
		end = len(m.Executions)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		x := m.Executions[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		relations := "—"
		if len(x.Relations) > 0 {
			names := make([]string, len(x.Relations))
			for j, rel := range x.Relations {
				names[j] = rel.Name
			}
			relations = strings.Join(names, ", ")
		}

		hint := "—"
		if len(x.Show) > 0 {
			hint = strings.Join(x.Show, ", ")
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", len(x.Events)),
			fmt.Sprintf("%d", len(x.ThreadIDs())),
			relations,
			hint,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Events", "Threads", "Relations", "Show").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Executions) {
				return lipgloss.NewStyle()
			}

			base := lipgloss.NewStyle()
			if col == 5 {
				base = base.Foreground(colorDim)
			}
			if actualIdx == m.Cursor {
				return base.Foreground(colorGreen).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Executions))))

	return b.String()
}
