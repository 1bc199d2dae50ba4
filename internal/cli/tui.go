package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pktviz/pktviz/pkg/diagram"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// fieldListModel is the bubbletea model for interactive field inspection.
// It shows each field with its bit range and the row/column the field
// occupies once wrapped.
type fieldListModel struct {
	diagram    *diagram.Diagram
	bitsPerRow int
	cursor     int
	height     int
	offset     int
}

// newFieldListModel creates a field inspector for the given diagram.
func newFieldListModel(d *diagram.Diagram, bitsPerRow int) fieldListModel {
	return fieldListModel{
		diagram:    d,
		bitsPerRow: bitsPerRow,
		height:     15,
	}
}

func (m fieldListModel) Init() tea.Cmd {
	return nil
}

func (m fieldListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.diagram.Fields)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m fieldListModel) View() string {
	var b strings.Builder

	title := m.diagram.Title
	if title == "" {
		title = "Packet Fields"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.diagram.Fields) {
		end = len(m.diagram.Fields)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		f := m.diagram.Fields[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		bitRange := fmt.Sprintf("%d-%d", f.Start, f.End)
		if f.Start == f.End {
			bitRange = fmt.Sprintf("%d", f.Start)
		}

		startRow := f.Start / m.bitsPerRow
		endRow := f.End / m.bitsPerRow
		position := fmt.Sprintf("row %d", startRow)
		if endRow != startRow {
			position = fmt.Sprintf("rows %d-%d", startRow, endRow)
		}

		rows = append(rows, []string{cursor, f.Label, bitRange, fmt.Sprintf("%d", f.Bits()), position})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Field", "Bits", "Width", "Placement").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return listSelectedStyle
			}
			return StyleDim
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] · %d bits total", m.cursor+1, len(m.diagram.Fields), m.diagram.TotalBits())))

	return b.String()
}
