package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mkoval/plotline/internal/domain"
)

// colGap separates columns in the node listing.
const colGap = 2

// NodeTable renders the timeline listing: an aligned row per node (type
// badge, date, title, todo progress, id) with the node's todos indented
// underneath. Column widths are measured with lipgloss.Width so styled
// cells line up.
func NodeTable(nodes []domain.Node) string {
	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, []string{
			TypeBadge(n.Type),
			StyleFg.Render(n.Date),
			StyleBold.Render(n.Title),
			Progress(doneTodos(n.Todos), len(n.Todos)),
			StyleDim.Render(n.ID),
		})
	}

	widths := columnWidths(rows)

	var b strings.Builder
	b.WriteString(Header("Timeline"))
	b.WriteString("\n")
	for i, row := range rows {
		writeRow(&b, row, widths)
		for _, todo := range nodes[i].Todos {
			b.WriteString("    ")
			b.WriteString(TodoMark(todo.Completed))
			b.WriteString(" ")
			b.WriteString(StyleFg.Render(todo.Text))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func writeRow(b *strings.Builder, row []string, widths []int) {
	for i, cell := range row {
		b.WriteString(cell)
		if i < len(row)-1 {
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}
	b.WriteString("\n")
}

func doneTodos(todos []domain.Todo) int {
	n := 0
	for _, t := range todos {
		if t.Completed {
			n++
		}
	}
	return n
}
