package formatter

import (
	"strings"
	"testing"

	"github.com/mkoval/plotline/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNodeTable(t *testing.T) {
	nodes := []domain.Node{
		{
			ID:    "n1",
			Title: "Launch beta",
			Date:  "2026-09-15",
			Type:  domain.NodeMilestone,
			Todos: []domain.Todo{
				{ID: "t1", NodeID: "n1", Text: "write changelog", Completed: true},
				{ID: "t2", NodeID: "n1", Text: "tag release", Completed: false},
			},
		},
		{
			ID:    "n2",
			Title: "Research",
			Date:  "2026-10-01",
			Type:  domain.NodeNormal,
			Todos: []domain.Todo{},
		},
	}

	out := NodeTable(nodes)

	assert.Contains(t, out, "TIMELINE")
	assert.Contains(t, out, "Launch beta")
	assert.Contains(t, out, "milestone")
	assert.Contains(t, out, "2026-09-15")
	assert.Contains(t, out, "[x] write changelog")
	assert.Contains(t, out, "[ ] tag release")
	assert.Contains(t, out, "1/2")
	assert.Contains(t, out, "Research")

	// Todos are indented under their node, not rendered as table rows.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "tag release") {
			assert.True(t, strings.HasPrefix(line, "    "))
		}
	}
}

func TestNodeTableEmpty(t *testing.T) {
	out := NodeTable(nil)
	assert.Contains(t, out, "TIMELINE")
	assert.NotContains(t, out, "[ ]")
}

func TestProgress(t *testing.T) {
	assert.Contains(t, Progress(0, 0), "–")
	assert.Contains(t, Progress(2, 2), "2/2")
	assert.Contains(t, Progress(1, 3), "1/3")
}
