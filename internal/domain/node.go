package domain

// Offset is a 2D displacement applied to a node's title label.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a dated entry on the timeline. Date is kept as the ISO-8601
// string the client submitted; it round-trips unmodified and may fall
// outside the configured display range.
type Node struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Type        NodeType `json:"type"`
	Description string   `json:"description,omitempty"`
	TitleOffset Offset   `json:"titleOffset"`
	Todos       []Todo   `json:"todos"`
}

// Todo is a checklist entry owned by a node. Every todo references an
// existing node; the engine does not cascade, so deletion ordering is
// handled by the data-access layer.
type Todo struct {
	ID        string `json:"id"`
	NodeID    string `json:"nodeId"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
