package domain

type NodeType string

const (
	NodeNormal    NodeType = "normal"
	NodeMilestone NodeType = "milestone"
)

// ValidNodeTypes is the canonical set of accepted node type strings.
var ValidNodeTypes = map[string]bool{
	"normal": true, "milestone": true,
}

type TimelineView string

const (
	ViewDay   TimelineView = "day"
	ViewWeek  TimelineView = "week"
	ViewMonth TimelineView = "month"
)
