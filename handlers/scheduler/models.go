package scheduler

// Task is a schedulable unit. Title is the node identity; EstimatedDuration
// and DueDate are carried through untouched.
type Task struct {
	Title             string   `json:"title"`
	EstimatedDuration int      `json:"estimatedDuration"`
	DueDate           *string  `json:"dueDate,omitempty"`
	Dependencies      []string `json:"dependencies"`
}

type ScheduleRequest struct {
	Tasks []Task `json:"tasks"`
}

type ScheduleResponse struct {
	RecommendedOrder []string `json:"recommendedOrder"`
}

type UnknownDependencyPolicy string

const (
	// ImplicitNode adds an undeclared dependency name to the graph as a
	// prerequisite with no dependencies of its own.
	ImplicitNode  UnknownDependencyPolicy = "implicit"
	RejectUnknown UnknownDependencyPolicy = "reject"
)

type DuplicateTitlePolicy string

const (
	// MergeDuplicates folds every task sharing a title into one node.
	MergeDuplicates  DuplicateTitlePolicy = "merge"
	RejectDuplicates DuplicateTitlePolicy = "reject"
)

type Policy struct {
	UnknownDependencies UnknownDependencyPolicy `json:"unknownDependencies"`
	DuplicateTitles     DuplicateTitlePolicy    `json:"duplicateTitles"`
}

func DefaultPolicy() Policy {
	return Policy{
		UnknownDependencies: ImplicitNode,
		DuplicateTitles:     MergeDuplicates,
	}
}

type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindInvalidInput
	KindCycle
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "success"
	case KindInvalidInput:
		return "invalid_input"
	case KindCycle:
		return "cycle"
	default:
		return "error"
	}
}

// graphNode holds the mutable per-call state of one vertex.
type graphNode struct {
	successors []string
	inDegree   int
}
