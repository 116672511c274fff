package timeline

// Status is the closed set of report statuses the admin panel can assign.
// Free text coming from the API is folded into it once, by ParseStatus.
type Status int

const (
	Pending Status = iota
	InProgress
	Done
	Rejected
)

var statusNames = [...]string{
	Pending:    "Pending",
	InProgress: "Proses",
	Done:       "Selesai",
	Rejected:   "Ditolak",
}

// String returns the value the Report API stores.
func (s Status) String() string {
	if s < Pending || s > Rejected {
		return statusNames[Pending]
	}
	return statusNames[s]
}

// Stage returns the timeline stage of a canonical status.
func (s Status) Stage() Stage {
	switch s {
	case InProgress:
		return StageInProgress
	case Done:
		return StageComplete
	case Rejected:
		return StageRejected
	default:
		return StagePending
	}
}

// ParseStatus normalises a free-text status using the same keyword
// precedence as Describe.
func ParseStatus(raw string) Status {
	switch classify(raw) {
	case StageComplete:
		return Done
	case StageRejected:
		return Rejected
	case StageInProgress:
		return InProgress
	default:
		return Pending
	}
}

// Statuses lists the canonical statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InProgress, Done, Rejected}
}

// Priority levels accepted by the Report API.
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// PriorityDescriptor drives the priority badge.
type PriorityDescriptor struct {
	Label      string
	BadgeClass string
	Pulse      bool
}

// PriorityBadge maps a priority to its badge. Matching is exact; anything
// that is not Low, High or Critical is shown as Medium.
func PriorityBadge(priority string) PriorityDescriptor {
	switch priority {
	case PriorityLow:
		return PriorityDescriptor{Label: PriorityLow, BadgeClass: "bg-success"}
	case PriorityHigh:
		return PriorityDescriptor{Label: PriorityHigh, BadgeClass: "bg-warning text-dark"}
	case PriorityCritical:
		return PriorityDescriptor{Label: PriorityCritical, BadgeClass: "bg-danger", Pulse: true}
	default:
		return PriorityDescriptor{Label: PriorityMedium, BadgeClass: "bg-info text-dark"}
	}
}

// Priorities lists the priorities from least to most severe.
func Priorities() []string {
	return []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}
