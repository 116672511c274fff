package timeline

import "strings"

// Stage is the lifecycle stage a status string resolves to.
type Stage string

const (
	StagePending    Stage = "pending"
	StageInProgress Stage = "in_progress"
	StageComplete   Stage = "complete"
	StageRejected   Stage = "rejected"
)

// StepState is the visual state of a timeline marker.
type StepState string

const (
	StepPending  StepState = "pending"
	StepActive   StepState = "active"
	StepComplete StepState = "complete"
	StepRejected StepState = "rejected"
)

// RejectedMark replaces the step number on a rejected timeline.
const RejectedMark = "X"

// Descriptor is everything a template needs to draw the status badge,
// the progress bar and the three-step timeline of a report.
type Descriptor struct {
	Stage      Stage
	Label      string
	BadgeClass string
	BarClass   string
	Progress   int
	Step2      StepState
	Step3      StepState
	Step2Label string
	Step3Label string
}

// Terminal reports whether the report reached the end of its lifecycle.
func (d Descriptor) Terminal() bool {
	return d.Stage == StageComplete || d.Stage == StageRejected
}

// StepClass maps a step state to the button color used for the marker.
func StepClass(s StepState) string {
	switch s {
	case StepComplete:
		return "btn-success"
	case StepRejected:
		return "btn-danger"
	case StepActive:
		return "btn-warning"
	default:
		return "btn-secondary"
	}
}

// keyword groups, checked in order. Done and rejected must win over the
// generic "progress" match.
var (
	doneWords       = []string{"selesai", "completed", "done"}
	rejectedWords   = []string{"ditolak", "rejected"}
	inProgressWords = []string{"proses", "dikerjakan", "progress"}
)

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func classify(status string) Stage {
	s := strings.ToLower(status)
	switch {
	case containsAny(s, doneWords):
		return StageComplete
	case containsAny(s, rejectedWords):
		return StageRejected
	case containsAny(s, inProgressWords):
		return StageInProgress
	default:
		return StagePending
	}
}

// Describe derives the rendering descriptor for a free-text status.
// Unknown or empty input renders as Pending.
func Describe(status string) Descriptor {
	label := strings.TrimSpace(status)
	if label == "" {
		label = Pending.String()
	}

	d := Descriptor{
		Label:      label,
		Step2:      StepPending,
		Step3:      StepPending,
		Step2Label: "2",
		Step3Label: "3",
	}

	switch d.Stage = classify(label); d.Stage {
	case StageComplete:
		d.BadgeClass = "bg-success"
		d.BarClass = "bg-success"
		d.Progress = 100
		d.Step2 = StepComplete
		d.Step3 = StepComplete
	case StageRejected:
		d.BadgeClass = "bg-danger"
		d.BarClass = "bg-danger"
		d.Progress = 100
		d.Step2 = StepRejected
		d.Step3 = StepRejected
		d.Step2Label = RejectedMark
		d.Step3Label = RejectedMark
	case StageInProgress:
		d.BadgeClass = "bg-warning text-dark"
		d.BarClass = "bg-warning"
		d.Progress = 50
		d.Step2 = StepActive
	default:
		d.BadgeClass = "bg-secondary"
		d.BarClass = "bg-secondary"
		d.Progress = 5
	}
	return d
}
