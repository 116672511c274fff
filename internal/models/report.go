package models

import (
	"facilitywatch/internal/timeline"
)

// Report is a facility issue as returned by the Report API.
type Report struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Facility    string    `json:"facility"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority,omitempty"`
	Likes       int       `json:"likes"`
	ImageURL    string    `json:"image_url,omitempty"`
	AdminNote   string    `json:"admin_note,omitempty"`
	Username    string    `json:"username,omitempty"`
	CreatedAt   Timestamp `json:"created_at"`
}

// Timeline returns the rendering descriptor for the report's status.
func (r Report) Timeline() timeline.Descriptor {
	return timeline.Describe(r.Status)
}

// PriorityBadge returns the badge for the report's priority, Medium when unset.
func (r Report) PriorityBadge() timeline.PriorityDescriptor {
	return timeline.PriorityBadge(r.Priority)
}

// CanonicalStatus folds the free-text status into the closed enum.
func (r Report) CanonicalStatus() timeline.Status {
	return timeline.ParseStatus(r.Status)
}

// Author is the display name of the reporter.
func (r Report) Author() string {
	if r.Username == "" || r.Username == "undefined" {
		return "Anonim"
	}
	return r.Username
}

// LikeCount never goes below zero, whatever the API sends.
func (r Report) LikeCount() int {
	if r.Likes < 0 {
		return 0
	}
	return r.Likes
}

// ReportUpdate is the admin triage payload for PUT /reports/{id}.
type ReportUpdate struct {
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	AdminNote string `json:"admin_note"`
}

// NewReport holds the multipart fields of POST /reports.
type NewReport struct {
	Title       string
	Facility    string
	Description string

	// Optional photo. FileName is empty when no file was attached.
	FileName    string
	ContentType string
	File        []byte
}

// HasFile reports whether a photo is attached.
func (n NewReport) HasFile() bool {
	return n.FileName != "" && len(n.File) > 0
}
