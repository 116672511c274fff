package models

import (
	"time"
)

// Like records that a user already upvoted a report, so the button stays
// disabled across devices when the postgres backend is used.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null;uniqueIndex:idx_like_user_report" json:"username"`
	ReportID  int       `gorm:"not null;uniqueIndex:idx_like_user_report;index" json:"report_id"`
	CreatedAt time.Time `json:"created_at"`
}
