package domain

import (
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/model"
)

// ResumeRecord is a persisted resume: the unmodified Resume aggregate plus
// the naming and rendering configuration the editor keeps alongside it.
// LastModified is milliseconds since epoch, matching what clients display.
type ResumeRecord struct {
	ID           uuid.UUID     `json:"id"`
	UserID       string        `json:"user_id"`
	Title        string        `json:"title"`
	Template     string        `json:"template"`
	SidebarColor string        `json:"sidebar_color,omitempty"`
	Data         *model.Resume `json:"data"`
	LastModified int64         `json:"last_modified"`
}

// Touch updates LastModified to the current wall clock.
func (r *ResumeRecord) Touch() {
	r.LastModified = time.Now().UnixMilli()
}
