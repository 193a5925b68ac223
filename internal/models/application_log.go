package models

import "time"

// MaxCoverLetterLen caps the cover letter stored in a log entry. Submission
// truncates beyond this; direct log creation rejects instead.
const MaxCoverLetterLen = 3000

// ApplicationLog is one entry in an application's audit trail. Candidate
// name and materials are snapshotted so the trail survives later profile
// edits. Entries are append-only.
type ApplicationLog struct {
	Base
	ApplicationID      uint              `gorm:"not null;index" json:"application_id"`
	ActorID            *uint             `json:"actor_id,omitempty"`
	Status             ApplicationStatus `json:"status"`
	CandidateLastName  string            `gorm:"not null" json:"candidate_last_name"`
	CandidateFirstName string            `gorm:"not null" json:"candidate_first_name"`
	CV                 string            `json:"cv"`
	CoverLetter        string            `gorm:"size:3000" json:"cover_letter"`
	Note               string            `json:"note"`
	SentAt             time.Time         `gorm:"not null;index" json:"sent_at"`
}

func (ApplicationLog) TableName() string { return "application_log" }
