package upload

import "time"

// State is the lifecycle stage of a tracked upload.
type State string

const (
	StatePending    State = "pending"
	StateUploading  State = "uploading"
	StateCompleting State = "completing"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

// IsTerminal returns true once the upload can no longer change.
func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateFailed
}

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}

// Progress is a point-in-time snapshot of one upload.
type Progress struct {
	ID             string
	SignatureID    string
	UploadID       string
	FileName       string
	State          State
	TotalParts     int
	CompletedParts int
	TotalBytes     int64
	UploadedBytes  int64
	Location       string
	Error          string
	StartedAt      time.Time
	UpdatedAt      time.Time
}

// Percent returns uploaded bytes as a whole percentage of the total.
func (p *Progress) Percent() int {
	if p.TotalBytes <= 0 {
		return 0
	}
	return int(p.UploadedBytes * 100 / p.TotalBytes)
}
