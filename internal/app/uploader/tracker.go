package uploader

import (
	"sort"
	"sync"
	"time"

	"github.com/jsamuelsen11/contractor-portal/internal/domain/upload"
)

// Tracker is the in-memory progress map for uploads, keyed by tracking ID.
// Snapshots are returned by value. Once an entry reaches a terminal state
// further updates to it are ignored, so progress never moves backwards.
type Tracker struct {
	mu      sync.RWMutex
	entries map[string]*upload.Progress
	now     func() time.Time
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		entries: make(map[string]*upload.Progress),
		now:     time.Now,
	}
}

// Start registers a pending upload.
func (t *Tracker) Start(id string, req upload.Request) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.entries[id] = &upload.Progress{
		ID:          id,
		SignatureID: req.SignatureID,
		FileName:    req.FileName,
		State:       upload.StatePending,
		TotalBytes:  req.Size,
		StartedAt:   now,
		UpdatedAt:   now,
	}
}

// SetSession records the initiated session and moves the upload to uploading.
func (t *Tracker) SetSession(id string, session upload.Session, totalParts int) {
	t.update(id, func(p *upload.Progress) {
		p.UploadID = session.UploadID
		p.TotalParts = totalParts
		p.State = upload.StateUploading
	})
}

// Advance counts one more uploaded part of partBytes bytes.
func (t *Tracker) Advance(id string, partBytes int64) {
	t.update(id, func(p *upload.Progress) {
		p.CompletedParts++
		p.UploadedBytes += partBytes
	})
}

// MarkCompleting moves the upload to completing.
func (t *Tracker) MarkCompleting(id string) {
	t.update(id, func(p *upload.Progress) {
		p.State = upload.StateCompleting
	})
}

// Complete marks the upload completed with its final location.
func (t *Tracker) Complete(id string, result *upload.Result) {
	t.update(id, func(p *upload.Progress) {
		p.State = upload.StateCompleted
		p.UploadID = result.UploadID
		p.Location = result.Location
		p.CompletedParts = len(result.Parts)
		p.UploadedBytes = result.Size
	})
}

// Fail marks the upload failed.
func (t *Tracker) Fail(id string, err error) {
	t.update(id, func(p *upload.Progress) {
		p.State = upload.StateFailed
		p.Error = err.Error()
	})
}

// Get returns a snapshot of one upload.
func (t *Tracker) Get(id string) (upload.Progress, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	p, ok := t.entries[id]
	if !ok {
		return upload.Progress{}, false
	}
	return *p, true
}

// List returns snapshots of every upload, most recently started first.
func (t *Tracker) List() []upload.Progress {
	t.mu.RLock()
	out := make([]upload.Progress, 0, len(t.entries))
	for _, p := range t.entries {
		out = append(out, *p)
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	return out
}

// Prune drops finished uploads last updated more than retention ago and
// returns how many were removed. Running uploads are never pruned.
func (t *Tracker) Prune(retention time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-retention)
	removed := 0
	for id, p := range t.entries {
		if p.State.IsTerminal() && p.UpdatedAt.Before(cutoff) {
			delete(t.entries, id)
			removed++
		}
	}
	return removed
}

// Observer returns an Observer that feeds the entry for id.
func (t *Tracker) Observer(id string) Observer {
	return &trackerObserver{tracker: t, id: id}
}

func (t *Tracker) update(id string, fn func(*upload.Progress)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.entries[id]
	if !ok || p.State.IsTerminal() {
		return
	}
	fn(p)
	p.UpdatedAt = t.now()
}

type trackerObserver struct {
	tracker *Tracker
	id      string
}

func (o *trackerObserver) Initiated(session upload.Session, totalParts int) {
	o.tracker.SetSession(o.id, session, totalParts)
}

func (o *trackerObserver) PartUploaded(part upload.Part) {
	o.tracker.Advance(o.id, part.Size)
}

func (o *trackerObserver) Completing() {
	o.tracker.MarkCompleting(o.id)
}
