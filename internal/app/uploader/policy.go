package uploader

import (
	"math"
	"time"

	"github.com/jsamuelsen11/contractor-portal/internal/platform/config"
)

// defaultAbortTimeout bounds the best-effort abort after a failed upload.
const defaultAbortTimeout = 30 * time.Second

// Policy controls part sizing and the per-part retry schedule.
type Policy struct {
	ChunkSize      int64
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
	PartTimeout    time.Duration
	AbortTimeout   time.Duration
}

// PolicyFromConfig builds a Policy from the upload config section.
func PolicyFromConfig(cfg *config.UploadConfig) Policy {
	return Policy{
		ChunkSize:      cfg.ChunkSize,
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxBackoff:     cfg.MaxBackoff,
		Multiplier:     cfg.BackoffMultiplier,
		PartTimeout:    cfg.PartTimeout,
		AbortTimeout:   defaultAbortTimeout,
	}
}

// Attempts returns the total number of tries per part.
func (p Policy) Attempts() int {
	return p.MaxRetries + 1
}

// Backoff returns the wait before retry n (1-indexed): InitialBackoff
// multiplied by Multiplier^(n-1), capped at MaxBackoff. There is no jitter.
func (p Policy) Backoff(n int) time.Duration {
	if n < 1 {
		return 0
	}
	delay := float64(p.InitialBackoff) * math.Pow(p.Multiplier, float64(n-1))
	if p.MaxBackoff > 0 && delay > float64(p.MaxBackoff) {
		return p.MaxBackoff
	}
	return time.Duration(delay)
}
