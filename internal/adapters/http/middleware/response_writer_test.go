package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestResponseWriter_Captures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		write       func(w http.ResponseWriter)
		wantStatus  int
		wantWritten int64
		wantHeader  bool
	}{
		{
			name:       "nothing written",
			write:      func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "accepted upload without body",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusAccepted)
			},
			wantStatus: http.StatusAccepted,
			wantHeader: true,
		},
		{
			name: "first status wins",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusCreated)
				w.WriteHeader(http.StatusBadGateway)
			},
			wantStatus: http.StatusCreated,
			wantHeader: true,
		},
		{
			name: "implicit 200 and byte count across writes",
			write: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"sections":`))
				_, _ = w.Write([]byte(`{}}`))
			},
			wantStatus:  http.StatusOK,
			wantWritten: 15,
			wantHeader:  true,
		},
		{
			name: "problem body after status",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_, _ = w.Write([]byte(`{"status":413}`))
			},
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantWritten: 14,
			wantHeader:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tt.write(rw)

			if rw.statusCode != tt.wantStatus {
				t.Errorf("statusCode = %d, want %d", rw.statusCode, tt.wantStatus)
			}
			if rw.written != tt.wantWritten {
				t.Errorf("written = %d, want %d", rw.written, tt.wantWritten)
			}
			if rw.headerWritten != tt.wantHeader {
				t.Errorf("headerWritten = %v, want %v", rw.headerWritten, tt.wantHeader)
			}
			if tt.wantHeader && rec.Code != tt.wantStatus {
				t.Errorf("recorder Code = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

// deadlineRecorder is a ResponseRecorder that accepts read deadlines, as a
// server connection does.
type deadlineRecorder struct {
	*httptest.ResponseRecorder
	readDeadline time.Time
}

func (d *deadlineRecorder) SetReadDeadline(t time.Time) error {
	d.readDeadline = t
	return nil
}

func TestResponseWriter_ControllerReachesConnection(t *testing.T) {
	t.Parallel()

	inner := &deadlineRecorder{ResponseRecorder: httptest.NewRecorder()}
	// Two layers, as Logging inside OpenTelemetry produces.
	rw := newResponseWriter(newResponseWriter(inner))

	deadline := time.Date(2026, 1, 1, 0, 30, 0, 0, time.UTC)
	rc := http.NewResponseController(rw)
	if err := rc.SetReadDeadline(deadline); err != nil {
		t.Fatalf("SetReadDeadline() error = %v", err)
	}
	if !inner.readDeadline.Equal(deadline) {
		t.Errorf("read deadline = %v, want %v", inner.readDeadline, deadline)
	}

	if err := rc.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if !inner.Flushed {
		t.Error("Flushed = false, want true through both wrappers")
	}
}
