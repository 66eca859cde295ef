package dto_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/contractor-portal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/contractor-portal/internal/domain/resource"
	"github.com/jsamuelsen11/contractor-portal/internal/domain/upload"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func TestToUploadProgressResponse(t *testing.T) {
	t.Parallel()

	p := upload.Progress{
		ID:             "trk-1",
		SignatureID:    "sig-1",
		UploadID:       "up-1",
		FileName:       "signed.pdf",
		State:          upload.StateUploading,
		TotalParts:     4,
		CompletedParts: 1,
		TotalBytes:     200,
		UploadedBytes:  50,
		StartedAt:      testTime,
		UpdatedAt:      testTime.Add(time.Second),
	}

	want := dto.UploadProgressResponse{
		ID:             "trk-1",
		SignatureID:    "sig-1",
		UploadID:       "up-1",
		FileName:       "signed.pdf",
		Status:         "uploading",
		TotalParts:     4,
		CompletedParts: 1,
		TotalBytes:     200,
		UploadedBytes:  50,
		Percent:        25,
		StartedAt:      "2026-02-12T15:04:05Z",
		UpdatedAt:      "2026-02-12T15:04:06Z",
	}
	if diff := cmp.Diff(want, dto.ToUploadProgressResponse(&p)); diff != "" {
		t.Errorf("ToUploadProgressResponse() mismatch (-want +got):\n%s", diff)
	}
}

func TestToUploadListResponse_Empty(t *testing.T) {
	t.Parallel()

	got := dto.ToUploadListResponse(nil)

	if got.Uploads == nil {
		t.Error("Uploads = nil, want empty slice so it encodes as []")
	}
	if got.Count != 0 {
		t.Errorf("Count = %d, want 0", got.Count)
	}
}

func TestToDashboardResponse_PartialFailure(t *testing.T) {
	t.Parallel()

	d := &ports.Dashboard{Sections: []ports.DashboardSection{
		{Kind: resource.KindClients, Data: resource.Payload(`[{"id":"c1"}]`)},
		{Kind: resource.KindJobs, Err: errors.New("upstream status 503: maintenance")},
	}}

	got := dto.ToDashboardResponse(d)

	if !got.Partial {
		t.Error("Partial = false, want true")
	}
	if string(got.Sections["clients"].Data) != `[{"id":"c1"}]` {
		t.Errorf("clients data = %s", got.Sections["clients"].Data)
	}
	if got.Sections["jobs"].Error == "" {
		t.Error("jobs error is empty")
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, ok := decoded["sections"]; !ok {
		t.Errorf("encoded dashboard = %s, want sections key", raw)
	}
}

func TestToPresignedUploadResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToPresignedUploadResponse(&ports.PresignedUpload{
		URL:       "https://bucket.s3.amazonaws.com/attachments/a.pdf?X-Amz-Signature=abc",
		Method:    "PUT",
		Key:       "attachments/a.pdf",
		Headers:   map[string]string{"Content-Type": "application/pdf"},
		ExpiresAt: testTime,
	})

	if got.ExpiresAt != "2026-02-12T15:04:05Z" {
		t.Errorf("ExpiresAt = %q", got.ExpiresAt)
	}
	if got.Headers["Content-Type"] != "application/pdf" {
		t.Errorf("Headers = %v", got.Headers)
	}
}
