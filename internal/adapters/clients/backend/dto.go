package backend

// Wire shapes for the signed-document multipart endpoints.

type initiateRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	FileSize    int64  `json:"file_size"`
	PartCount   int    `json:"part_count"`
}

type initiateResponse struct {
	UploadID string `json:"upload_id"`
	Key      string `json:"key"`
}

type sessionRef struct {
	UploadID string `json:"upload_id"`
	Key      string `json:"key"`
}

type presignRequest struct {
	UploadID   string `json:"upload_id"`
	Key        string `json:"key"`
	PartNumber int    `json:"part_number"`
}

type presignResponse struct {
	URL string `json:"url"`
}

type completedPartDTO struct {
	PartNumber int    `json:"part_number"`
	ETag       string `json:"etag"`
}

type completeRequest struct {
	UploadID string             `json:"upload_id"`
	Key      string             `json:"key"`
	Parts    []completedPartDTO `json:"parts"`
}

type completeResponse struct {
	Location string `json:"location"`
	Key      string `json:"key"`
}
