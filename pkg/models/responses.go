// Package models defines the wire types of the Reocities HTTP API.
package models

// APIStatus is the success/error envelope every API response carries.
type APIStatus struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// FailureMessage returns the server's explanation for a failed call.
func (s APIStatus) FailureMessage() string {
	if s.Error != "" {
		return s.Error
	}
	if s.Message != "" {
		return s.Message
	}
	return "unknown error"
}

// UploadResult is the response to a single-file upload.
type UploadResult struct {
	APIStatus
	Filename string `json:"filename,omitempty"`
	Path     string `json:"path,omitempty"`
}

// UploadedFile is one successfully stored file in a bulk upload response.
type UploadedFile struct {
	Path string `json:"path"`
}

// FailedFile is one rejected file in a bulk upload response.
type FailedFile struct {
	Filename string `json:"filename"`
	Error    string `json:"error,omitempty"`
}

// Reason returns the per-file error, or a placeholder when the server
// omitted one.
func (f FailedFile) Reason() string {
	if f.Error != "" {
		return f.Error
	}
	return "unknown error"
}

// BulkUploadResult is the response to a bulk upload. Success refers to the
// request as a whole; individual files land in Uploaded or Failed.
type BulkUploadResult struct {
	APIStatus
	Uploaded []UploadedFile `json:"uploaded,omitempty"`
	Failed   []FailedFile   `json:"failed,omitempty"`
}

// RemoteFile is one entry in a file listing.
type RemoteFile struct {
	Path string `json:"path,omitempty"`
	Name string `json:"name,omitempty"`
	Size int64  `json:"size"`
}

// DisplayPath prefers the full path and falls back to the bare name, since
// the API populates either depending on the listing mode.
func (f RemoteFile) DisplayPath() string {
	if f.Path != "" {
		return f.Path
	}
	return f.Name
}

// ListResult is the response to a file listing.
type ListResult struct {
	APIStatus
	Files []RemoteFile `json:"files,omitempty"`
}
