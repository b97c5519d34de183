package model

import "path/filepath"

// File is a file staged for upload, referenced by path.
type File struct {
	Path string
}

func (f File) Name() string {
	return filepath.Base(f.Path)
}

type UploadResult struct {
	Message string `json:"message,omitempty"`
}
