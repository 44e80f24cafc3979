package upload

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxSizeBytes = 5 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Result carries either the stored reference or a user-facing rejection
// reason; callers treat URI as an opaque string.
type Result struct {
	URI    string `json:"uri,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func (r Result) Accepted() bool { return r.Reason == "" }

// Validate applies the type and size constraints without storing anything.
func Validate(filename string, sizeBytes int64) Result {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return Result{Reason: "Only JPG and PNG images are allowed"}
	}
	if sizeBytes > MaxSizeBytes {
		return Result{Reason: "Image must be 5MB or smaller"}
	}
	return Result{}
}

// Upload validates and mints the opaque reference the rest of the app stores.
func Upload(filename string, sizeBytes int64) Result {
	if res := Validate(filename, sizeBytes); !res.Accepted() {
		return res
	}
	ext := strings.ToLower(filepath.Ext(filename))
	return Result{URI: fmt.Sprintf("carelink://uploads/%s%s", uuid.New().String(), ext)}
}
