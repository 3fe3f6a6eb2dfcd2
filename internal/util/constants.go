package util

import "strings"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// upload validation
const (
	MimeVideo = "video/"
	MimeImage = "image/"
	MimePDF   = "application/pdf"
)

var allowedVideoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
}

// ValidVideoExtension reports whether ext (including the dot) is an accepted
// lesson video container.
func ValidVideoExtension(ext string) bool {
	return allowedVideoExtensions[strings.ToLower(ext)]
}
