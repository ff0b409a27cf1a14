package assets

import (
	"path/filepath"
	"strings"
)

// Media classifies an asset file.
type Media string

const (
	MediaImage Media = "image"
	MediaVideo Media = "video"
	MediaOther Media = "other"
)

var extensionMedia = map[string]Media{
	".jpg":  MediaImage,
	".jpeg": MediaImage,
	".png":  MediaImage,
	".webp": MediaImage,
	".gif":  MediaImage,
	".avif": MediaImage,
	".svg":  MediaImage,
	".ico":  MediaImage,
	".mp4":  MediaVideo,
	".webm": MediaVideo,
	".mov":  MediaVideo,
	".m4v":  MediaVideo,
}

// DetectMedia classifies filename by its extension.
func DetectMedia(filename string) Media {
	if m, ok := extensionMedia[strings.ToLower(filepath.Ext(filename))]; ok {
		return m
	}
	return MediaOther
}
