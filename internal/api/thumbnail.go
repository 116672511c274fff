package api

import (
	"path"
	"strings"
)

var thumbnailExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// ThumbnailURL points at the 300px JPEG the storage bucket keeps next to each
// uploaded photo ("photo.png" -> "photo_thumb.jpg"). Signed URLs, non-image
// references and existing thumbnails are returned as is.
func ThumbnailURL(imageURL string) string {
	if imageURL == "" || strings.Contains(imageURL, "_thumb") || strings.Contains(imageURL, "?") {
		return imageURL
	}

	ext := path.Ext(imageURL)
	if !thumbnailExts[strings.ToLower(ext)] {
		return imageURL
	}
	return strings.TrimSuffix(imageURL, ext) + "_thumb.jpg"
}
