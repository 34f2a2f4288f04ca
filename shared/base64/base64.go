package base64

import "strings"

// GetContentType extracts the mime type from a data URI, e.g.
// "data:image/png;base64,..." yields "image/png".
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}
