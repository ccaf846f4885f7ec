package media

import (
	"strings"
)

// ResolveURL maps a stored photo reference to a retrievable URL. References
// that are already absolute pass through untouched; bare filenames are joined
// onto the configured uploads base path.
func ResolveURL(baseURL, photo string) string {
	if photo == "" {
		return ""
	}
	if strings.HasPrefix(photo, "http://") || strings.HasPrefix(photo, "https://") {
		return photo
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + photo
}
