// Package avatar builds placeholder profile-image URLs for records that were
// saved without a picture. The same name always yields the same URL.
package avatar

import (
	"fmt"
	"hash/fnv"
	"net/url"
)

const baseURL = "https://ui-avatars.com/api/"

// palette holds the background colors the generated avatars cycle through.
var palette = []string{
	"4f46e5", "ec4899", "10b981", "f59e0b",
	"6366f1", "8b5cf6", "ef4444", "14b8a6",
}

// URL returns the placeholder image URL for the given display name. The
// background color is picked from the palette by a hash of the name, so the
// result is stable across calls and processes.
func URL(name string) string {
	return fmt.Sprintf("%s?name=%s&background=%s&color=fff&size=150",
		baseURL, url.QueryEscape(name), Color(name))
}

// Color returns the palette entry selected for the given name.
func Color(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	return palette[h.Sum32()%uint32(len(palette))]
}
