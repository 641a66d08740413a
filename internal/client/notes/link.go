package notes

import "strings"

// ShareLink builds the public URL of a note: origin + "/note/" + id.
// Trailing slashes of origin are dropped.
func ShareLink(origin, id string) string {
	return strings.TrimRight(origin, "/") + "/note/" + id
}
