package parsley

import "strings"

// IsProcessable reports whether AtomicParsley can tag the file, judged by
// extension alone. Only mp4 and m4v containers are accepted; a path without
// an extension is not processable.
func IsProcessable(path string) bool {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return false
	}
	switch strings.ToLower(path[i+1:]) {
	case "mp4", "m4v":
		return true
	}
	return false
}
