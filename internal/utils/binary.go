package utils

// IsBinary reports whether the provided byte slice appears to contain binary
// rather than textual data. A NUL byte anywhere in the content is treated as
// the binary marker.
func IsBinary(data []byte) bool {
	for _, byteValue := range data {
		if byteValue == 0 {
			return true
		}
	}
	return false
}
