package utils

import "strings"

// DecodeText converts raw file bytes into a UTF-8 string, dropping any byte
// sequences that do not form valid UTF-8 instead of failing.
func DecodeText(data []byte) string {
	return strings.ToValidUTF8(string(data), EmptyString)
}
