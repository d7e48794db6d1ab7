// ABOUTME: Utility functions for parsing integers from loosely formatted attributes
// ABOUTME: Used for media dimensions such as width="640" or width=" 640px"

package parse

import (
	"strconv"
	"strings"
)

// IntOrZero parses the leading decimal digits of s, returning 0 when there are none
func IntOrZero(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return v
}
