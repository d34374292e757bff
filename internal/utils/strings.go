package utils

import (
	"strings"
)

// TrimPtr trims the pointee and maps blank values to nil.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// Deref returns the pointee or def when p is nil.
func Deref(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
