package constants

import "strings"

// Category is stored in lower case regardless of the casing it arrived in.
type Category string

const (
	CategoryPrivate Category = "private"
	CategoryWork    Category = "work"
	CategoryGeneral Category = "general"
)

func ParseCategory(s string) (Category, bool) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryPrivate, CategoryWork, CategoryGeneral:
		return c, true
	}
	return "", false
}
