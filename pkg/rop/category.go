package rop

import (
	"net/http"
	"strconv"
)

// Category is the closed set of semantic failure classes an Error belongs to.
type Category int

const (
	CategoryValidation Category = iota
	CategoryNotFound
	CategoryUnauthorized
	CategoryForbidden
	CategoryConflict
	CategoryTooManyRequests
	CategoryUnexpected
	CategoryCustom
)

type categoryInfo struct {
	name    string
	status  int
	title   string
	code    string
	message string
}

var categories = map[Category]categoryInfo{
	CategoryValidation:      {"Validation", http.StatusUnprocessableEntity, "Unprocessable Entity", "VALIDATION_ERROR", "A validation error has occurred."},
	CategoryNotFound:        {"NotFound", http.StatusNotFound, "Not Found", "NOT_FOUND", "The requested resource was not found."},
	CategoryUnauthorized:    {"Unauthorized", http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED", "Authentication is required."},
	CategoryForbidden:       {"Forbidden", http.StatusForbidden, "Forbidden", "FORBIDDEN", "Access to the resource is forbidden."},
	CategoryConflict:        {"Conflict", http.StatusConflict, "Conflict", "CONFLICT", "The request conflicts with the current state."},
	CategoryTooManyRequests: {"TooManyRequests", http.StatusTooManyRequests, "Too Many Requests", "TOO_MANY_REQUESTS", "Too many requests."},
	CategoryUnexpected:      {"Unexpected", http.StatusInternalServerError, "Internal Server Error", "UNEXPECTED_ERROR", "An unexpected error has occurred."},
	CategoryCustom:          {"Custom", http.StatusInternalServerError, "Error", "CUSTOM_ERROR", "An error has occurred."},
}

// info falls back to the Custom defaults for values outside the set, but
// keeps them visible by name.
func (c Category) info() categoryInfo {
	if i, ok := categories[c]; ok {
		return i
	}
	i := categories[CategoryCustom]
	i.name = "Category(" + strconv.Itoa(int(c)) + ")"
	return i
}

// String returns the category name, e.g. "NotFound", or "Category(n)" for a
// value outside the set.
func (c Category) String() string { return c.info().name }

// DefaultStatus is the conventional transport status for the category.
// Custom errors always carry a caller-supplied status; 500 is only the fallback.
func (c Category) DefaultStatus() int { return c.info().status }

// Title is the short status phrase for the category's default status.
func (c Category) Title() string { return c.info().title }

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// TitleFor returns the short phrase for a transport status. Statuses used by the
// categories map to their table title, others to net/http's phrase, and
// unknown statuses to "Error".
func TitleFor(status int) string {
	for _, i := range categories {
		if i.status == status && i.name != "Custom" {
			return i.title
		}
	}
	if t := http.StatusText(status); t != "" {
		return t
	}
	return "Error"
}
