package domain

import (
	"errors"
	"sort"
	"strings"
)

var ErrTokenInvalid = errors.New("token is not valid")
var ErrProductNotFound = errors.New("product not found")
var ErrCacheMiss = errors.New("catalog cache miss")

// FieldErrors carries per-field validation failures reported by the auth API
// on signup, keyed by field name.
type FieldErrors map[string][]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(fe[f], " "))
	}
	return strings.Join(parts, "; ")
}
