package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrNotRecipeOwner     = errors.New("not authorized to modify this recipe")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports every violated field with its message, mirroring
// the per-field error list clients expect on a 400.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
