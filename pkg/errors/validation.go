package errors

import (
	"strings"
	"unicode"
)

// ValidateDatasetName validates a dataset identifier supplied on the command
// line. Dataset names are short lowercase identifiers ("bechdel",
// "postoffices"); anything that could be a path or injection attempt is
// rejected here before it reaches the fetch layer.
func ValidateDatasetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDataset, "dataset name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidDataset, "dataset name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDataset, "dataset name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\. ") {
		return New(ErrCodeInvalidDataset, "dataset name must be a bare identifier: %q", name)
	}

	return nil
}

// ValidatePath validates a local file path supplied for a dataset or output
// file. It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// ValidateYearRange validates an inclusive [from, to] year interval.
// Both bounds must be positive four-digit-or-less years and from must not
// exceed to.
func ValidateYearRange(from, to int) error {
	if from <= 0 || to <= 0 {
		return New(ErrCodeInvalidRange, "years must be positive: got %d..%d", from, to)
	}
	if from > to {
		return New(ErrCodeInvalidRange, "year range start %d after end %d", from, to)
	}
	if to > 9999 {
		return New(ErrCodeInvalidRange, "year %d has more than four digits", to)
	}
	return nil
}
