package model

import (
	"fmt"
	"strings"
)

// WarningCode identifies the category of a structural anomaly.
type WarningCode int

const (
	// WarnUnknown is the zero value and should not appear in results.
	WarnUnknown WarningCode = iota

	// WarnColumnSplitEmpty indicates a configured two-column split produced
	// an empty left or right column across an entire page.
	WarnColumnSplitEmpty

	// WarnHeaderlessContinuation indicates a page began with non-title
	// content but no carried-over entity existed to receive it.
	WarnHeaderlessContinuation

	// WarnEmptyBody indicates an entity was finalized with no body content.
	WarnEmptyBody

	// WarnBoundaryViolation indicates an entity's text contains another
	// entity's exact name, suggesting a possible merge defect.
	WarnBoundaryViolation

	// WarnAnomalousLength indicates an entity's body is disproportionately
	// long compared to its peers, suggesting an unintended merge.
	WarnAnomalousLength

	// WarnRowCountMismatch indicates a table region produced a different
	// number of rows than the caller declared.
	WarnRowCountMismatch
)

// String returns the stable identifier for the warning code.
func (c WarningCode) String() string {
	switch c {
	case WarnColumnSplitEmpty:
		return "column_split_empty"
	case WarnHeaderlessContinuation:
		return "headerless_continuation"
	case WarnEmptyBody:
		return "empty_body"
	case WarnBoundaryViolation:
		return "boundary_violation"
	case WarnAnomalousLength:
		return "anomalous_length"
	case WarnRowCountMismatch:
		return "row_count_mismatch"
	default:
		return "unknown"
	}
}

// Warning describes a structural anomaly detected during extraction.
// Warnings are advisory: they annotate results, they never discard data.
type Warning struct {
	// Code identifies the anomaly category.
	Code WarningCode

	// Message is a human-readable description.
	Message string

	// Page is the 1-based page number the anomaly was observed on,
	// or 0 if the anomaly is not tied to a single page.
	Page int
}

// String formats the warning as "code: message (page N)".
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("%s: %s (page %d)", w.Code, w.Message, w.Page)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings formats a list of warnings as a newline-separated string,
// suitable for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
