// Package core provides the data layer for the aptamer database browser.
//
// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support
// reference. Error codes are grouped by category:
//
// # Lookup Errors (REC, TGT)
//
//	REC001 - Record not found: No aptamer record has this ID
//	         Action: Record IDs change when the data is reloaded; search again
//	         Patterns: "record not found"
//
//	TGT001 - Target not found: No records exist for this target name
//	         Action: Target names are case-sensitive; search to find the exact name
//	         Patterns: "target not found"
//
// # Request Errors (REQ)
//
//	REQ001 - Missing parameter: A required parameter is missing
//	         Action: Provide the parameter and try again
//	         Patterns: "missing parameter"
//
//	REQ002 - Request cancelled: Request was cancelled
//	         Action: Please try again
//	         Patterns: "context canceled"
//
//	REQ003 - Request timeout: Request timed out
//	         Action: Please try again in a few moments
//	         Patterns: "context deadline exceeded", "timeout"
//
//	REQ004 - Invalid tab: Unknown detail tab
//	         Action: Use one of All, P, A, B, C
//	         Patterns: "invalid tab"
//
//	REQ005 - Page not found: No page at this address
//	         Action: Check the address or start a new search
//	         Patterns: "page not found"
//
// # Rate Limiting (RATE)
//
//	RATE001 - Rate limited: Too many requests
//	          Action: Please wait a moment before trying again
//	          Patterns: "rate limit"
//
// # Data Errors (DATA)
//
//	DATA001 - Data source unavailable: The record file could not be read
//	          Action: Sample data is shown; check the data source configuration
//	          Patterns: "data source unavailable", "no records"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Please try again or contact support
//
// Patterns are matched case-insensitively using strings.Contains; the first
// match wins, so specific patterns come before general ones.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// The first matching pattern wins, so order matters.
var errorPatterns = []errorPattern{
	// =========================================================================
	// Lookup Errors
	// =========================================================================
	{
		pattern: "record not found",
		msg: UserMessage{
			Message: "Record not found",
			Action:  "Record IDs change when the data is reloaded; search again",
			Code:    "REC001",
		},
	},
	{
		pattern: "target not found",
		msg: UserMessage{
			Message: "Target not found",
			Action:  "Target names are case-sensitive; search to find the exact name",
			Code:    "TGT001",
		},
	},

	// =========================================================================
	// Request Errors
	// =========================================================================
	{
		pattern: "missing parameter",
		msg: UserMessage{
			Message: "A required parameter is missing",
			Action:  "Provide the parameter and try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again in a few moments",
			Code:    "REQ003",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again in a few moments",
			Code:    "REQ003",
		},
	},
	{
		pattern: "invalid tab",
		msg: UserMessage{
			Message: "Unknown detail tab",
			Action:  "Use one of All, P, A, B, C",
			Code:    "REQ004",
		},
	},
	{
		pattern: "page not found",
		msg: UserMessage{
			Message: "Page not found",
			Action:  "Check the address or start a new search",
			Code:    "REQ005",
		},
	},

	// =========================================================================
	// Rate Limiting
	// =========================================================================
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},

	// =========================================================================
	// Data Errors
	// =========================================================================
	{
		pattern: "data source unavailable",
		msg: UserMessage{
			Message: "The record file could not be read",
			Action:  "Sample data is shown; check the data source configuration",
			Code:    "DATA001",
		},
	},
	{
		pattern: "no records",
		msg: UserMessage{
			Message: "The record file could not be read",
			Action:  "Sample data is shown; check the data source configuration",
			Code:    "DATA001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If no pattern matches, a generic fallback message with code ERR000 is returned.
//
// Example:
//
//	err := fmt.Errorf("%w: %q", ErrTargetNotFound, "thrombin")
//	msg := MapError(err)
//	// msg.Code == "TGT001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern rather than the
// generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-friendly message.
// The original error is preserved for logging via Unwrap.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError creates a UserError by mapping a technical error.
// Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
