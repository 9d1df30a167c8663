package core

// error_messages.go maps technical errors to user-facing messages with codes.
//
// Codes are grouped by stage:
//
//	USE001 - Wrong number of arguments
//	USE002 - Output file already exists
//	PARSE001 - Input file not found
//	PARSE002 - Input is not valid CSV
//	PARSE003 - Join column missing from header
//	PARSE004 - Input exceeds JOIN_MAX_FILE_SIZE
//	PARSE005 - Input has no header row
//	OUT001 - Merged table could not be encoded
//	OUT002 - Output file could not be written
//	ERR000 - Anything else
//
// Typed errors are matched first with errors.Is/errors.As; the remaining
// ParseError causes are matched on message patterns (case-insensitive
// strings.Contains). The first match wins.

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// Messages for errors recognised by type rather than text.
var (
	msgOutputExists = UserMessage{
		Message: "Output file already exists",
		Action:  "Choose a new output path or remove the existing file",
		Code:    "USE002",
	}
	msgUsage = UserMessage{
		Message: "Invalid command line",
		Action:  "Pass exactly three arguments: two input files and one output file",
		Code:    "USE001",
	}
	msgNotFound = UserMessage{
		Message: "Input file not found",
		Action:  "Check the input path",
		Code:    "PARSE001",
	}
	msgMissingColumn = UserMessage{
		Message: "Join column is missing from CSV header",
		Action:  "Both files need Address_Number and Street columns",
		Code:    "PARSE003",
	}
	msgTooLarge = UserMessage{
		Message: "Input file exceeds the configured size limit",
		Action:  "Raise JOIN_MAX_FILE_SIZE or split the file",
		Code:    "PARSE004",
	}
	msgEmptyFile = UserMessage{
		Message: "Input file has no header row",
		Action:  "Provide a CSV file whose first line names the columns",
		Code:    "PARSE005",
	}
	msgSerialize = UserMessage{
		Message: "Merged data could not be converted to CSV",
		Action:  "Check the input files for structural problems",
		Code:    "OUT001",
	}
	msgWrite = UserMessage{
		Message: "Output file could not be written",
		Action:  "Check permissions and free disk space for the output path",
		Code:    "OUT002",
	}
)

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns covers encoding/csv failures surfaced through ParseError.
var errorPatterns = []errorPattern{
	{
		pattern: "wrong number of fields",
		msg: UserMessage{
			Message: "A row has a different number of fields than the header",
			Action:  "Ensure every row is comma-separated with consistent columns",
			Code:    "PARSE002",
		},
	},
	{
		pattern: "bare \" in non-quoted-field",
		msg: UserMessage{
			Message: "A field contains an unescaped quote",
			Action:  "Quote the field and double any embedded quotes",
			Code:    "PARSE002",
		},
	},
	{
		pattern: "extraneous or missing \" in quoted-field",
		msg: UserMessage{
			Message: "A quoted field is not terminated correctly",
			Action:  "Check quoting around the reported line",
			Code:    "PARSE002",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log output for details",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If nothing matches, a generic fallback message with code ERR000 is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var (
		usageErr *UsageError
		parseErr *ParseError
		serErr   *SerializationError
		writeErr *WriteError
	)

	switch {
	case errors.Is(err, fs.ErrExist) && errors.As(err, &usageErr):
		return msgOutputExists
	case errors.As(err, &usageErr):
		return msgUsage
	case errors.As(err, &serErr):
		return msgSerialize
	case errors.As(err, &writeErr):
		return msgWrite
	case errors.As(err, &parseErr):
		return mapParseError(parseErr)
	}

	return matchPattern(err)
}

func mapParseError(err *ParseError) UserMessage {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return msgNotFound
	case errors.Is(err, ErrMissingColumn):
		return msgMissingColumn
	case errors.Is(err, ErrFileTooLarge):
		return msgTooLarge
	case errors.Is(err, ErrEmptyFile):
		return msgEmptyFile
	}
	return matchPattern(err)
}

func matchPattern(err error) UserMessage {
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

// IsUserFacing reports whether err maps to a specific message rather than ERR000.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
