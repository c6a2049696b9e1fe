package app

import "github.com/ayoisaiah/tempo/internal/apperr"

var (
	errNoTags = &apperr.Error{
		Message: "no tags given: usage is '%s'",
	}

	errTrackUsage = &apperr.Error{
		Message: "a start and an end time are required: usage is 'track <start> <end> <tags...>'",
	}

	errDeleteUsage = &apperr.Error{
		Message: "exactly one activity id is required: usage is 'delete <id>'",
	}

	errInvalidID = &apperr.Error{
		Message: "invalid activity id %q",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period: %s",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the end time must not be earlier than the start time",
	}
)
