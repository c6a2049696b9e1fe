package config

import "github.com/ayoisaiah/tempo/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level %q (must be one of %s)",
	}

	errInvalidLogFormat = &apperr.Error{
		Message: "unknown log format %q (must be one of %s)",
	}
)
