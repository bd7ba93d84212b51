// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/unit-economics/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}

// ValidateStorageBackend checks if the storage backend is one of the supported backends.
func ValidateStorageBackend(backend string) error {
	switch backend {
	case constants.StorageBackendFile, constants.StorageBackendSQLite, constants.StorageBackendRedis:
		return nil
	}
	return fmt.Errorf("expected storage backend of %s, %s or %s, got %s",
		constants.StorageBackendFile, constants.StorageBackendSQLite, constants.StorageBackendRedis, backend)
}

// ValidateLogLevel checks a logging level name. Empty means the default.
func ValidateLogLevel(level string) error {
	switch level {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", level)
}

// ValidateLogFormat checks a logging encoder name. Empty means the default.
func ValidateLogFormat(format string) error {
	switch format {
	case "", "json", "console":
		return nil
	}
	return fmt.Errorf("invalid log format: %s", format)
}
