package domain

import "go.trai.ch/zerr"

var (
	// ErrUnauthorized is returned when the requester may not modify the target directory.
	ErrUnauthorized = zerr.New("unauthorized")

	// ErrNotFound is returned when a requested document or version is absent.
	ErrNotFound = zerr.New("not found")

	// ErrDecodingFailure is returned when a metadata document is structurally malformed.
	ErrDecodingFailure = zerr.New("cannot decode metadata")

	// ErrEncodingFailure is returned when a metadata document holds a value the format cannot represent.
	ErrEncodingFailure = zerr.New("cannot encode metadata")

	// ErrStorageFault is returned by storage adapters when the underlying I/O fails.
	ErrStorageFault = zerr.New("storage fault")

	// ErrInvalidLocation is returned when a path cannot be parsed into a Location.
	ErrInvalidLocation = zerr.New("invalid location")

	// ErrUnknownRepository is returned when a repository name is not configured.
	ErrUnknownRepository = zerr.New("unknown repository")

	// ErrInvalidConfig is returned when the configuration file fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrNotConfigured is returned when the application is used before a configuration was loaded.
	ErrNotConfigured = zerr.New("application not configured")
)
