package domain

import "errors"

// Sentinel errors for classifying failures across packages.
// Wrap them with context so the CLI can use errors.Is:
//
//	return fmt.Errorf("%w: %s", domain.ErrServerNotFound, key)
var (
	// ErrConfigRead indicates servers.json is missing or unreadable.
	ErrConfigRead = errors.New("failed to read config file")

	// ErrConfigParse indicates servers.json is not valid.
	ErrConfigParse = errors.New("failed to parse config file")

	// ErrServerNotFound indicates no entry matches the requested route key.
	ErrServerNotFound = errors.New("server not found")

	// ErrUnknownConnType indicates an entry whose conn_type is neither
	// "password" nor "gcp".
	ErrUnknownConnType = errors.New("unknown connection type")

	// ErrConnectionFailed indicates the launched ssh, expect or gcloud
	// process exited non-zero or could not be started.
	ErrConnectionFailed = errors.New("connection failed")
)
