package domain

import "errors"

// Sentinel errors returned by the repositories and the datatable update
// emulator. Handlers map these onto HTTP statuses; everything else is
// treated as an upstream or internal failure.
var (
	// ErrTableNotFound is returned when a datatable cannot be resolved by
	// name or id.
	ErrTableNotFound = errors.New("datatable not found")

	// ErrStoreNotFound is returned when no row in the stores table matches
	// the requested store id.
	ErrStoreNotFound = errors.New("store not found")

	// ErrStoreExists is returned when creating a store whose id is already
	// present in the stores table.
	ErrStoreExists = errors.New("store already exists")

	// ErrConfigurationNotFound is returned when no configuration row
	// matches the requested configuration id.
	ErrConfigurationNotFound = errors.New("configuration not found")

	// ErrConfigurationExists is returned when saving a configuration whose
	// name collides, case-insensitively after trimming, with an existing
	// one in the same store.
	ErrConfigurationExists = errors.New("configuration already exists")

	// ErrNotConfigurationOwner is returned when the caller's customer id
	// does not match the owner of the targeted configuration.
	ErrNotConfigurationOwner = errors.New("configuration belongs to another customer")

	// ErrInvalidTableType is returned when an upload is requested for an
	// unrecognized table type, before any network call is made.
	ErrInvalidTableType = errors.New("invalid column info for table type")

	// ErrConcurrentUpdate is returned when the table version changed
	// between the row fetch and the rewrite of an append.
	ErrConcurrentUpdate = errors.New("datatable was modified concurrently")
)
