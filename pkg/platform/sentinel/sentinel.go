package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The registry and loaders return
// these (optionally wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: no country is registered under the requested code
//   - ErrEmpty: an input stream or registry holds no usable rows
//   - ErrUnavailable: a data source could not be opened or read
//
// For validation errors (bad codes, bad numbers), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrEmpty       = errors.New("empty")
	ErrUnavailable = errors.New("unavailable")
)
