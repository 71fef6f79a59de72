package flow

import "errors"

// ErrMissingName is returned when a save is attempted without a name.
var ErrMissingName = errors.New("automation name is required")

// ErrUnknownKind is returned when a node kind outside the enumeration is
// requested. This is a contract violation by the caller, not a user-facing
// runtime condition.
var ErrUnknownKind = errors.New("unknown node kind")

// ErrSaveInFlight is returned when a save is initiated while another one is
// still pending for the same editor session.
var ErrSaveInFlight = errors.New("a save is already in flight")

// ErrNotFound is returned by stores when no automation matches the id.
var ErrNotFound = errors.New("automation not found")
