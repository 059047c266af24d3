// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors and the two recoverable error categories of the map.
// Policy:
//   - Specific sentinels are always wrapped in a category error carrying the operation.
//   - errors.Is works against both the category and the specific sentinel.

package core

import (
	"errors"
	"fmt"
)

// Category sentinels.
var (
	// ErrValidation marks every rejected mutation; the graph is left unchanged.
	ErrValidation = errors.New("core: validation failed")

	// ErrNotFound marks lookups and removals of absent settlements or roads.
	ErrNotFound = errors.New("core: not found")
)

// Validation sentinels, always delivered inside a *ValidationError.
var (
	// ErrDuplicateName indicates a settlement with the same name is already on the map.
	ErrDuplicateName = errors.New("core: settlement already exists on map")

	// ErrDuplicateRoad indicates a road with the same (name, source, destination) exists.
	ErrDuplicateRoad = errors.New("core: road already exists on map")

	// ErrConnectingRoadExists indicates the unordered settlement pair is already joined.
	ErrConnectingRoadExists = errors.New("core: connecting road already exists")

	// ErrUnknownEndpoint indicates a road endpoint is not a settlement on the map.
	ErrUnknownEndpoint = errors.New("core: source or destination settlement not found")

	// ErrAttached indicates the settlement value is already on a map.
	ErrAttached = errors.New("core: settlement already belongs to a map")

	// ErrBadName indicates an empty name or one containing ':' or a line break.
	ErrBadName = errors.New("core: invalid name")

	// ErrBadPopulation indicates a negative population.
	ErrBadPopulation = errors.New("core: population must be non-negative")

	// ErrBadLength indicates a road length that is not a finite positive number.
	ErrBadLength = errors.New("core: road length must be finite and positive")

	// ErrLoopNotAllowed indicates a road whose source and destination are the same settlement.
	ErrLoopNotAllowed = errors.New("core: road cannot join a settlement to itself")

	// ErrUnknownKind indicates a settlement kind outside the fixed enumeration.
	ErrUnknownKind = errors.New("core: unknown settlement kind")

	// ErrUnknownClassification indicates a road classification outside the fixed enumeration.
	ErrUnknownClassification = errors.New("core: unknown road classification")
)

// Not-found sentinels, always delivered inside a *NotFoundError.
var (
	// ErrSettlementNotFound indicates the named settlement is not on the map.
	ErrSettlementNotFound = errors.New("core: settlement not found")

	// ErrRoadNotFound indicates no road matches the requested identity.
	ErrRoadNotFound = errors.New("core: road not found")
)

// ValidationError reports a rejected mutation or an unparsable attribute.
type ValidationError struct {
	Op      string // operation, e.g. "add road"
	Subject string // the offending name or raw value
	Err     error  // specific sentinel
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Subject, e.Err)
}

// Unwrap exposes the specific sentinel.
func (e *ValidationError) Unwrap() error { return e.Err }

// Is reports whether target is the ErrValidation category.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a missing settlement or road.
type NotFoundError struct {
	Op  string // operation, e.g. "remove settlement"
	Key string // settlement name or formatted RoadID
	Err error  // ErrSettlementNotFound or ErrRoadNotFound
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap exposes the specific sentinel.
func (e *NotFoundError) Unwrap() error { return e.Err }

// Is reports whether target is the ErrNotFound category.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// IsValidation reports whether err belongs to the validation category.
func IsValidation(err error) bool {
	return err != nil && errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err belongs to the not-found category.
func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, ErrNotFound)
}

func invalid(op, subject string, err error) error {
	return &ValidationError{Op: op, Subject: subject, Err: err}
}

func notFound(op, key string, err error) error {
	return &NotFoundError{Op: op, Key: key, Err: err}
}
