// Package apperr holds the typed business errors the services return and the
// fiber handler that maps them onto HTTP responses.
package apperr

import (
	"errors"
	"fmt"
)

// NotFoundError: a referenced or targeted entity does not exist. Kind and ID
// are kept as fields so the boundary can report them verbatim.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s with id: %s", e.Kind, e.ID)
}

func NotFound(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// LockedError: a mutation was attempted against a record whose parent shipment
// has reached the terminal COMPLETED status.
type LockedError struct {
	ShipmentID string
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("record is locked: shipment %s has status COMPLETED", e.ShipmentID)
}

func Locked(shipmentID string) *LockedError {
	return &LockedError{ShipmentID: shipmentID}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsLocked(err error) bool {
	var le *LockedError
	return errors.As(err, &le)
}
