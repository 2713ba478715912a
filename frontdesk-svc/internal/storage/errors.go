package storage

import (
	"errors"
	"fmt"
)

// ErrMalformedRelation marks an order detail whose link set carries neither a
// dish nor a set-meal reference. There is no way to tell what was ordered, so
// the whole fetch fails rather than skipping the record.
var ErrMalformedRelation = errors.New("order detail references neither a dish nor a set meal")

type NotFoundError struct {
	Resource string
	Key      int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.Key)
}

// ConflictError reports a uniqueness violation (duplicate phone number, dish
// name, set-meal name) so callers can tell it apart from a generic failure.
type ConflictError struct {
	Resource string
	Reason   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Resource, e.Reason)
}

type RequestError struct {
	Op     string
	Status int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: backend returned status %d", e.Op, e.Status)
}

func success(status int) bool {
	return status >= 200 && status < 300
}
