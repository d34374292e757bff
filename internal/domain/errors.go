package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or malformed input field. Msg is the
// client-facing text; Field names the first offending field when known.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// NoSeatsError reports a booking attempt on a ride with no seats left.
type NoSeatsError struct {
	RideID string
}

func (e NoSeatsError) Error() string {
	return "no seats available for this ride"
}

// NoContentError reports a query that legitimately matched nothing.
type NoContentError struct {
	Msg     string
	Details map[string]any
}

func (e NoContentError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "no content"
}

// StoreError wraps a failure of the underlying data store.
type StoreError struct {
	Op  string
	Err error
}

func (e StoreError) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Op != "":
		return e.Op
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "store error"
	}
}

func (e StoreError) Unwrap() error { return e.Err }

// WrapStore returns err unchanged when it already belongs to the taxonomy,
// otherwise it is wrapped as a StoreError for op.
func WrapStore(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsValidation(err) || IsNotFound(err) || IsNoSeats(err) || IsNoContent(err) || IsStore(err) {
		return err
	}
	return StoreError{Op: op, Err: err}
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNoSeats(err error) bool {
	var target NoSeatsError
	return errors.As(err, &target)
}

func IsNoContent(err error) bool {
	var target NoContentError
	return errors.As(err, &target)
}

func IsStore(err error) bool {
	var target StoreError
	return errors.As(err, &target)
}
