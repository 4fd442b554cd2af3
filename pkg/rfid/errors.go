package rfid

import (
	"errors"
	"fmt"
)

// Lifecycle and classification errors.
var (
	// ErrTimeout matches, via errors.Is, any StatusError or ResultError
	// carrying StatusResponseTimeout.
	ErrTimeout = errors.New("rfid: reader response timeout")

	// ErrUnknownStatus matches, via errors.Is, any StatusError or
	// ResultError whose code is outside the known Status set.
	ErrUnknownStatus = errors.New("rfid: unknown status code")

	ErrAlreadyStarted = errors.New("rfid: manager already started")
	ErrClosed         = errors.New("rfid: manager closed")
)

// StatusError is a failed SDK call that came with a descriptive message.
type StatusError struct {
	Status  Status
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("rfid: %s: %s", statusLabel(e.Status), e.Message)
}

// Is matches ErrTimeout and ErrUnknownStatus.
func (e *StatusError) Is(target error) bool {
	return statusMatches(e.Status, target)
}

// ResultError is a failed SDK call without a message.
type ResultError struct {
	Status Status
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("rfid: bad result code %s", statusLabel(e.Status))
}

// Is matches ErrTimeout and ErrUnknownStatus.
func (e *ResultError) Is(target error) bool {
	return statusMatches(e.Status, target)
}

// ParameterError reports an argument that failed local validation. The
// SDK was not called.
type ParameterError struct {
	Name string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("rfid: invalid parameter %q", e.Name)
}

// OperationError reports a tag access the SDK accepted but the tag
// reported as unsuccessful.
type OperationError struct {
	Operation NamedAccessOperation
	Status    string
}

func (e *OperationError) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("rfid: %s operation unsuccessful", e.Operation.Code)
	}
	return fmt.Sprintf("rfid: %s operation unsuccessful: %s", e.Operation.Code, e.Status)
}

// StatusOf extracts the SDK status carried by err. It returns false for
// errors that did not come from an SDK result.
func StatusOf(err error) (Status, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status, true
	}
	var re *ResultError
	if errors.As(err, &re) {
		return re.Status, true
	}
	return 0, false
}

func statusMatches(s Status, target error) bool {
	switch target {
	case ErrTimeout:
		return s == StatusResponseTimeout
	case ErrUnknownStatus:
		return !s.Valid()
	default:
		return false
	}
}

func statusLabel(s Status) string {
	if s.Valid() {
		return s.String()
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint32(s))
}
