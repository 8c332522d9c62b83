package rop

// Marker is an error condition identified by a fixed message. Markers are
// comparable, so errors.Is matches them by value through any wrapping.
type Marker string

func (m Marker) Error() string {
	return string(m)
}

const (
	// ErrInvalidAccess is raised when the value of an absent Maybe is read.
	ErrInvalidAccess Marker = "bad optional access"
	// ErrWrongChannel is raised when a Result is read through the channel
	// it does not hold.
	ErrWrongChannel Marker = "bad result channel access"
	// ErrEmptyResult is carried by the zero value of Result.
	ErrEmptyResult Marker = "empty result"
	// ErrNilError replaces a nil error passed to Fail.
	ErrNilError Marker = "failure without error"
)
