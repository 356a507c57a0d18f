package ustar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates that the buffer cannot hold a tar archive:
	// its length is zero, not a multiple of the 512-byte block size, or too
	// small for even one header plus the end-of-archive terminator.
	ErrInvalidSize = errors.New("ustar: archive length must be a multiple of 512 and at least 1024")

	// ErrChecksum indicates that a header block's stored checksum does not
	// match the sum of its bytes.
	ErrChecksum = errors.New("ustar: header checksum mismatch")

	// ErrNumberFormat indicates that an octal header field contains a byte
	// that is neither an octal digit nor a terminator.
	ErrNumberFormat = errors.New("ustar: invalid octal digit in header field")

	// ErrNumberOverflow indicates that an octal header field decodes to a
	// value larger than the field's bound allows.
	ErrNumberOverflow = errors.New("ustar: header field value out of range")

	// ErrInvalidName indicates that an entry's resolved path is empty or is
	// not valid UTF-8.
	ErrInvalidName = errors.New("ustar: invalid entry name")

	// ErrNameTooLong indicates that the combined prefix and name fields
	// exceed the 256-character ustar path bound.
	ErrNameTooLong = errors.New("ustar: entry name too long")

	// ErrTruncated indicates that a header declares more data than the
	// buffer holds.
	ErrTruncated = errors.New("ustar: file data extends past end of archive")

	// ErrInvalidText is returned by Entry.Text when the entry's data is not
	// valid UTF-8.
	ErrInvalidText = errors.New("ustar: entry data is not valid UTF-8")
)

// errEndOfArchive marks an all-zero terminator block. It never escapes the
// package; Reader.Next translates it to io.EOF.
var errEndOfArchive = errors.New("end of archive")

// HeaderError reports the offset of a header block that could not be
// decoded. Offsets before it remain trustworthy; offsets after it are
// derived from the corrupt header and are not.
type HeaderError struct {
	Offset int64
	Err    error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%v (header at offset %d)", e.Err, e.Offset)
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}

// FieldError names the header field that failed to decode.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v (field %s)", e.Err, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
