package hdkey

import "github.com/pkg/errors"

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidChainCode is returned when a chain code is absent or not
	// exactly 32 bytes.
	ErrInvalidChainCode = ErrorKind("ErrInvalidChainCode")

	// ErrInvalidKeyMaterial is returned when neither a valid private scalar
	// nor a valid public point is supplied, when a public point is not on
	// the curve, or when a key has been zeroed.
	ErrInvalidKeyMaterial = ErrorKind("ErrInvalidKeyMaterial")

	// ErrInvalidEncoding is returned when a text key is not valid Base58Check.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrInvalidChecksum is returned when the checksum of a text key does not
	// match its payload.
	ErrInvalidChecksum = ErrorKind("ErrInvalidChecksum")

	// ErrInvalidLength is returned when a binary key is not exactly
	// SerializedKeyLen bytes.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrUnknownVersion is returned when the 4-byte version prefix is not in
	// the version registry.
	ErrUnknownVersion = ErrorKind("ErrUnknownVersion")

	// ErrHardenedRequiresPrivateKey is returned when a hardened child is
	// requested from a public-only key.
	ErrHardenedRequiresPrivateKey = ErrorKind("ErrHardenedRequiresPrivateKey")

	// ErrNotAPrivateKey is returned when private material is requested from
	// a public-only key.
	ErrNotAPrivateKey = ErrorKind("ErrNotAPrivateKey")

	// ErrDerivationInvalidForIndex is returned when IL is not less than the
	// group order or the resulting scalar or point is the identity. The
	// caller decides whether to move on to the next index.
	ErrDerivationInvalidForIndex = ErrorKind("ErrDerivationInvalidForIndex")

	// ErrInvalidSeedLen is returned when a master seed is shorter than
	// MinSeedBytes or longer than MaxSeedBytes.
	ErrInvalidSeedLen = ErrorKind("ErrInvalidSeedLen")

	// ErrInvalidPath is returned when a derivation path cannot be parsed or
	// a child index is out of range.
	ErrInvalidPath = ErrorKind("ErrInvalidPath")

	// ErrMaxDepthExceeded is returned when deriving from a key at depth 255.
	ErrMaxDepthExceeded = ErrorKind("ErrMaxDepthExceeded")

	// ErrKeyVersionMismatch is returned when the key data of a serialized key
	// does not match the key type its version declares.
	ErrKeyVersionMismatch = ErrorKind("ErrKeyVersionMismatch")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an extended key error. It has full support for errors.Is
// and errors.As, so the caller can ascertain the specific reason for the
// error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// wrapError creates an Error of the given kind that keeps cause reachable
// through errors.Is and errors.As.
func wrapError(kind ErrorKind, cause error, desc string) error {
	return kindError{err: makeError(kind, desc+": "+cause.Error()), cause: cause}
}

// kindError is an Error that additionally matches its cause.
type kindError struct {
	err   Error
	cause error
}

// Error satisfies the error interface and prints human-readable errors.
func (e kindError) Error() string {
	return e.err.Error()
}

// Unwrap returns the Error holding the kind of e.
func (e kindError) Unwrap() error {
	return e.err
}

// Is reports whether target matches the cause of e. The kind itself is
// matched through Unwrap.
func (e kindError) Is(target error) bool {
	return errors.Is(e.cause, target)
}

// As looks for target in the cause of e. An *Error or *ErrorKind target is
// filled through Unwrap.
func (e kindError) As(target interface{}) bool {
	return errors.As(e.cause, target)
}
