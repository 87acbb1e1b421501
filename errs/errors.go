// Package errs defines sentinel errors shared across the tensormap packages.
//
// All errors are terminal and surfaced synchronously at construction or
// decode time; nothing in this library retries or recovers internally.
// Call sites wrap these sentinels with fmt.Errorf("%w: ...") to attach
// context, so callers can match with errors.Is while still getting a
// human-readable message.
package errs

import "errors"

// Construction errors for labels, blocks and maps.
var (
	// ErrInvalidLabelName is returned when a label column name is not a
	// valid identifier (empty, leading digit, or non [A-Za-z0-9_] chars).
	ErrInvalidLabelName = errors.New("invalid label name")

	// ErrDuplicateLabels is returned when the same entry is added to a set
	// of labels more than once.
	ErrDuplicateLabels = errors.New("duplicate labels entry")

	// ErrSizeMismatch is returned when a labels entry has a different
	// number of values than the labels have columns.
	ErrSizeMismatch = errors.New("labels entry size mismatch")

	// ErrInvalidShape is returned when an array shape is inconsistent with
	// its data (negative dimension, ragged rows, wrong element count).
	ErrInvalidShape = errors.New("invalid array shape")

	// ErrShapeMismatch is returned when a block's value dimensions disagree
	// with the lengths of its samples/components/properties labels.
	ErrShapeMismatch = errors.New("block shape mismatch")

	// ErrLengthMismatch is returned when a map's keys have a different
	// number of entries than the number of blocks.
	ErrLengthMismatch = errors.New("keys/blocks length mismatch")

	// ErrOriginMismatch is returned when the blocks given to a map were
	// produced by more than one backend.
	ErrOriginMismatch = errors.New("origin mismatch")
)

// Origin registry errors.
var (
	// ErrUnsupportedBackend is returned when a buffer type cannot be
	// introspected into an array.
	ErrUnsupportedBackend = errors.New("unsupported backend buffer")

	// ErrUnknownOrigin is returned when looking up the name of an origin
	// id that was never registered.
	ErrUnknownOrigin = errors.New("unknown origin")
)

// Serialization errors.
var (
	// ErrInvalidHeaderSize is returned when the header section is not
	// exactly section.HeaderSize bytes.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagic is returned when the header magic number does not
	// identify a tensormap file.
	ErrInvalidMagic = errors.New("invalid magic number")

	// ErrInvalidCompression is returned for an unrecognized compression
	// type in the header or encoder options.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrInvalidDType is returned for an unrecognized or unsupported value
	// data type in the header.
	ErrInvalidDType = errors.New("invalid value data type")

	// ErrChecksumMismatch is returned when the payload checksum does not
	// match the checksum recorded in the header.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrInvalidIndexEntry is returned when a block index entry cannot be
	// parsed or points outside the payload.
	ErrInvalidIndexEntry = errors.New("invalid block index entry")

	// ErrTruncatedData is returned when the input ends before a complete
	// section could be read.
	ErrTruncatedData = errors.New("truncated data")
)
