package types

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSnapshotArchive is returned by a locator when the archive
	// output directory holds no usable snapshot archive.
	ErrNoSnapshotArchive = errors.New("no snapshot archive found")
	// ErrInvalidArchiveName is returned when a file name does not carry a
	// parseable (slot, hash, format) claim.
	ErrInvalidArchiveName = errors.New("invalid snapshot archive name")
	// ErrUnknownArchiveFormat is returned for unsupported archive
	// container formats.
	ErrUnknownArchiveFormat = errors.New("unknown snapshot archive format")
	// ErrInvalidHash is returned when decoding a malformed hash text form.
	ErrInvalidHash = errors.New("invalid hash")
)

// ReplayError wraps an error produced while replaying ledger entries,
// either from genesis or while catching up from a verified anchor. These
// concern malformed ledger content rather than environment trust, so they
// are surfaced to the caller instead of terminating the process; retrying
// is the caller's decision.
type ReplayError struct {
	// Slot the failing entry belongs to, when known.
	Slot *Slot
	Err  error
}

func NewReplayError(err error) *ReplayError {
	return &ReplayError{Err: err}
}

func NewReplayErrorAt(slot Slot, err error) *ReplayError {
	return &ReplayError{Slot: &slot, Err: err}
}

func (e *ReplayError) Error() string {
	if e.Slot != nil {
		return fmt.Sprintf("ledger replay failed at slot %d: %v", *e.Slot, e.Err)
	}
	return fmt.Sprintf("ledger replay failed: %v", e.Err)
}

func (e *ReplayError) Unwrap() error {
	return e.Err
}
