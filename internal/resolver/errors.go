package resolver

import (
	"errors"
	"fmt"

	"discburn/internal/mmc"
)

var (
	// ErrMediaUnavailable marks every outcome where the inserted media cannot be written.
	ErrMediaUnavailable = errors.New("media unavailable")
	// ErrNoRecommendedWriteMethod indicates a TOC image found no raw write method on the recorder.
	ErrNoRecommendedWriteMethod = errors.New("no suitable raw write method")
)

// Reason explains why media is unavailable.
type Reason int

const (
	// ReasonNoMedia means the drive reports no disc; the user should insert a blank disc.
	ReasonNoMedia Reason = iota + 1
	// ReasonUnsupportedMedia means a disc is present but cannot be written.
	ReasonUnsupportedMedia
	// ReasonQueryFailed means the device could not answer a capability query.
	ReasonQueryFailed
)

func (r Reason) String() string {
	switch r {
	case ReasonNoMedia:
		return "no_media"
	case ReasonUnsupportedMedia:
		return "unsupported_media"
	case ReasonQueryFailed:
		return "query_failed"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// MediaError carries the reason media was rejected. It matches
// ErrMediaUnavailable under errors.Is.
type MediaError struct {
	Reason  Reason
	Profile mmc.Profile
	Err     error
}

func (e *MediaError) Error() string {
	switch e.Reason {
	case ReasonNoMedia:
		return "media unavailable: insert a blank disc"
	case ReasonUnsupportedMedia:
		return fmt.Sprintf("media unavailable: unsupported media (%s)", e.Profile)
	default:
		if e.Err != nil {
			return fmt.Sprintf("media unavailable: %v", e.Err)
		}
		return "media unavailable"
	}
}

func (e *MediaError) Is(target error) bool {
	return target == ErrMediaUnavailable
}

func (e *MediaError) Unwrap() error {
	return e.Err
}

// ReasonOf extracts the Reason from err, or 0 when err is not a MediaError.
func ReasonOf(err error) Reason {
	var mediaErr *MediaError
	if errors.As(err, &mediaErr) {
		return mediaErr.Reason
	}
	return 0
}
