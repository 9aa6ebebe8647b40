package resolver

import (
	"errors"
	"fmt"

	"discburn/internal/mmc"
)

// Speed is one entry of the offered write speed list.
type Speed struct {
	// KBps is the value handed to the recorder; SpeedMaximum for the sentinel.
	KBps int
	// Multiplier is the display factor relative to 1x for the media family.
	Multiplier float64
}

// Maximum reports whether s is the synthetic "maximum" entry.
func (s Speed) Maximum() bool {
	return s.KBps == mmc.SpeedMaximum
}

// MediaCapabilities is what ResolveMedia offers for usable media.
type MediaCapabilities struct {
	Profile      mmc.Profile
	Speeds       []Speed
	WriteMethods []mmc.WriteMethod
	// Simulation reports whether a test write may be offered.
	Simulation bool
	// BufferUnderrunProtection reports whether the write-BUP flag may be offered.
	BufferUnderrunProtection bool
}

// DefaultWriteMethod is the first offered method, or WriteMethodNone.
func (c MediaCapabilities) DefaultWriteMethod() mmc.WriteMethod {
	if len(c.WriteMethods) == 0 {
		return mmc.WriteMethodNone
	}
	return c.WriteMethods[0]
}

// OffersWriteMethod reports whether m is in the offered list.
func (c MediaCapabilities) OffersWriteMethod(m mmc.WriteMethod) bool {
	for _, offered := range c.WriteMethods {
		if offered == m {
			return true
		}
	}
	return false
}

// OffersSpeed reports whether kbps is in the offered list.
func (c MediaCapabilities) OffersSpeed(kbps int) bool {
	for _, offered := range c.Speeds {
		if offered.KBps == kbps {
			return true
		}
	}
	return false
}

// simulationPolicy selects how a supported profile treats test writes.
type simulationPolicy int

const (
	simulationUnsupported simulationPolicy = iota + 1
	simulationFromDevice
)

// classify buckets profiles. BD and HD DVD sit with the no-simulation group
// until there is hardware to confirm otherwise.
func classify(p mmc.Profile) (simulationPolicy, bool) {
	switch p {
	case mmc.ProfileDVDRAM,
		mmc.ProfileDVDPlusRW,
		mmc.ProfileDVDPlusRWDL,
		mmc.ProfileDVDMinusRWRestO,
		mmc.ProfileDVDMinusRWSeq,
		mmc.ProfileDVDPlusR,
		mmc.ProfileDVDPlusRDL,
		mmc.ProfileBDROM,
		mmc.ProfileBDRSRM,
		mmc.ProfileBDRRRM,
		mmc.ProfileBDRE,
		mmc.ProfileHDDVDROM,
		mmc.ProfileHDDVDR,
		mmc.ProfileHDDVDRAM:
		return simulationUnsupported, true
	case mmc.ProfileCDR,
		mmc.ProfileCDRW,
		mmc.ProfileDVDMinusRSeq,
		mmc.ProfileDVDMinusRDLSeq,
		mmc.ProfileDVDMinusRDLJump:
		return simulationFromDevice, true
	default:
		return 0, false
	}
}

// methodOrder fixes the priority in which write methods are offered.
var methodOrder = []mmc.WriteMethod{
	mmc.WriteMethodSAO,
	mmc.WriteMethodTAO,
	mmc.WriteMethodTAONoPregap,
	mmc.WriteMethodRAW96R,
	mmc.WriteMethodRAW16,
	mmc.WriteMethodRAW96P,
}

// ResolveMedia inspects the media in device and lists what may be offered.
// Unusable media yields a *MediaError matching ErrMediaUnavailable.
//
// The test-write bit is trusted regardless of write type, even though its
// validity differs between TAO/SAO and incremental/DAO on some media.
func ResolveMedia(device mmc.Device) (MediaCapabilities, error) {
	if device == nil {
		return MediaCapabilities{}, &MediaError{Reason: ReasonQueryFailed, Err: errors.New("no recorder selected")}
	}

	profile, err := device.Profile()
	if err != nil {
		return MediaCapabilities{}, &MediaError{Reason: ReasonQueryFailed, Err: fmt.Errorf("query profile: %w", err)}
	}
	if profile == mmc.ProfileNone {
		return MediaCapabilities{}, &MediaError{Reason: ReasonNoMedia, Profile: profile}
	}

	policy, ok := classify(profile)
	if !ok {
		return MediaCapabilities{}, &MediaError{Reason: ReasonUnsupportedMedia, Profile: profile}
	}

	rates, err := device.WriteSpeeds()
	if err != nil {
		return MediaCapabilities{}, &MediaError{Reason: ReasonQueryFailed, Profile: profile, Err: fmt.Errorf("query write speeds: %w", err)}
	}

	caps := MediaCapabilities{
		Profile:                  profile,
		Speeds:                   make([]Speed, 0, len(rates)+1),
		WriteMethods:             make([]mmc.WriteMethod, 0, len(methodOrder)),
		Simulation:               policy == simulationFromDevice && device.Supports(mmc.CapTestWrite),
		BufferUnderrunProtection: device.Supports(mmc.CapBufferUnderrunProtection),
	}

	caps.Speeds = append(caps.Speeds, Speed{KBps: mmc.SpeedMaximum})
	for _, kbps := range rates {
		caps.Speeds = append(caps.Speeds, Speed{KBps: kbps, Multiplier: mmc.Multiplier(kbps, profile)})
	}

	for _, method := range methodOrder {
		if device.Supports(method.Capability()) {
			caps.WriteMethods = append(caps.WriteMethods, method)
		}
	}

	return caps, nil
}

// SuggestWriteMethod recommends a write method for an image.
//
// A TOC image needs a raw mode: RAW96R, then RAW16, otherwise
// ErrNoRecommendedWriteMethod. A multi-session image prefers TAO. Every other
// case returns WriteMethodNone with a nil error, meaning the caller keeps its
// default.
func SuggestWriteMethod(device mmc.Device, hasTOC, multiSession bool) (mmc.WriteMethod, error) {
	if device == nil {
		return mmc.WriteMethodNone, nil
	}
	if hasTOC {
		switch {
		case device.Supports(mmc.CapRAW96R):
			return mmc.WriteMethodRAW96R, nil
		case device.Supports(mmc.CapRAW16):
			return mmc.WriteMethodRAW16, nil
		default:
			return mmc.WriteMethodNone, ErrNoRecommendedWriteMethod
		}
	}
	if multiSession && device.Supports(mmc.CapTAO) {
		return mmc.WriteMethodTAO, nil
	}
	return mmc.WriteMethodNone, nil
}
