package mmc

// Device is a borrowed view of a recorder. Implementations must make every
// method a read-only query so callers can repeat them freely.
type Device interface {
	// Name is a human-readable recorder description.
	Name() string
	// Profile reports the profile of the currently inserted media.
	Profile() (Profile, error)
	// WriteSpeeds lists supported write speeds in kB/s, in device order.
	WriteSpeeds() ([]int, error)
	// Supports reports whether the recorder has the capability.
	Supports(c Capability) bool
}
