//go:build !linux

package drive

// CheckStatus is unavailable off Linux.
func CheckStatus(string) (Status, error) {
	return StatusNoInfo, ErrUnsupportedPlatform
}

// DeviceNumber is unavailable off Linux.
func DeviceNumber(string) (uint32, uint32, error) {
	return 0, 0, ErrUnsupportedPlatform
}
