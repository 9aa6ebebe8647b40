//go:build linux

package drive

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// CheckStatus queries the drive state using the CDROM_DRIVE_STATUS ioctl.
func CheckStatus(devicePath string) (Status, error) {
	devicePath = strings.TrimSpace(devicePath)
	if devicePath == "" {
		return StatusNoInfo, fmt.Errorf("empty device path")
	}

	fd, err := unix.Open(devicePath, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return StatusNoInfo, fmt.Errorf("open %s: %w", devicePath, err)
	}
	defer unix.Close(fd) //nolint:errcheck

	status, err := unix.IoctlRetInt(fd, ioctlCDROMDriveStatus)
	if err != nil {
		return StatusNoInfo, fmt.Errorf("ioctl CDROM_DRIVE_STATUS on %s: %w", devicePath, err)
	}
	return Status(status), nil
}

// DeviceNumber returns the major and minor numbers of a block device node.
func DeviceNumber(devicePath string) (uint32, uint32, error) {
	var st unix.Stat_t
	if err := unix.Stat(devicePath, &st); err != nil {
		return 0, 0, fmt.Errorf("stat %s: %w", devicePath, err)
	}
	if st.Mode&unix.S_IFMT != unix.S_IFBLK {
		return 0, 0, fmt.Errorf("%s is not a block device", devicePath)
	}
	rdev := uint64(st.Rdev) //nolint:unconvert
	return unix.Major(rdev), unix.Minor(rdev), nil
}
