package drive

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPlatform is returned by status queries on platforms without
// the Linux CD-ROM ioctl interface.
var ErrUnsupportedPlatform = errors.New("optical drive status requires linux")

// ioctlCDROMDriveStatus is the Linux ioctl number for CDROM_DRIVE_STATUS.
const ioctlCDROMDriveStatus = 0x5326

// Status represents the result of a CDROM_DRIVE_STATUS ioctl call.
type Status int

const (
	StatusNoInfo   Status = 0
	StatusNoDisc   Status = 1
	StatusTrayOpen Status = 2
	StatusNotReady Status = 3
	StatusDiscOK   Status = 4
)

// String returns a human-readable label for the drive status.
func (s Status) String() string {
	switch s {
	case StatusNoInfo:
		return "no_info"
	case StatusNoDisc:
		return "no_disc"
	case StatusTrayOpen:
		return "tray_open"
	case StatusNotReady:
		return "not_ready"
	case StatusDiscOK:
		return "disc_ok"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}
