// Package drive adapts a Linux optical drive node to mmc.Device.
//
// Media presence comes from the CDROM_DRIVE_STATUS ioctl and the current
// profile from the udev database entry cdrom_id maintains for the node.
// Write speeds and write capabilities cannot be read without MMC access and
// are taken from the drive's configuration block.
package drive
