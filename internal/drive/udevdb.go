package drive

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"discburn/internal/mmc"
)

// DefaultUdevDataDir is where udevd keeps per-device property databases.
const DefaultUdevDataDir = "/run/udev/data"

// mediaProperties maps cdrom_id media properties to profiles, most specific
// first. cdrom_id sets the family flag (e.g. ID_CDROM_MEDIA_DVD) alongside
// the exact one, so the order decides.
var mediaProperties = []struct {
	key     string
	profile mmc.Profile
}{
	{"ID_CDROM_MEDIA_CD_R", mmc.ProfileCDR},
	{"ID_CDROM_MEDIA_CD_RW", mmc.ProfileCDRW},
	{"ID_CDROM_MEDIA_DVD_R_DL_SEQ", mmc.ProfileDVDMinusRDLSeq},
	{"ID_CDROM_MEDIA_DVD_R_DL_JR", mmc.ProfileDVDMinusRDLJump},
	{"ID_CDROM_MEDIA_DVD_RW_RO", mmc.ProfileDVDMinusRWRestO},
	{"ID_CDROM_MEDIA_DVD_RW_SEQ", mmc.ProfileDVDMinusRWSeq},
	{"ID_CDROM_MEDIA_DVD_PLUS_RW_DL", mmc.ProfileDVDPlusRWDL},
	{"ID_CDROM_MEDIA_DVD_PLUS_R_DL", mmc.ProfileDVDPlusRDL},
	{"ID_CDROM_MEDIA_DVD_PLUS_RW", mmc.ProfileDVDPlusRW},
	{"ID_CDROM_MEDIA_DVD_PLUS_R", mmc.ProfileDVDPlusR},
	{"ID_CDROM_MEDIA_DVD_RAM", mmc.ProfileDVDRAM},
	{"ID_CDROM_MEDIA_DVD_RW", mmc.ProfileDVDMinusRWSeq},
	{"ID_CDROM_MEDIA_DVD_R", mmc.ProfileDVDMinusRSeq},
	{"ID_CDROM_MEDIA_BD_R_SRM", mmc.ProfileBDRSRM},
	{"ID_CDROM_MEDIA_BD_R_RRM", mmc.ProfileBDRRRM},
	{"ID_CDROM_MEDIA_BD_RE", mmc.ProfileBDRE},
	{"ID_CDROM_MEDIA_HDDVD_RAM", mmc.ProfileHDDVDRAM},
	{"ID_CDROM_MEDIA_HDDVD_R", mmc.ProfileHDDVDR},
	{"ID_CDROM_MEDIA_HDDVD", mmc.ProfileHDDVDROM},
	{"ID_CDROM_MEDIA_BD", mmc.ProfileBDROM},
	{"ID_CDROM_MEDIA_DVD", mmc.ProfileDVDROM},
	{"ID_CDROM_MEDIA_CD", mmc.ProfileCDROM},
}

// ParseUdevDB extracts the E: property lines of a udev database entry.
func ParseUdevDB(r io.Reader) (map[string]string, error) {
	props := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		rest, ok := strings.CutPrefix(line, "E:")
		if !ok {
			continue
		}
		key, value, ok := strings.Cut(rest, "=")
		if !ok || key == "" {
			continue
		}
		props[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read udev db: %w", err)
	}
	return props, nil
}

// MediaProfile derives the current profile from cdrom_id properties.
// Missing media yields ProfileNone.
func MediaProfile(props map[string]string) mmc.Profile {
	if props["ID_CDROM_MEDIA"] != "1" {
		return mmc.ProfileNone
	}
	for _, entry := range mediaProperties {
		if props[entry.key] == "1" {
			return entry.profile
		}
	}
	return mmc.ProfileNone
}

// MediaState returns the cdrom_id media state, e.g. "blank" or "complete".
func MediaState(props map[string]string) string {
	return props["ID_CDROM_MEDIA_STATE"]
}

// readUdevProperties loads the database entry for block device major:minor.
func readUdevProperties(dir string, major, minor uint32) (map[string]string, error) {
	path := filepath.Join(dir, fmt.Sprintf("b%d:%d", major, minor))
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open udev db: %w", err)
	}
	defer f.Close() //nolint:errcheck
	return ParseUdevDB(f)
}
