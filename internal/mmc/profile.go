package mmc

import (
	"fmt"
	"strings"
)

// Profile is an MMC profile number as reported by GET CONFIGURATION.
type Profile uint16

const (
	ProfileNone            Profile = 0x0000
	ProfileCDROM           Profile = 0x0008
	ProfileCDR             Profile = 0x0009
	ProfileCDRW            Profile = 0x000A
	ProfileDVDROM          Profile = 0x0010
	ProfileDVDMinusRSeq    Profile = 0x0011
	ProfileDVDRAM          Profile = 0x0012
	ProfileDVDMinusRWRestO Profile = 0x0013
	ProfileDVDMinusRWSeq   Profile = 0x0014
	ProfileDVDMinusRDLSeq  Profile = 0x0015
	ProfileDVDMinusRDLJump Profile = 0x0016
	ProfileDVDPlusRW       Profile = 0x001A
	ProfileDVDPlusR        Profile = 0x001B
	ProfileDVDPlusRWDL     Profile = 0x002A
	ProfileDVDPlusRDL      Profile = 0x002B
	ProfileBDROM           Profile = 0x0040
	ProfileBDRSRM          Profile = 0x0041
	ProfileBDRRRM          Profile = 0x0042
	ProfileBDRE            Profile = 0x0043
	ProfileHDDVDROM        Profile = 0x0050
	ProfileHDDVDR          Profile = 0x0051
	ProfileHDDVDRAM        Profile = 0x0052
)

// Family groups profiles by the physical format that defines the 1x speed.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyCD
	FamilyDVD
	FamilyBD
	FamilyHDDVD
)

type profileInfo struct {
	token  string
	name   string
	family Family
}

var profileTable = map[Profile]profileInfo{
	ProfileNone:            {"none", "No media", FamilyUnknown},
	ProfileCDROM:           {"cd-rom", "CD-ROM", FamilyCD},
	ProfileCDR:             {"cd-r", "CD-R", FamilyCD},
	ProfileCDRW:            {"cd-rw", "CD-RW", FamilyCD},
	ProfileDVDROM:          {"dvd-rom", "DVD-ROM", FamilyDVD},
	ProfileDVDMinusRSeq:    {"dvd-r", "DVD-R Sequential", FamilyDVD},
	ProfileDVDRAM:          {"dvd-ram", "DVD-RAM", FamilyDVD},
	ProfileDVDMinusRWRestO: {"dvd-rw-ro", "DVD-RW Restricted Overwrite", FamilyDVD},
	ProfileDVDMinusRWSeq:   {"dvd-rw", "DVD-RW Sequential", FamilyDVD},
	ProfileDVDMinusRDLSeq:  {"dvd-r-dl", "DVD-R DL Sequential", FamilyDVD},
	ProfileDVDMinusRDLJump: {"dvd-r-dl-jump", "DVD-R DL Layer Jump", FamilyDVD},
	ProfileDVDPlusRW:       {"dvd+rw", "DVD+RW", FamilyDVD},
	ProfileDVDPlusR:        {"dvd+r", "DVD+R", FamilyDVD},
	ProfileDVDPlusRWDL:     {"dvd+rw-dl", "DVD+RW DL", FamilyDVD},
	ProfileDVDPlusRDL:      {"dvd+r-dl", "DVD+R DL", FamilyDVD},
	ProfileBDROM:           {"bd-rom", "BD-ROM", FamilyBD},
	ProfileBDRSRM:          {"bd-r-srm", "BD-R SRM", FamilyBD},
	ProfileBDRRRM:          {"bd-r-rrm", "BD-R RRM", FamilyBD},
	ProfileBDRE:            {"bd-re", "BD-RE", FamilyBD},
	ProfileHDDVDROM:        {"hd-dvd-rom", "HD DVD-ROM", FamilyHDDVD},
	ProfileHDDVDR:          {"hd-dvd-r", "HD DVD-R", FamilyHDDVD},
	ProfileHDDVDRAM:        {"hd-dvd-ram", "HD DVD-RAM", FamilyHDDVD},
}

// Known reports whether the profile number is one this package recognizes.
func (p Profile) Known() bool {
	_, ok := profileTable[p]
	return ok
}

// Token returns the stable lower-case identifier used in configuration files.
func (p Profile) Token() string {
	if info, ok := profileTable[p]; ok {
		return info.token
	}
	return fmt.Sprintf("0x%04x", uint16(p))
}

// String returns a human-readable profile name.
func (p Profile) String() string {
	if info, ok := profileTable[p]; ok {
		return info.name
	}
	return fmt.Sprintf("unknown(0x%04x)", uint16(p))
}

// Family returns the physical format family of the profile.
func (p Profile) Family() Family {
	return profileTable[p].family
}

// ParseProfile accepts either a token such as "dvd+rw" or a hexadecimal
// profile number such as "0x001a".
func ParseProfile(value string) (Profile, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return ProfileNone, nil
	}
	for profile, info := range profileTable {
		if info.token == normalized {
			return profile, nil
		}
	}
	var number uint16
	if _, err := fmt.Sscanf(normalized, "0x%x", &number); err == nil {
		return Profile(number), nil
	}
	return ProfileNone, fmt.Errorf("unknown media profile %q", value)
}
