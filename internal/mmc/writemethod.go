package mmc

import (
	"fmt"
	"strings"
)

// WriteMethod identifies how the recorder lays down tracks.
type WriteMethod int

const (
	WriteMethodNone WriteMethod = iota
	WriteMethodSAO
	WriteMethodTAO
	WriteMethodTAONoPregap
	WriteMethodRAW96R
	WriteMethodRAW16
	WriteMethodRAW96P
)

var writeMethodTokens = map[WriteMethod]string{
	WriteMethodNone:        "none",
	WriteMethodSAO:         "sao",
	WriteMethodTAO:         "tao",
	WriteMethodTAONoPregap: "tao-no-pregap",
	WriteMethodRAW96R:      "raw96r",
	WriteMethodRAW16:       "raw16",
	WriteMethodRAW96P:      "raw96p",
}

// String returns the stable token for the method.
func (m WriteMethod) String() string {
	if token, ok := writeMethodTokens[m]; ok {
		return token
	}
	return fmt.Sprintf("write_method(%d)", int(m))
}

// Valid reports whether m names a real write method.
func (m WriteMethod) Valid() bool {
	return m >= WriteMethodSAO && m <= WriteMethodRAW96P
}

// Capability returns the drive capability a method depends on. The no-pregap
// TAO variant is derived from plain TAO support.
func (m WriteMethod) Capability() Capability {
	switch m {
	case WriteMethodSAO:
		return CapSAO
	case WriteMethodTAO, WriteMethodTAONoPregap:
		return CapTAO
	case WriteMethodRAW96R:
		return CapRAW96R
	case WriteMethodRAW16:
		return CapRAW16
	case WriteMethodRAW96P:
		return CapRAW96P
	default:
		return 0
	}
}

// ParseWriteMethod maps a stable token back to a WriteMethod.
func ParseWriteMethod(value string) (WriteMethod, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	if normalized == "dao" {
		return WriteMethodSAO, nil
	}
	for method, token := range writeMethodTokens {
		if method != WriteMethodNone && token == normalized {
			return method, nil
		}
	}
	return WriteMethodNone, fmt.Errorf("unknown write method %q", value)
}

// MarshalText implements encoding.TextMarshaler so methods serialize as tokens.
func (m WriteMethod) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *WriteMethod) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" || strings.EqualFold(string(text), "none") {
		*m = WriteMethodNone
		return nil
	}
	parsed, err := ParseWriteMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
