package mmc

import (
	"fmt"
	"strings"
)

// Capability is a recorder feature predicate queried through Device.Supports.
type Capability int

const (
	CapSAO Capability = iota + 1
	CapTAO
	CapRAW96R
	CapRAW16
	CapRAW96P
	CapTestWrite
	CapBufferUnderrunProtection
)

var capabilityTokens = map[Capability]string{
	CapSAO:                      "sao",
	CapTAO:                      "tao",
	CapRAW96R:                   "raw96r",
	CapRAW16:                    "raw16",
	CapRAW96P:                   "raw96p",
	CapTestWrite:                "test-write",
	CapBufferUnderrunProtection: "bup",
}

func (c Capability) String() string {
	if token, ok := capabilityTokens[c]; ok {
		return token
	}
	return fmt.Sprintf("capability(%d)", int(c))
}

// ParseCapability maps a configuration token to a Capability.
func ParseCapability(value string) (Capability, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "buffer-underrun-protection", "burnproof":
		return CapBufferUnderrunProtection, nil
	case "simulate", "simulation":
		return CapTestWrite, nil
	}
	for capability, token := range capabilityTokens {
		if token == normalized {
			return capability, nil
		}
	}
	return 0, fmt.Errorf("unknown capability %q", value)
}

// CapabilitySet is a convenience Supports implementation for backends that
// hold their capabilities as data.
type CapabilitySet map[Capability]bool

// NewCapabilitySet builds a set containing caps.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = true
	}
	return set
}

// Has reports whether c is in the set.
func (s CapabilitySet) Has(c Capability) bool {
	return s[c]
}

// Tokens returns the set in declaration order.
func (s CapabilitySet) Tokens() []string {
	out := make([]string, 0, len(s))
	for c := CapSAO; c <= CapBufferUnderrunProtection; c++ {
		if s[c] {
			out = append(out, c.String())
		}
	}
	return out
}
