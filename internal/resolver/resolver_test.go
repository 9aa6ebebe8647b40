package resolver_test

import (
	"errors"
	"reflect"
	"testing"

	"discburn/internal/mmc"
	"discburn/internal/resolver"
	"discburn/internal/testsupport"
)

var noSimulationProfiles = []mmc.Profile{
	mmc.ProfileDVDRAM,
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
	mmc.ProfileHDDVDRAM,
}

var simulationProfiles = []mmc.Profile{
	mmc.ProfileCDR,
	mmc.ProfileCDRW,
	mmc.ProfileDVDMinusRSeq,
	mmc.ProfileDVDMinusRDLSeq,
	mmc.ProfileDVDMinusRDLJump,
}

func TestResolveMediaForcesSimulationOffForRewritableProfiles(t *testing.T) {
	for _, profile := range noSimulationProfiles {
		t.Run(profile.Token(), func(t *testing.T) {
			dev := testsupport.NewFakeDevice(profile, nil, mmc.CapSAO, mmc.CapTestWrite)
			caps, err := resolver.ResolveMedia(dev)
			if err != nil {
				t.Fatalf("ResolveMedia: %v", err)
			}
			if caps.Simulation {
				t.Fatalf("simulation must be unsupported for %s", profile)
			}
		})
	}
}

func TestResolveMediaSimulationFollowsDeviceForWriteOnceProfiles(t *testing.T) {
	for _, profile := range simulationProfiles {
		for _, testWrite := range []bool{true, false} {
			caps := []mmc.Capability{mmc.CapSAO}
			if testWrite {
				caps = append(caps, mmc.CapTestWrite)
			}
			dev := testsupport.NewFakeDevice(profile, nil, caps...)
			got, err := resolver.ResolveMedia(dev)
			if err != nil {
				t.Fatalf("ResolveMedia(%s): %v", profile, err)
			}
			if got.Simulation != testWrite {
				t.Fatalf("%s: simulation=%v, want %v", profile, got.Simulation, testWrite)
			}
		}
	}
}

func TestResolveMediaRejectsMissingAndUnsupportedMedia(t *testing.T) {
	tests := []struct {
		name    string
		profile mmc.Profile
		reason  resolver.Reason
	}{
		{"none", mmc.ProfileNone, resolver.ReasonNoMedia},
		{"cd-rom", mmc.ProfileCDROM, resolver.ReasonUnsupportedMedia},
		{"dvd-rom", mmc.ProfileDVDROM, resolver.ReasonUnsupportedMedia},
		{"unknown", mmc.Profile(0x00ff), resolver.ReasonUnsupportedMedia},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := testsupport.NewFakeDevice(tt.profile, []int{1760}, mmc.CapSAO)
			_, err := resolver.ResolveMedia(dev)
			if !errors.Is(err, resolver.ErrMediaUnavailable) {
				t.Fatalf("expected ErrMediaUnavailable, got %v", err)
			}
			if got := resolver.ReasonOf(err); got != tt.reason {
				t.Fatalf("reason = %v, want %v", got, tt.reason)
			}
		})
	}
}

func TestResolveMediaReportsQueryFailures(t *testing.T) {
	dev := testsupport.NewFakeDevice(mmc.ProfileCDR, nil, mmc.CapSAO)
	boom := errors.New("scsi timeout")
	dev.FailProfile(boom)
	_, err := resolver.ResolveMedia(dev)
	if !errors.Is(err, resolver.ErrMediaUnavailable) || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped query failure, got %v", err)
	}
	if resolver.ReasonOf(err) != resolver.ReasonQueryFailed {
		t.Fatalf("unexpected reason %v", resolver.ReasonOf(err))
	}

	dev.FailProfile(nil)
	dev.FailSpeeds(boom)
	if _, err := resolver.ResolveMedia(dev); !errors.Is(err, boom) {
		t.Fatalf("expected speed failure, got %v", err)
	}

	if _, err := resolver.ResolveMedia(nil); !errors.Is(err, resolver.ErrMediaUnavailable) {
		t.Fatalf("expected nil device to be unavailable, got %v", err)
	}
}

func TestResolveMediaSpeedsStartWithMaximum(t *testing.T) {
	dev := testsupport.NewFakeDevice(mmc.ProfileCDR, []int{8468, 4234, 1760}, mmc.CapSAO)
	caps, err := resolver.ResolveMedia(dev)
	if err != nil {
		t.Fatalf("ResolveMedia: %v", err)
	}
	if len(caps.Speeds) != 4 {
		t.Fatalf("expected 4 speeds, got %d", len(caps.Speeds))
	}
	if !caps.Speeds[0].Maximum() || caps.Speeds[0].KBps != mmc.SpeedMaximum {
		t.Fatalf("first speed must be the maximum sentinel, got %+v", caps.Speeds[0])
	}
	want := []float64{48.1, 24.1, 10}
	for i, w := range want {
		if caps.Speeds[i+1].Multiplier != w {
			t.Fatalf("speed %d multiplier = %v, want %v", i+1, caps.Speeds[i+1].Multiplier, w)
		}
	}
	if !caps.OffersSpeed(4234) || caps.OffersSpeed(5645) {
		t.Fatal("OffersSpeed mismatch")
	}
}

func TestResolveMediaWriteMethodOrder(t *testing.T) {
	tests := []struct {
		name string
		caps []mmc.Capability
		want []mmc.WriteMethod
	}{
		{
			name: "all",
			caps: []mmc.Capability{mmc.CapRAW96P, mmc.CapRAW16, mmc.CapRAW96R, mmc.CapTAO, mmc.CapSAO},
			want: []mmc.WriteMethod{mmc.WriteMethodSAO, mmc.WriteMethodTAO, mmc.WriteMethodTAONoPregap, mmc.WriteMethodRAW96R, mmc.WriteMethodRAW16, mmc.WriteMethodRAW96P},
		},
		{
			name: "tao only",
			caps: []mmc.Capability{mmc.CapTAO},
			want: []mmc.WriteMethod{mmc.WriteMethodTAO, mmc.WriteMethodTAONoPregap},
		},
		{
			name: "raw16 and sao",
			caps: []mmc.Capability{mmc.CapRAW16, mmc.CapSAO},
			want: []mmc.WriteMethod{mmc.WriteMethodSAO, mmc.WriteMethodRAW16},
		},
		{
			name: "none",
			caps: nil,
			want: []mmc.WriteMethod{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := testsupport.NewFakeDevice(mmc.ProfileCDRW, nil, tt.caps...)
			caps, err := resolver.ResolveMedia(dev)
			if err != nil {
				t.Fatalf("ResolveMedia: %v", err)
			}
			if !reflect.DeepEqual(caps.WriteMethods, tt.want) {
				t.Fatalf("methods = %v, want %v", caps.WriteMethods, tt.want)
			}
			wantDefault := mmc.WriteMethodNone
			if len(tt.want) > 0 {
				wantDefault = tt.want[0]
			}
			if caps.DefaultWriteMethod() != wantDefault {
				t.Fatalf("default = %v, want %v", caps.DefaultWriteMethod(), wantDefault)
			}
		})
	}
}

func TestResolveMediaIsIdempotent(t *testing.T) {
	dev := testsupport.NewFakeDevice(mmc.ProfileCDR, []int{8468, 4234}, mmc.CapSAO, mmc.CapTAO, mmc.CapRAW96R, mmc.CapTestWrite, mmc.CapBufferUnderrunProtection)
	first, err := resolver.ResolveMedia(dev)
	if err != nil {
		t.Fatalf("ResolveMedia: %v", err)
	}
	second, err := resolver.ResolveMedia(dev)
	if err != nil {
		t.Fatalf("ResolveMedia: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ:\n%+v\n%+v", first, second)
	}
	if first.DefaultWriteMethod() != second.DefaultWriteMethod() {
		t.Fatal("default selection differs between calls")
	}
	if !first.BufferUnderrunProtection {
		t.Fatal("expected buffer underrun protection to be reported")
	}
}

func TestSuggestWriteMethod(t *testing.T) {
	tests := []struct {
		name         string
		caps         []mmc.Capability
		hasTOC       bool
		multiSession bool
		want         mmc.WriteMethod
		wantErr      error
	}{
		{"toc prefers raw96r", []mmc.Capability{mmc.CapRAW16, mmc.CapRAW96R, mmc.CapTAO}, true, false, mmc.WriteMethodRAW96R, nil},
		{"toc falls back to raw16", []mmc.Capability{mmc.CapRAW16, mmc.CapSAO}, true, false, mmc.WriteMethodRAW16, nil},
		{"toc without raw modes", []mmc.Capability{mmc.CapSAO, mmc.CapTAO, mmc.CapRAW96P}, true, false, mmc.WriteMethodNone, resolver.ErrNoRecommendedWriteMethod},
		{"toc wins over multi-session", []mmc.Capability{mmc.CapRAW96R, mmc.CapTAO}, true, true, mmc.WriteMethodRAW96R, nil},
		{"multi-session selects tao", []mmc.Capability{mmc.CapSAO, mmc.CapTAO}, false, true, mmc.WriteMethodTAO, nil},
		{"multi-session without tao keeps default", []mmc.Capability{mmc.CapSAO}, false, true, mmc.WriteMethodNone, nil},
		{"plain image keeps default", []mmc.Capability{mmc.CapSAO, mmc.CapTAO}, false, false, mmc.WriteMethodNone, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := testsupport.NewFakeDevice(mmc.ProfileCDR, nil, tt.caps...)
			got, err := resolver.SuggestWriteMethod(dev, tt.hasTOC, tt.multiSession)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("method = %v, want %v", got, tt.want)
			}
		})
	}
}
