package i18n_test

import (
	"strings"
	"testing"

	"golang.org/x/text/language"

	"discburn/internal/i18n"
	"discburn/internal/mmc"
	"discburn/internal/resolver"
	"discburn/internal/testsupport"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.English},
		{"C", language.English},
		{"POSIX", language.English},
		{"en", language.English},
		{"en-GB", language.English},
		{"sv", language.Swedish},
		{"sv_SE.UTF-8", language.Swedish},
		{"de-AT", language.German},
		{"de_DE@euro", language.German},
		{"not a tag!", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := i18n.Match(tt.in); got != tt.want {
				t.Fatalf("Match(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLabels(t *testing.T) {
	en := mustLocalizer(t, "en")
	sv := mustLocalizer(t, "sv")
	de := mustLocalizer(t, "de")

	if got := en.Label(i18n.KeyMaximum); got != "Maximum" {
		t.Fatalf("en maximum = %q", got)
	}
	if got := sv.Label(i18n.KeyMaximum); got != "Max" {
		t.Fatalf("sv maximum = %q", got)
	}
	if got := de.WriteMethodLabel(mmc.WriteMethodTAONoPregap); got != "Track-At-Once, ohne Pre-Gap" {
		t.Fatalf("de tao-no-pregap = %q", got)
	}
	// Keys missing from a catalog fall back to English.
	if got := de.WriteMethodLabel(mmc.WriteMethodRAW96R); got != "Raw 96R" {
		t.Fatalf("de raw96r = %q", got)
	}
}

func TestWriteMethodLabelsAreDistinct(t *testing.T) {
	for _, lang := range []string{"en", "sv", "de"} {
		loc := mustLocalizer(t, lang)
		seen := map[string]mmc.WriteMethod{}
		for _, m := range []mmc.WriteMethod{
			mmc.WriteMethodSAO, mmc.WriteMethodTAO, mmc.WriteMethodTAONoPregap,
			mmc.WriteMethodRAW96R, mmc.WriteMethodRAW16, mmc.WriteMethodRAW96P,
		} {
			label := loc.WriteMethodLabel(m)
			if prev, dup := seen[label]; dup {
				t.Fatalf("%s: %v and %v share label %q", lang, prev, m, label)
			}
			seen[label] = m
		}
	}
}

func TestSpeedLabel(t *testing.T) {
	en := mustLocalizer(t, "en")
	if got := en.SpeedLabel(resolver.Speed{KBps: mmc.SpeedMaximum}); got != "Maximum" {
		t.Fatalf("maximum label = %q", got)
	}
	if got := en.SpeedLabel(resolver.Speed{KBps: 706, Multiplier: 4}); got != "4x (706 kB/s)" {
		t.Fatalf("speed label = %q", got)
	}
}

func TestMediaReason(t *testing.T) {
	en := mustLocalizer(t, "en")

	_, err := resolver.ResolveMedia(testsupport.NewFakeDevice(mmc.ProfileNone, nil))
	if got := en.MediaReason(err); got != "Please insert a blank disc." {
		t.Fatalf("no media reason = %q", got)
	}

	_, err = resolver.ResolveMedia(testsupport.NewFakeDevice(mmc.ProfileCDROM, nil))
	if got := en.MediaReason(err); !strings.Contains(got, "CD-ROM") {
		t.Fatalf("unsupported reason = %q", got)
	}

	_, err = resolver.ResolveMedia(nil)
	if got := en.MediaReason(err); got != "Unable to query the recorder." {
		t.Fatalf("query failure reason = %q", got)
	}
}

func mustLocalizer(t *testing.T, lang string) *i18n.Localizer {
	t.Helper()
	loc, err := i18n.New(lang)
	if err != nil {
		t.Fatalf("i18n.New(%q): %v", lang, err)
	}
	return loc
}
