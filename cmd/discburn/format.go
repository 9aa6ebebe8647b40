package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"discburn/internal/burnpage"
	"discburn/internal/i18n"
	"discburn/internal/mmc"
	"discburn/internal/options"
)

func formatKBps(kbps int) string {
	if kbps == mmc.SpeedMaximum {
		return "max"
	}
	return humanize.Comma(int64(kbps)) + " kB/s"
}

func formatSpeeds(speeds []int) string {
	if len(speeds) == 0 {
		return "-"
	}
	parts := make([]string, len(speeds))
	for i, s := range speeds {
		parts[i] = humanize.Comma(int64(s))
	}
	return strings.Join(parts, ", ")
}

func selected(current bool) string {
	if current {
		return "*"
	}
	return ""
}

func formatList(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

func methodCell(loc *i18n.Localizer, m mmc.WriteMethod) string {
	if m == mmc.WriteMethodNone {
		return loc.WriteMethodLabel(m)
	}
	return fmt.Sprintf("%s (%s)", loc.WriteMethodLabel(m), m)
}

func speedCell(loc *i18n.Localizer, kbps int, profile mmc.Profile) string {
	if kbps == mmc.SpeedMaximum {
		return loc.Label(i18n.KeyMaximum)
	}
	if profile != mmc.ProfileNone {
		return fmt.Sprintf("%s (%s)", mmc.FormatMultiplier(mmc.Multiplier(kbps, profile)), formatKBps(kbps))
	}
	return formatKBps(kbps)
}

func printOptions(out io.Writer, loc *i18n.Localizer, opts options.BurnOptions, profile mmc.Profile) {
	list := newListing(col("Option"), col("Value"))
	list.add("Device", opts.DeviceID)
	list.add("Speed", speedCell(loc, opts.Speed, profile))
	list.add("Write method", methodCell(loc, opts.WriteMethod))
	list.add("Copies", fmt.Sprintf("%d", opts.Copies))
	list.add("On the fly", yesNo(opts.OnTheFly))
	list.add("Verify", yesNo(opts.Verify))
	list.add("Eject", yesNo(opts.Eject))
	list.add("Simulate", yesNo(opts.Simulate))
	list.add("Write BUP", yesNo(opts.WriteBUP))
	list.add("Pad tracks", yesNo(opts.PadTracks))
	list.add("Fixate", yesNo(opts.Fixate))
	fmt.Fprintln(out, list)
}

// printView renders the page: a status line, then the offered speeds and
// write methods when media is ready.
func printView(out io.Writer, view burnpage.View) {
	status := newStatusPrinter(out)
	label := view.DeviceID
	if view.DeviceName != "" && view.DeviceName != view.DeviceID {
		label = fmt.Sprintf("%s (%s)", view.DeviceID, view.DeviceName)
	}
	fmt.Fprintln(out, "Recorder: "+label)

	if view.State != burnpage.StateMediaReady {
		status.line("Media", statusError, view.Status)
		printAdvisories(status, view)
		return
	}
	status.line("Media", statusOK, view.Status)
	printAdvisories(status, view)

	speeds := newListing(mark(), col("Write speed"), num("Rate"))
	for _, s := range view.Speeds {
		speeds.add(selected(s.Value == view.Inputs.Speed), s.Label, formatKBps(s.Value))
	}
	fmt.Fprintln(out, speeds)

	methods := newListing(mark(), col("Write method"), col("Token"))
	for _, m := range view.Methods {
		methods.add(selected(m.Value == view.Inputs.WriteMethod), m.Label, m.Value.String())
	}
	fmt.Fprintln(out, methods)

	fmt.Fprintf(out, "Simulation available: %s\n", yesNo(view.Simulate))
	fmt.Fprintf(out, "Buffer underrun protection: %s\n", yesNo(view.WriteBUP))
	fmt.Fprintf(out, "On the fly available: %s\n", yesNo(view.OnTheFly))
	fmt.Fprintf(out, "Verify available: %s\n", yesNo(view.Verify))
	fmt.Fprintf(out, "Copy presets: %s\n", formatInts(burnpage.CopyPresets))
}

// printAdvisories writes the write method warning and any notices.
func printAdvisories(status statusPrinter, view burnpage.View) {
	if view.Warning != "" {
		status.line("Write method", statusWarn, view.Warning)
	}
	for _, n := range view.Notices {
		kind := statusInfo
		if n.Kind == burnpage.NoticeWarning {
			kind = statusWarn
		}
		status.line("Notice", kind, fmt.Sprintf("%s (%s)", n.Text, n.ID))
	}
}

func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return formatList(parts)
}
