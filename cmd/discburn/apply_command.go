package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"discburn/internal/burnpage"
	"discburn/internal/mmc"
	"discburn/internal/options"
)

type applyFlags struct {
	device    string
	speed     string
	method    string
	copies    string
	onTheFly  bool
	verify    bool
	eject     bool
	simulate  bool
	writeBUP  bool
	padTracks bool
	fixate    bool
	image     burnpage.Image
}

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var flags applyFlags

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Validate and commit burn options",
		Long: "Resolve the recorder's media, apply the write method recommendation for the image, " +
			"override with any flags given, and commit the result.",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openPage(cmd.Context(), flags.device, flags.image)
			if err != nil {
				return err
			}
			defer session.Close()

			if err := applyInputFlags(session.page, cmd.Flags(), flags); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			view := session.page.View()
			printAdvisories(newStatusPrinter(out), view)

			committed, err := session.page.Apply(cmd.Context())
			if err != nil {
				return fmt.Errorf("apply: %w", err)
			}
			fmt.Fprintf(out, "Committed burn options (commit %s)\n", session.lastCommit.ID)
			printOptions(out, session.localizer, committed, view.Profile)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.device, "device", "d", "", "Recorder id (defaults to the committed device)")
	f.StringVar(&flags.speed, "speed", "", "Write speed in kB/s, or \"max\"")
	f.StringVar(&flags.method, "method", "", "Write method (sao, tao, tao-no-pregap, raw96r, raw16, raw96p)")
	f.StringVar(&flags.copies, "copies", "", "Number of copies")
	f.BoolVar(&flags.onTheFly, "on-the-fly", false, "Write on the fly")
	f.BoolVar(&flags.verify, "verify", false, "Verify after writing")
	f.BoolVar(&flags.eject, "eject", false, "Eject when done")
	f.BoolVar(&flags.simulate, "simulate", false, "Perform a test write")
	f.BoolVar(&flags.writeBUP, "write-bup", false, "Enable buffer underrun protection")
	f.BoolVar(&flags.padTracks, "pad-tracks", false, "Pad data tracks")
	f.BoolVar(&flags.fixate, "fixate", false, "Fixate the disc")
	bindImageFlags(f, &flags.image)
	return cmd
}

// applyInputFlags overrides page inputs with the flags the user set. Flags
// left unset keep what the page resolved.
func applyInputFlags(page *burnpage.Page, set *pflag.FlagSet, flags applyFlags) error {
	if flags.image.DisableOnFly && set.Changed("on-the-fly") && flags.onTheFly {
		return fmt.Errorf("%w: --on-the-fly", burnpage.ErrOptionLocked)
	}
	if flags.image.DisableVerify && set.Changed("verify") && flags.verify {
		return fmt.Errorf("%w: --verify", burnpage.ErrOptionLocked)
	}
	var speed int
	if set.Changed("speed") {
		parsed, err := parseSpeed(flags.speed)
		if err != nil {
			return err
		}
		speed = parsed
	}
	var method mmc.WriteMethod
	if set.Changed("method") {
		parsed, err := mmc.ParseWriteMethod(flags.method)
		if err != nil {
			return err
		}
		method = parsed
	}

	page.Update(func(in *options.Inputs) {
		if set.Changed("speed") {
			in.Speed = speed
		}
		if set.Changed("method") {
			in.WriteMethod = method
		}
		if set.Changed("copies") {
			in.CopiesText = flags.copies
		}
		boolFlags := []struct {
			name  string
			value bool
			dst   *bool
		}{
			{"on-the-fly", flags.onTheFly, &in.OnTheFly},
			{"verify", flags.verify, &in.Verify},
			{"eject", flags.eject, &in.Eject},
			{"simulate", flags.simulate, &in.Simulate},
			{"write-bup", flags.writeBUP, &in.WriteBUP},
			{"pad-tracks", flags.padTracks, &in.PadTracks},
			{"fixate", flags.fixate, &in.Fixate},
		}
		for _, bf := range boolFlags {
			if set.Changed(bf.name) {
				*bf.dst = bf.value
			}
		}
	})
	return nil
}

func parseSpeed(value string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	switch trimmed {
	case "max", "maximum", "0":
		return mmc.SpeedMaximum, nil
	}
	kbps, err := strconv.Atoi(strings.TrimSuffix(trimmed, "kb/s"))
	if err != nil || kbps <= 0 {
		return 0, fmt.Errorf("invalid speed %q: use kB/s or \"max\"", value)
	}
	return kbps, nil
}
