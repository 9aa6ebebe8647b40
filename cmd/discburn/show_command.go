package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"discburn/internal/mmc"
	"discburn/internal/options"
	"discburn/internal/settingsdb"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the committed burn options",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			loc, err := ctx.localizer()
			if err != nil {
				return err
			}
			db, err := settingsdb.Open(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			opts, found, err := db.Load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !found {
				fmt.Fprintln(out, "No burn options committed yet; showing configured defaults")
				opts = options.FromConfig(cfg.Burn)
			}
			printOptions(out, loc, opts, mmc.ProfileNone)
			return nil
		},
	}
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previous commits",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			loc, err := ctx.localizer()
			if err != nil {
				return err
			}
			db, err := settingsdb.Open(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			commits, err := db.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(commits) == 0 {
				fmt.Fprintln(out, "No commits recorded")
				return nil
			}
			list := newListing(col("Commit"), col("When"), col("Device"), col("Media"), col("Write method"), num("Speed"), num("Copies"))
			for _, c := range commits {
				var profile string
				if c.Profile != mmc.ProfileNone {
					profile = c.Profile.String()
				}
				list.add(
					shortID(c.ID),
					humanize.Time(c.CreatedAt),
					c.DeviceID,
					profile,
					methodCell(loc, c.Options.WriteMethod),
					formatKBps(c.Options.Speed),
					fmt.Sprintf("%d", c.Options.Copies),
				)
			}
			fmt.Fprintln(out, list)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of commits to list (0 for all)")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
