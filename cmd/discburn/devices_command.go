package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"discburn/internal/inventory"
)

func newDevicesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List configured recorders",
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := ctx.inventory()
			if err != nil {
				return err
			}
			entries := inv.Entries()
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No recorders configured")
				return nil
			}
			list := newListing(col("ID"), col("Name"), col("Kind"), col("Source"), num("Speeds (kB/s)"), col("Capabilities"))
			for _, entry := range entries {
				list.add(
					entry.ID,
					entry.Name,
					string(entry.Kind),
					deviceSource(entry),
					formatSpeeds(entry.Speeds),
					formatList(entry.Capabilities),
				)
			}
			fmt.Fprintln(out, list)
			return nil
		},
	}
}

func deviceSource(entry inventory.Entry) string {
	if entry.Kind == inventory.KindDrive {
		return entry.Path
	}
	if entry.Profile == "" {
		return "no media"
	}
	return "media " + entry.Profile
}
