package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"discburn/internal/burnpage"
	"discburn/internal/inventory"
	"discburn/internal/mediawatch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var deviceID string
	var interval time.Duration
	var image burnpage.Image

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-resolve a recorder whenever its media changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			session, err := ctx.openPage(cmd.Context(), deviceID, image)
			if err != nil {
				return err
			}
			defer session.Close()

			out := cmd.OutOrStdout()
			page := session.page
			printView(out, page.View())

			poll := interval
			if !cmd.Flags().Changed("interval") {
				poll = time.Duration(cfg.Workflow.MediaPollInterval) * time.Second
			}

			var source *mediawatch.NetlinkSource
			if cfg.Workflow.Netlink {
				if path := drivePath(session.inventory, page.View().DeviceID); path != "" {
					source = mediawatch.NewNetlinkSource(session.logger, path)
				}
			}
			if err := source.Start(cmd.Context()); err != nil {
				return err
			}
			defer source.Stop()

			err = mediawatch.Run(cmd.Context(), session.logger, poll, page.Poll, source.C(), func(context.Context) {
				fmt.Fprintln(out)
				printView(out, page.View())
			})
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&deviceID, "device", "d", "", "Recorder id (defaults to the committed device)")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "Media poll interval (defaults to workflow.media_poll_interval)")
	bindImageFlags(cmd.Flags(), &image)
	return cmd
}

func drivePath(inv *inventory.Inventory, id string) string {
	for _, entry := range inv.Entries() {
		if entry.ID == id && entry.Kind == inventory.KindDrive {
			return entry.Path
		}
	}
	return ""
}
