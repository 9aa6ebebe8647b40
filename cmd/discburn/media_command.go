package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"discburn/internal/burnpage"
	"discburn/internal/i18n"
	"discburn/internal/mmc"
	"discburn/internal/resolver"
)

func newMediaCommand(ctx *commandContext) *cobra.Command {
	var deviceID string
	var image burnpage.Image

	cmd := &cobra.Command{
		Use:   "media",
		Short: "Show what the inserted media allows",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openPage(cmd.Context(), deviceID, image)
			if err != nil {
				return err
			}
			defer session.Close()

			printView(cmd.OutOrStdout(), session.page.View())
			return nil
		},
	}

	cmd.Flags().StringVarP(&deviceID, "device", "d", "", "Recorder id (defaults to the committed device)")
	bindImageFlags(cmd.Flags(), &image)
	return cmd
}

func newSuggestCommand(ctx *commandContext) *cobra.Command {
	var deviceID string
	var image burnpage.Image

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Recommend a write method for an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := ctx.inventory()
			if err != nil {
				return err
			}
			loc, err := ctx.localizer()
			if err != nil {
				return err
			}
			if deviceID == "" {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				deviceID = cfg.Burn.Device
			}
			device, err := inv.Registry.Lookup(deviceID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			method, err := resolver.SuggestWriteMethod(device, image.HasTOC, image.MultiSession)
			switch {
			case errors.Is(err, resolver.ErrNoRecommendedWriteMethod):
				newStatusPrinter(out).line(loc.Label(i18n.KeyWarning), statusWarn, loc.Label(i18n.KeyWarningCloneMethod))
				return nil
			case err != nil:
				return err
			case method == mmc.WriteMethodNone:
				fmt.Fprintln(out, "No recommendation; keep the default write method")
				return nil
			default:
				fmt.Fprintf(out, "Recommended write method: %s\n", methodCell(loc, method))
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&deviceID, "device", "d", "", "Recorder id (defaults to burn.device)")
	bindImageFlags(cmd.Flags(), &image)
	return cmd
}
