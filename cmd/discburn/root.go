package main

import (
	"github.com/spf13/cobra"
)

const (
	groupMedia   = "media"
	groupOptions = "options"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var langFlag string

	ctx := newCommandContext(&configFlag, &langFlag)

	rootCmd := &cobra.Command{
		Use:           "discburn",
		Short:         "Resolve and commit burn options for optical recorders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Label language (en, sv, de); overrides locale.language")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupMedia, Title: "Recorders and media:"},
		&cobra.Group{ID: groupOptions, Title: "Burn options:"},
	)
	addGrouped(rootCmd, groupMedia,
		newDevicesCommand(ctx),
		newMediaCommand(ctx),
		newSuggestCommand(ctx),
		newWatchCommand(ctx),
	)
	addGrouped(rootCmd, groupOptions,
		newApplyCommand(ctx),
		newShowCommand(ctx),
		newHistoryCommand(ctx),
		newNoticesCommand(ctx),
	)
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func addGrouped(parent *cobra.Command, group string, cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		cmd.GroupID = group
		parent.AddCommand(cmd)
	}
}
