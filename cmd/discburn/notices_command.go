package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"discburn/internal/burnpage"
	"discburn/internal/settingsdb"
)

func newNoticesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notices",
		Short: "List notices and whether they are shown",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSettings(ctx, func(db *settingsdb.Store) error {
				dismissed, err := db.DismissedNotices(cmd.Context())
				if err != nil {
					return err
				}
				list := newListing(col("Notice"), col("Shown"))
				for _, id := range burnpage.NoticeIDs {
					list.add(string(id), yesNo(!dismissed[string(id)]))
				}
				fmt.Fprintln(cmd.OutOrStdout(), list)
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "dismiss <notice>",
		Short: "Stop showing a notice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := burnpage.ParseNoticeID(args[0])
			if err != nil {
				return err
			}
			return withSettings(ctx, func(db *settingsdb.Store) error {
				if err := db.DismissNotice(cmd.Context(), string(id)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Notice %s dismissed\n", id)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "restore [notice...]",
		Short: "Show dismissed notices again (all when none are named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]string, 0, len(args))
			for _, arg := range args {
				id, err := burnpage.ParseNoticeID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, string(id))
			}
			return withSettings(ctx, func(db *settingsdb.Store) error {
				if err := db.RestoreNotices(cmd.Context(), ids...); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Notices restored")
				return nil
			})
		},
	})
	return cmd
}

func withSettings(ctx *commandContext, fn func(*settingsdb.Store) error) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	db, err := settingsdb.Open(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}
