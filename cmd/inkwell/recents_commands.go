package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"inkwell/internal/host"
)

func newRecentsCommand(ctx *commandContext) *cobra.Command {
	recentsCmd := &cobra.Command{
		Use:   "recents",
		Short: "Recently-opened registry",
	}

	recentsCmd.AddCommand(newRecentsListCommand(ctx))
	recentsCmd.AddCommand(newRecentsClearCommand(ctx))
	recentsCmd.AddCommand(newRecentsRemoveCommand(ctx))

	return recentsCmd
}

func newRecentsListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recently-opened paths, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHost(func(h *host.Host) error {
				entries, err := h.Recents.List(cmd.Context(), limit)
				if err != nil {
					return fmt.Errorf("list recents: %w", err)
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No recently-opened paths")
					return nil
				}
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, []string{
						entry.Path,
						entry.Kind,
						entry.OpenedAt.Local().Format("2006-01-02 15:04:05"),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Path", "Kind", "Opened"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum entries to show (0 shows all)")
	return cmd
}

func newRecentsClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every recently-opened entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHost(func(h *host.Host) error {
				removed, err := h.Recents.Clear(cmd.Context())
				if err != nil {
					return fmt.Errorf("clear recents: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", pluralEntries(removed))
				return nil
			})
		},
	}
}

func newRecentsRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <path>...",
		Short: "Remove specific paths from the registry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHost(func(h *host.Host) error {
				removed, err := h.Recents.Remove(cmd.Context(), args)
				if err != nil {
					return fmt.Errorf("remove recents: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", pluralEntries(removed))
				return nil
			})
		},
	}
}

func pluralEntries(count int64) string {
	if count == 1 {
		return "1 entry"
	}
	return strconv.FormatInt(count, 10) + " entries"
}
