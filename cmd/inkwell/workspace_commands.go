package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"inkwell/internal/dnd"
	"inkwell/internal/host"
	"inkwell/internal/workspaces"
)

func newWorkspaceCommand(ctx *commandContext) *cobra.Command {
	workspaceCmd := &cobra.Command{
		Use:   "workspace",
		Short: "Composite workspace utilities",
	}

	workspaceCmd.AddCommand(newWorkspaceCreateCommand(ctx))
	workspaceCmd.AddCommand(newWorkspaceShowCommand())

	return workspaceCmd
}

func newWorkspaceCreateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create <folder>...",
		Short: "Synthesize a workspace definition from folders",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHost(func(h *host.Host) error {
				folders := make([]dnd.Resource, 0, len(args))
				for _, arg := range args {
					abs, err := filepath.Abs(arg)
					if err != nil {
						return fmt.Errorf("resolve folder %q: %w", arg, err)
					}
					folders = append(folders, dnd.FileResource(abs))
				}
				res, err := h.Workspaces.Create(cmd.Context(), folders)
				if err != nil {
					return fmt.Errorf("create workspace: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created workspace %s\n", res.Path)
				return nil
			})
		},
	}
}

func newWorkspaceShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "show <file>",
		Short:       "Print the folders of a workspace definition",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := workspaces.Load(args[0])
			if err != nil {
				return fmt.Errorf("load workspace: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generated: %s\n", def.GeneratedAt.Local().Format("2006-01-02 15:04:05"))
			rows := make([][]string, 0, len(def.Folders))
			for _, folder := range def.Folders {
				rows = append(rows, []string{folder.Path})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Folder"},
				rows,
				[]columnAlignment{alignLeft},
			))
			return nil
		},
	}
}
