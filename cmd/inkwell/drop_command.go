package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"inkwell/internal/dnd"
	"inkwell/internal/host"
)

func newDropCommand(ctx *commandContext) *cobra.Command {
	var dirty bool

	cmd := &cobra.Command{
		Use:   "drop <path>...",
		Short: "Simulate dropping resources onto the active window",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHost(func(h *host.Host) error {
				batch, err := buildBatch(h, args, dirty)
				if err != nil {
					return err
				}

				opened, err := h.HandleDrop(cmd.Context(), batch)
				if err != nil {
					return err
				}
				h.Wait()

				out := cmd.OutOrStdout()
				if opened {
					fmt.Fprintln(out, "Drop opened resources in the workspace")
				} else {
					fmt.Fprintln(out, "Drop routed to the active editor")
				}
				fmt.Fprintln(out, renderWindows(h))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&dirty, "dirty", false, "Treat dropped editors as carrying unsaved changes")
	return cmd
}

// buildBatch turns CLI paths into drop candidates. Plain paths become
// external file candidates; with --dirty each path is treated as an open
// editor whose unsaved content should migrate into the target workspace.
func buildBatch(h *host.Host, args []string, dirty bool) (dnd.Batch, error) {
	batch := make(dnd.Batch, 0, len(args))
	for _, arg := range args {
		path := strings.TrimSpace(arg)
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve path %q: %w", path, err)
		}
		res := dnd.FileResource(abs)
		cand := dnd.Candidate{Resource: res, IsExternal: !dirty}
		if dirty {
			backup := h.Backups.BackupResource(res)
			cand.BackupResource = &backup
		}
		batch = append(batch, cand)
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("no usable paths in drop")
	}
	return batch, nil
}

func renderWindows(h *host.Host) string {
	windows := h.Windows.List()
	rows := make([][]string, 0, len(windows))
	for _, w := range windows {
		location := w.Location.String()
		if w.Location.IsZero() {
			location = "-"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", w.ID),
			w.Title,
			location,
			yesNo(w.ID == h.Windows.Active().ID),
		})
	}
	return renderTable(
		[]string{"Window", "Title", "Location", "Active"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	)
}
