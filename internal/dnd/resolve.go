package dnd

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"inkwell/internal/logging"
)

type planKind int

const (
	planOpenDirect planKind = iota
	planCreateComposite
)

// openPlan is the single opening decision derived from a partition. It is
// evaluated once; execution never re-derives the branch conditions.
type openPlan struct {
	kind      planKind
	locations []Resource // planOpenDirect: workspace files and folders in drop order
	folders   []Resource // planCreateComposite: folders to merge
}

type externalPartition struct {
	locations  []Resource // workspace files and folders in drop order
	folders    []Resource
	workspaces int
}

// resolveExternals decides how to open externally dragged candidates and
// kicks off the opening. It returns true as soon as a plan is determined;
// plan execution continues in the background and failures there reach the
// user through the alerter.
func (h *Handler) resolveExternals(ctx context.Context, logger *slog.Logger, externals []Candidate) (bool, error) {
	part := h.partitionExternals(ctx, externals)

	// Plain file drops are handled elsewhere.
	if len(part.locations) == 0 {
		return false, nil
	}

	// The drop is about to open locations; the target window should be visible.
	if err := h.co.Windows.Focus(ctx); err != nil {
		return false, fmt.Errorf("focus window: %w", err)
	}

	plan := decidePlan(part)
	logger.Debug("executing open plan",
		logging.Int("locations", len(part.locations)),
		logging.Int("folders", len(part.folders)),
		logging.Bool("composite", plan.kind == planCreateComposite))

	execCtx := context.WithoutCancel(ctx)
	h.async.Add(1)
	go func() {
		defer h.async.Done()
		if err := h.executePlan(execCtx, plan); err != nil {
			logger.Error("execute open plan", logging.Error(err))
			h.co.Alerts.DropFailed(execCtx, err)
		}
	}()

	return true, nil
}

// partitionExternals classifies candidates into workspace files (by extension,
// no stat needed) and folders (by stat). Stats fan out concurrently and the
// partition preserves drop order. A failed or non-directory stat silently
// drops the candidate; that is the expected outcome for plain files.
func (h *Handler) partitionExternals(ctx context.Context, externals []Candidate) externalPartition {
	type class int
	const (
		classNone class = iota
		classWorkspace
		classFolder
	)

	classes := make([]class, len(externals))
	var wg sync.WaitGroup
	for i, cand := range externals {
		if cand.Resource.HasExtension(h.workspaceExt) {
			classes[i] = classWorkspace
			continue
		}
		wg.Add(1)
		go func(i int, res Resource) {
			defer wg.Done()
			info, err := h.co.Stats.Stat(ctx, res)
			if err == nil && info.IsDirectory {
				classes[i] = classFolder
			}
		}(i, cand.Resource)
	}
	wg.Wait()

	var part externalPartition
	for i, cand := range externals {
		switch classes[i] {
		case classWorkspace:
			part.locations = append(part.locations, cand.Resource)
			part.workspaces++
		case classFolder:
			part.locations = append(part.locations, cand.Resource)
			part.folders = append(part.folders, cand.Resource)
		}
	}
	return part
}

// decidePlan picks the opening strategy. A workspace file anywhere in the
// drop forces direct opening, even when several folders could otherwise merge
// into a composite workspace; only a pure multi-folder drop merges.
func decidePlan(part externalPartition) openPlan {
	if part.workspaces > 0 || len(part.folders) == 1 {
		return openPlan{kind: planOpenDirect, locations: part.locations}
	}
	return openPlan{kind: planCreateComposite, folders: part.folders}
}

func (h *Handler) executePlan(ctx context.Context, plan openPlan) error {
	switch plan.kind {
	case planOpenDirect:
		if err := h.co.Windows.Open(ctx, plan.locations, OpenOptions{ForceReuseWindow: true}); err != nil {
			return fmt.Errorf("open dropped locations: %w", err)
		}
	case planCreateComposite:
		configRes, err := h.co.Workspaces.Create(ctx, plan.folders)
		if err != nil {
			return fmt.Errorf("create composite workspace: %w", err)
		}
		if err := h.co.Windows.Open(ctx, []Resource{configRes}, OpenOptions{ForceReuseWindow: true}); err != nil {
			return fmt.Errorf("open composite workspace: %w", err)
		}
	}
	return nil
}
