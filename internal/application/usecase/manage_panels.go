package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/twinview/internal/application/port"
	"github.com/bnema/twinview/internal/domain/entity"
	"github.com/bnema/twinview/internal/logging"
)

// ManagePanelsUseCase is the registry of live panels keyed by label.
// It is the explicit context object handed to command handlers and the
// change notifier in place of a process-wide window table.
type ManagePanelsUseCase struct {
	mu     sync.RWMutex
	panels map[entity.PanelLabel]port.Panel
}

var _ port.PanelLocator = (*ManagePanelsUseCase)(nil)

// NewManagePanelsUseCase creates an empty panel registry.
func NewManagePanelsUseCase() *ManagePanelsUseCase {
	return &ManagePanelsUseCase{
		panels: make(map[entity.PanelLabel]port.Panel),
	}
}

// Register adds a panel under its label. At most one panel per label may exist.
func (uc *ManagePanelsUseCase) Register(ctx context.Context, panel port.Panel) error {
	if panel == nil {
		return fmt.Errorf("register panel: nil panel")
	}
	label := panel.Label()
	if !label.Valid() {
		return fmt.Errorf("register panel: unknown label %q", label)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, exists := uc.panels[label]; exists {
		return fmt.Errorf("register panel: label %q already registered", label)
	}
	uc.panels[label] = panel

	logging.FromContext(ctx).Debug().
		Str("panel", string(label)).
		Int("registered", len(uc.panels)).
		Msg("panel registered")
	return nil
}

// Unregister removes the panel with the given label. Missing labels are ignored.
func (uc *ManagePanelsUseCase) Unregister(ctx context.Context, label entity.PanelLabel) {
	uc.mu.Lock()
	_, existed := uc.panels[label]
	delete(uc.panels, label)
	uc.mu.Unlock()

	if existed {
		logging.FromContext(ctx).Debug().Str("panel", string(label)).Msg("panel unregistered")
	}
}

// Lookup returns the panel registered under label, if any.
func (uc *ManagePanelsUseCase) Lookup(label entity.PanelLabel) (port.Panel, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	panel, ok := uc.panels[label]
	return panel, ok
}

// Labels returns the registered labels in sorted order.
func (uc *ManagePanelsUseCase) Labels() []entity.PanelLabel {
	uc.mu.RLock()
	labels := make([]entity.PanelLabel, 0, len(uc.panels))
	for label := range uc.panels {
		labels = append(labels, label)
	}
	uc.mu.RUnlock()

	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// Count returns the number of registered panels.
func (uc *ManagePanelsUseCase) Count() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.panels)
}
