// Package ui provides the GTK4 presentation layer for twinview.
package ui

import (
	"context"

	"github.com/bnema/twinview/internal/application/port"
	"github.com/bnema/twinview/internal/application/usecase"
	"github.com/bnema/twinview/internal/infrastructure/bridge"
	"github.com/bnema/twinview/internal/infrastructure/config"
	"github.com/bnema/twinview/internal/infrastructure/ipc"
	"github.com/bnema/twinview/internal/ui/handler"
)

// Dependencies holds the toolkit-independent object graph shared by both
// panels. It is created once at startup and passed to the App.
type Dependencies struct {
	Ctx    context.Context
	Config *config.Config

	// ConfigManager is optional; when set, webview settings are hot-reloaded.
	ConfigManager *config.Manager

	// Event bridge
	Bus *bridge.Bus

	// Use cases
	PanelsUC   *usecase.ManagePanelsUseCase
	GreetUC    *usecase.GreetUseCase
	NavigateUC *usecase.NavigateWebviewsUseCase
	NotifierUC *usecase.NotifyURLChangeUseCase
	RelayUC    *usecase.RelayURLChangeUseCase

	// Script message routing shared by both webviews
	Router *ipc.Router

	unsubscribeRelay func()
}

// NewDependencies wires the panel registry, event bridge, change notifier
// and command router for cfg. The relay to the control panel is the only
// bridge subscriber.
func NewDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	if ctx == nil {
		return nil, ErrMissingDependency("Ctx")
	}
	if cfg == nil {
		return nil, ErrMissingDependency("Config")
	}

	d := &Dependencies{
		Ctx:      ctx,
		Config:   cfg,
		Bus:      bridge.NewBus(),
		PanelsUC: usecase.NewManagePanelsUseCase(),
		GreetUC:  usecase.NewGreetUseCase(),
		Router:   ipc.NewRouter(),
	}

	d.RelayUC = usecase.NewRelayURLChangeUseCase(d.PanelsUC)
	d.unsubscribeRelay = d.Bus.Subscribe(d.RelayUC.Deliver)

	d.NotifierUC = usecase.NewNotifyURLChangeUseCase(d.Bus, cfg.Notifier.Mode)

	var observer port.NavigationObserver
	if cfg.Notifier.ProactiveEnabled() {
		observer = d.NotifierUC
	}
	d.NavigateUC = usecase.NewNavigateWebviewsUseCase(d.PanelsUC, observer)

	if err := handler.Register(d.Router, handler.Commands{
		Greet:    d.GreetUC,
		Navigate: d.NavigateUC,
		Notifier: d.NotifierUC,
	}); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.Bus == nil {
		return ErrMissingDependency("Bus")
	}
	if d.PanelsUC == nil {
		return ErrMissingDependency("PanelsUC")
	}
	if d.NavigateUC == nil || d.NotifierUC == nil {
		return ErrMissingDependency("NavigateUC/NotifierUC")
	}
	if d.Router == nil {
		return ErrMissingDependency("Router")
	}
	return nil
}

// Close detaches the relay from the bridge.
func (d *Dependencies) Close() {
	if d.unsubscribeRelay != nil {
		d.unsubscribeRelay()
		d.unsubscribeRelay = nil
	}
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
