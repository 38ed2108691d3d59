package ui

import (
	"context"
	"fmt"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/twinview/assets"
	"github.com/bnema/twinview/internal/domain/entity"
	"github.com/bnema/twinview/internal/infrastructure/config"
	"github.com/bnema/twinview/internal/infrastructure/webkit"
	"github.com/bnema/twinview/internal/logging"
	"github.com/bnema/twinview/internal/ui/mainloop"
	"github.com/bnema/twinview/internal/ui/window"
)

const (
	// AppID is the application identifier for GTK.
	AppID = "com.github.bnema.twinview"

	controlBaseURI = "about:blank"

	settingsReloadKey = "webview-settings"
)

// App owns the GTK application and the two panel windows.
type App struct {
	deps   *Dependencies
	gtkApp *gtk.Application

	mu      sync.Mutex
	windows []*window.PanelWindow

	coalescer *mainloop.Coalescer
}

// New creates the application.
func New(deps *Dependencies) (*App, error) {
	if deps == nil {
		return nil, ErrMissingDependency("Dependencies")
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	gtkApp := gtk.NewApplication(AppID, gtkApplicationFlags())
	if gtkApp == nil {
		return nil, fmt.Errorf("failed to create GTK application")
	}
	return &App{
		deps:      deps,
		gtkApp:    gtkApp,
		coalescer: mainloop.NewCoalescer(mainloop.IdlePost),
	}, nil
}

// gtkApplicationFlags keeps every launch independent of running instances.
func gtkApplicationFlags() gio.ApplicationFlags {
	return gio.ApplicationNonUnique
}

// Run starts the GTK main loop and blocks until the application quits.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)

	a.gtkApp.ConnectActivate(func() {
		a.onActivate(ctx)
	})
	a.gtkApp.ConnectShutdown(func() {
		a.onShutdown(ctx)
	})

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

// onActivate creates both panels. The control panel is registered first so
// it can receive the content panel's initial navigation event.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	for _, spec := range entity.DefaultPanels() {
		if err := a.createPanel(ctx, spec); err != nil {
			log.Fatal().Err(err).Str("panel", string(spec.Label)).Msg("failed to create panel")
		}
	}

	a.watchConfig(ctx)

	log.Info().
		Str("notifier", string(a.deps.NotifierUC.Mode())).
		Int("panels", a.deps.PanelsUC.Count()).
		Interface("labels", a.deps.PanelsUC.Labels()).
		Int("message_types", a.deps.Router.Types()).
		Int("subscribers", a.deps.Bus.Len()).
		Msg("panels ready")
}

func (a *App) createPanel(ctx context.Context, spec entity.PanelSpec) error {
	ctx = logging.WithPanel(ctx, spec.Label)

	wv, err := webkit.NewWebView(ctx, spec.Label)
	if err != nil {
		return err
	}
	wv.ApplySettings(webViewSettings(spec.Label, a.deps.Config.WebView))

	if err := wv.EnableMessages(ctx, a.deps.Router); err != nil {
		return err
	}

	switch spec.Label {
	case entity.PanelControl:
		wv.AddUserScript(assets.BridgeScript)
	case entity.PanelContent:
		a.installNotifier(ctx, wv)
	}

	win, err := window.New(ctx, a.gtkApp, spec, wv)
	if err != nil {
		return fmt.Errorf("create %s window: %w", spec.Label, err)
	}
	if err := a.deps.PanelsUC.Register(ctx, wv); err != nil {
		return err
	}
	win.OnClose(func() {
		a.deps.PanelsUC.Unregister(ctx, spec.Label)
	})

	a.mu.Lock()
	a.windows = append(a.windows, win)
	a.mu.Unlock()

	switch spec.Source.Kind {
	case entity.SourceEmbedded:
		err = wv.LoadHTML(ctx, assets.ControlPage, controlBaseURI)
	default:
		err = wv.LoadURI(ctx, spec.Source.URL)
	}
	if err != nil {
		return err
	}

	win.Show()
	return nil
}

// installNotifier hooks the content panel's navigations into the notifier.
// Hook mode reports main-frame commits; poll mode injects the watcher.
func (a *App) installNotifier(ctx context.Context, wv *webkit.WebView) {
	notifier := a.deps.NotifierUC
	if notifier.Mode() == entity.NotifierPoll {
		interval := a.deps.Config.Notifier.PollInterval()
		wv.AddUserScript(assets.URLWatchScript(interval))
		logging.FromContext(ctx).Debug().
			Dur("interval", interval).
			Bool("proactive", a.deps.Config.Notifier.ProactiveEnabled()).
			Msg("url watcher installed")
		return
	}
	wv.SetNavigationPolicy(ctx, notifier.DecideNavigation)
	wv.OnLocationCommitted(ctx, func(ctx context.Context, uri string) {
		notifier.OnLocationCommitted(ctx, uri)
	})
}

// watchConfig applies webview setting changes to live panels. Other keys
// take effect on the next start.
func (a *App) watchConfig(ctx context.Context) {
	mgr := a.deps.ConfigManager
	if mgr == nil {
		return
	}
	log := logging.FromContext(logging.WithComponent(ctx, "config"))

	mgr.OnConfigChange(func(cfg *config.Config) {
		if cfg.Notifier != a.deps.Config.Notifier {
			log.Info().Msg("notifier settings changed; restart to apply")
		}
		webCfg := cfg.WebView
		a.coalescer.Post(settingsReloadKey, func() {
			a.applySettings(webCfg)
		})
	})
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watcher disabled")
	}
}

func (a *App) applySettings(c config.WebViewConfig) {
	a.mu.Lock()
	windows := make([]*window.PanelWindow, len(a.windows))
	copy(windows, a.windows)
	a.mu.Unlock()

	for _, win := range windows {
		win.WebView().ApplySettings(webViewSettings(win.Label(), c))
	}
}

func (a *App) onShutdown(ctx context.Context) {
	logging.FromContext(ctx).Info().
		Int("pending_tasks", a.coalescer.Pending()).
		Msg("application shutting down")
	a.coalescer.Destroy()
	a.deps.Close()
}

// Quit stops the main loop. Safe to call from any goroutine.
func (a *App) Quit() {
	mainloop.IdlePost(a.gtkApp.Quit)
}

// webViewSettings maps the config onto the panel labelled label. The
// control panel is our own page: it always runs JavaScript and keeps the
// default user agent.
func webViewSettings(label entity.PanelLabel, c config.WebViewConfig) webkit.Settings {
	s := webkit.Settings{
		EnableJavaScript:     c.EnableJavaScript,
		DeveloperExtras:      c.DeveloperExtras,
		HardwareAcceleration: c.HardwareAcceleration,
		UserAgent:            c.UserAgent,
	}
	if label == entity.PanelControl {
		s.EnableJavaScript = true
		s.UserAgent = ""
	}
	return s
}
