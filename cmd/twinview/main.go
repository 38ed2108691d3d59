package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/bnema/twinview/internal/bootstrap"
	"github.com/bnema/twinview/internal/cli/cmd"
	"github.com/bnema/twinview/internal/domain/build"
	"github.com/bnema/twinview/internal/infrastructure/config"
	glog "github.com/bnema/twinview/internal/infrastructure/logging"
	"github.com/bnema/twinview/internal/logging"
	"github.com/bnema/twinview/internal/ui"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	// GTK must own the main OS thread, so the GUI path bypasses cobra.
	if len(os.Args) == 1 || os.Args[1] == cmd.RunCommand {
		os.Args = os.Args[:1]
		os.Exit(runGUI())
		return
	}

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}

func runGUI() int {
	runtime.LockOSThread()
	timer := bootstrap.NewStartupTimer()

	mgr, cfg := initConfig()
	timer.Mark("config")

	ctx := initStartupContext(cfg)
	log := logging.FromContext(ctx)
	glog.InstallGLibLogHandler(ctx, *log, isVerbose(cfg.Logging.Level))
	logCoreDumpLimits(ctx)
	timer.Mark("logger")

	deps, err := ui.NewDependencies(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to wire dependencies")
	}
	deps.ConfigManager = mgr

	app, err := ui.New(deps)
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}
	timer.Mark("ui_deps")
	timer.Log(ctx)

	setupSignalHandler(ctx, app)

	return app.Run(ctx, os.Args)
}

func initConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err == nil {
		err = mgr.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}
	return mgr, mgr.Get()
}

func initStartupContext(cfg *config.Config) context.Context {
	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Str("build_date", buildDate).
		Str("notifier", string(cfg.Notifier.Mode)).
		Msg("starting twinview")
	ctx := logging.WithContext(context.Background(), logger)
	return logging.WithSession(ctx, logging.NewSessionID())
}

func isVerbose(level string) bool {
	return level == "debug" || level == "trace"
}

func setupSignalHandler(ctx context.Context, app *ui.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		app.Quit()
	}()
}
