package usecase

import (
	"context"
	"sync"

	"github.com/bnema/twinview/internal/application/port"
	"github.com/bnema/twinview/internal/domain/entity"
	"github.com/bnema/twinview/internal/logging"
)

// NotifyURLChangeUseCase turns content-panel location changes into events
// on the bridge. In hook mode the webview reports each committed main-frame
// load. In poll mode the injected watcher reports locations, deduplicated
// against the last published URL.
type NotifyURLChangeUseCase struct {
	publisher port.URLChangePublisher
	mode      entity.NotifierMode

	mu       sync.Mutex
	lastSeen string
}

var _ port.NavigationObserver = (*NotifyURLChangeUseCase)(nil)

// NewNotifyURLChangeUseCase creates the change notifier for the given mode.
func NewNotifyURLChangeUseCase(publisher port.URLChangePublisher, mode entity.NotifierMode) *NotifyURLChangeUseCase {
	if mode != entity.NotifierPoll {
		mode = entity.NotifierHook
	}
	return &NotifyURLChangeUseCase{
		publisher: publisher,
		mode:      mode,
	}
}

// Mode returns the notifier mode in effect.
func (uc *NotifyURLChangeUseCase) Mode() entity.NotifierMode {
	return uc.mode
}

// Observe reports a location seen by the poll watcher or pushed proactively
// by the navigation command. It returns true when an event was published.
// Reports are ignored in hook mode, where only the webview is trusted.
func (uc *NotifyURLChangeUseCase) Observe(ctx context.Context, url string) bool {
	if url == "" {
		return false
	}
	if uc.mode != entity.NotifierPoll {
		logging.FromContext(ctx).Debug().Str("url", url).Msg("location report ignored in hook mode")
		return false
	}

	uc.mu.Lock()
	if url == uc.lastSeen {
		uc.mu.Unlock()
		logging.FromContext(ctx).Trace().Str("url", url).Msg("url unchanged, skipping")
		return false
	}
	uc.lastSeen = url
	uc.mu.Unlock()

	uc.publisher.Publish(ctx, entity.NewURLChange(url))
	return true
}

// DecideNavigation answers the content panel's navigation policy check.
// Every navigation is allowed; nothing is published here because the
// check also runs for subframes.
func (uc *NotifyURLChangeUseCase) DecideNavigation(_ context.Context, _ string) entity.PolicyDecision {
	return entity.PolicyAllow
}

// OnLocationCommitted is the native hook: the content panel's main frame
// committed a load of url. It publishes synchronously in hook mode and
// returns true when an event was published.
func (uc *NotifyURLChangeUseCase) OnLocationCommitted(ctx context.Context, url string) bool {
	if url == "" || uc.mode != entity.NotifierHook {
		return false
	}
	uc.publisher.Publish(ctx, entity.NewURLChange(url))
	return true
}
