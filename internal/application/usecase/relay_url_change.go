package usecase

import (
	"context"

	"github.com/bnema/twinview/internal/application/port"
	"github.com/bnema/twinview/internal/domain/entity"
	"github.com/bnema/twinview/internal/logging"
)

// URLChangedEvent is the DOM event name dispatched in the control panel.
const URLChangedEvent = "url-changed"

// URLChangedPayload is the payload of URLChangedEvent.
type URLChangedPayload struct {
	URL string `json:"url"`
}

// RelayURLChangeUseCase delivers bridge events to their target panel.
type RelayURLChangeUseCase struct {
	panels port.PanelLocator
}

// NewRelayURLChangeUseCase creates the control-panel relay.
func NewRelayURLChangeUseCase(panels port.PanelLocator) *RelayURLChangeUseCase {
	return &RelayURLChangeUseCase{panels: panels}
}

// Deliver emits the change in the target panel. A missing target is logged
// and the event dropped.
func (uc *RelayURLChangeUseCase) Deliver(ctx context.Context, change entity.URLChange) {
	log := logging.FromContext(ctx)

	target := change.Target
	if target == "" {
		target = entity.PanelControl
	}
	panel, ok := uc.panels.Lookup(target)
	if !ok {
		log.Warn().Str("panel", string(target)).Str("url", change.URL).Msg("relay: target panel not registered, dropping event")
		return
	}

	if err := panel.Emit(ctx, URLChangedEvent, URLChangedPayload{URL: change.URL}); err != nil {
		log.Error().Err(err).Str("panel", string(target)).Msg("relay: emit failed")
		return
	}
	log.Debug().Str("panel", string(target)).Str("url", change.URL).Msg("url change relayed")
}
