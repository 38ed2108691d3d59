package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/twinview/internal/application/port"
	"github.com/bnema/twinview/internal/domain/entity"
	"github.com/bnema/twinview/internal/domain/url"
	"github.com/bnema/twinview/internal/logging"
)

// NavigateWebviewsInput holds the argument of the navigate_webviews command.
type NavigateWebviewsInput struct {
	URL string `json:"url"`
}

// NavigateWebviewsUseCase points the content panel at a new address.
type NavigateWebviewsUseCase struct {
	panels   port.PanelLocator
	observer port.NavigationObserver
}

// NewNavigateWebviewsUseCase creates the navigation command handler.
// observer may be nil; when set, every successful navigation is reported
// to it immediately instead of waiting for the next poll.
func NewNavigateWebviewsUseCase(panels port.PanelLocator, observer port.NavigationObserver) *NavigateWebviewsUseCase {
	return &NavigateWebviewsUseCase{
		panels:   panels,
		observer: observer,
	}
}

// Execute looks up the content panel, validates the URL and loads it.
// The lookup runs first so a missing panel is reported for any input.
func (uc *NavigateWebviewsUseCase) Execute(ctx context.Context, input NavigateWebviewsInput) error {
	log := logging.FromContext(ctx)

	panel, ok := uc.panels.Lookup(entity.PanelContent)
	if !ok {
		log.Warn().Msg("navigate: content panel not registered")
		return entity.NewWindowNotFoundError(entity.PanelContent)
	}

	if _, err := url.Validate(input.URL); err != nil {
		log.Debug().Err(err).Str("url", input.URL).Msg("navigate: rejected url")
		return &entity.CommandError{Kind: entity.KindInvalidURL}
	}
	target := url.Trim(input.URL)
	log = logging.FromContext(logging.WithURL(ctx, target))

	if err := panel.LoadURI(ctx, target); err != nil {
		return fmt.Errorf("load %s in %s panel: %w", target, entity.PanelContent, err)
	}
	log.Info().Msg("content panel navigating")

	if uc.observer != nil {
		uc.observer.Observe(ctx, target)
	}
	return nil
}

// CurrentURL returns the content panel's current address.
func (uc *NavigateWebviewsUseCase) CurrentURL() (string, error) {
	panel, ok := uc.panels.Lookup(entity.PanelContent)
	if !ok {
		return "", entity.NewWindowNotFoundError(entity.PanelContent)
	}
	return panel.URI(), nil
}
