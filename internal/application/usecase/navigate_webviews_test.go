package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/twinview/internal/application/port/mocks"
	"github.com/bnema/twinview/internal/domain/entity"
)

func TestNavigateWebviews_InvalidURLDoesNotTouchPanel(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not a url",
		"example.com",
		"https://",
		"http:///path",
		"://example.com",
		"https://exa mple.com",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			right := newMockPanel(ctrl, entity.PanelContent)
			// No LoadURI expectation: any call fails the test.
			registry := NewManagePanelsUseCase()
			require.NoError(t, registry.Register(context.Background(), right))

			uc := NewNavigateWebviewsUseCase(registry, nil)
			err := uc.Execute(context.Background(), NavigateWebviewsInput{URL: input})

			require.Error(t, err)
			assert.ErrorIs(t, err, entity.ErrInvalidURL)
			assert.Equal(t, "Invalid URL format", err.Error())
		})
	}
}

func TestNavigateWebviews_LoadsValidURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	right := newMockPanel(ctrl, entity.PanelContent)
	right.EXPECT().LoadURI(gomock.Any(), "https://example.com/docs?q=1").Return(nil).Times(1)

	locator := mocks.NewMockPanelLocator(ctrl)
	locator.EXPECT().Lookup(entity.PanelContent).Return(right, true)

	uc := NewNavigateWebviewsUseCase(locator, nil)
	require.NoError(t, uc.Execute(ctx, NavigateWebviewsInput{URL: "https://example.com/docs?q=1"}))
}

func TestNavigateWebviews_TrimsSurroundingWhitespace(t *testing.T) {
	ctrl := gomock.NewController(t)
	right := newMockPanel(ctrl, entity.PanelContent)
	right.EXPECT().LoadURI(gomock.Any(), "https://example.com/search?q=a b").Return(nil).Times(1)

	locator := mocks.NewMockPanelLocator(ctrl)
	locator.EXPECT().Lookup(entity.PanelContent).Return(right, true)

	uc := NewNavigateWebviewsUseCase(locator, nil)
	require.NoError(t, uc.Execute(context.Background(), NavigateWebviewsInput{URL: "  https://example.com/search?q=a b\n"}))
}

func TestNavigateWebviews_MissingContentPanelForAnyInput(t *testing.T) {
	for _, input := range []string{"https://example.com", "", "garbage"} {
		t.Run(input, func(t *testing.T) {
			uc := NewNavigateWebviewsUseCase(NewManagePanelsUseCase(), nil)
			err := uc.Execute(context.Background(), NavigateWebviewsInput{URL: input})

			require.Error(t, err)
			assert.ErrorIs(t, err, entity.ErrWindowNotFound)
			assert.Equal(t, "Right window not found", err.Error())
		})
	}
}

func TestNavigateWebviews_WrapsLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	right := newMockPanel(ctrl, entity.PanelContent)
	loadErr := errors.New("webview destroyed")
	right.EXPECT().LoadURI(gomock.Any(), "https://example.com").Return(loadErr)

	locator := mocks.NewMockPanelLocator(ctrl)
	locator.EXPECT().Lookup(entity.PanelContent).Return(right, true)

	observer := mocks.NewMockNavigationObserver(ctrl)
	// A failed load is not reported.
	uc := NewNavigateWebviewsUseCase(locator, observer)
	err := uc.Execute(context.Background(), NavigateWebviewsInput{URL: "https://example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
	assert.NotErrorIs(t, err, entity.ErrInvalidURL)
}

func TestNavigateWebviews_ProactiveObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	right := newMockPanel(ctrl, entity.PanelContent)
	locator := mocks.NewMockPanelLocator(ctrl)
	observer := mocks.NewMockNavigationObserver(ctrl)

	gomock.InOrder(
		locator.EXPECT().Lookup(entity.PanelContent).Return(right, true),
		right.EXPECT().LoadURI(gomock.Any(), "https://example.com").Return(nil),
		observer.EXPECT().Observe(gomock.Any(), "https://example.com").Return(true),
	)

	uc := NewNavigateWebviewsUseCase(locator, observer)
	require.NoError(t, uc.Execute(context.Background(), NavigateWebviewsInput{URL: "https://example.com"}))
}

func TestNavigateWebviews_CurrentURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	right := newMockPanel(ctrl, entity.PanelContent)
	right.EXPECT().URI().Return("https://google.com/")

	registry := NewManagePanelsUseCase()
	uc := NewNavigateWebviewsUseCase(registry, nil)

	_, err := uc.CurrentURL()
	assert.ErrorIs(t, err, entity.ErrWindowNotFound)

	require.NoError(t, registry.Register(context.Background(), right))
	got, err := uc.CurrentURL()
	require.NoError(t, err)
	assert.Equal(t, "https://google.com/", got)
}
