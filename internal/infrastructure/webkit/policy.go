package webkit

import (
	"context"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/twinview/internal/domain/entity"
)

// NavigationPolicy decides a navigation action before it starts. It runs
// for subframes too, so it must not be used to track the page location.
type NavigationPolicy func(ctx context.Context, uri string) entity.PolicyDecision

// SetNavigationPolicy calls policy for every navigation action of this
// webview, inside WebKit's decide-policy signal. New-window and response
// decisions keep WebKit's default handling.
func (wv *WebView) SetNavigationPolicy(ctx context.Context, policy NavigationPolicy) {
	wv.inner.ConnectDecidePolicy(func(decision webkit.PolicyDecisioner, typ webkit.PolicyDecisionType) bool {
		if typ != webkit.PolicyDecisionTypeNavigationAction {
			return false
		}
		nav, ok := decision.(*webkit.NavigationPolicyDecision)
		if !ok {
			return false
		}

		uri := navigationURI(nav)
		base := webkit.BasePolicyDecision(decision)
		switch policy(ctx, uri) {
		case entity.PolicyDeny:
			wv.logger.Debug().Str("uri", uri).Msg("navigation denied")
			base.Ignore()
		default:
			base.Use()
		}
		return true
	})
}

func navigationURI(nav *webkit.NavigationPolicyDecision) string {
	action := nav.NavigationAction()
	if action == nil {
		return ""
	}
	req := action.Request()
	if req == nil {
		return ""
	}
	return req.URI()
}
