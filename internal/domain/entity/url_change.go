package entity

// URLChange is the payload relayed from the content panel to the control
// panel whenever the content location changes.
type URLChange struct {
	URL    string
	Source PanelLabel
	Target PanelLabel
}

// NewURLChange builds the content → control change event for url.
func NewURLChange(url string) URLChange {
	return URLChange{
		URL:    url,
		Source: PanelContent,
		Target: PanelControl,
	}
}

// PolicyDecision is the answer given to a navigation interception.
type PolicyDecision int

const (
	// PolicyAllow lets the navigation proceed.
	PolicyAllow PolicyDecision = iota
	// PolicyDeny cancels the navigation.
	PolicyDeny
)

// String returns a human-readable representation of the decision.
func (d PolicyDecision) String() string {
	switch d {
	case PolicyAllow:
		return "allow"
	case PolicyDeny:
		return "deny"
	default:
		return "unknown"
	}
}

// NotifierMode selects how content-panel navigations are detected.
type NotifierMode string

const (
	// NotifierHook relies on the webview's native navigation policy signal.
	NotifierHook NotifierMode = "hook"
	// NotifierPoll relies on an injected script sampling the location.
	NotifierPoll NotifierMode = "poll"
)
