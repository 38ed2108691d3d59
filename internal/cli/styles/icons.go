package styles

// Nerd Font icons used by the renderers.
const (
	IconConfig  = "\ue615" // gear
	IconInfo    = "\uf05a" // info circle
	IconError   = "\uf057" // times circle
	IconVersion = "\uf02b" // tag
	IconGit     = "\ue725" // git branch
	IconGo      = "\ue627" // go
	IconHand    = "\uf256" // hand
)
