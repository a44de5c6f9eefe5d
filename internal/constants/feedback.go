package constants

// Canonical feedback responses offered during a reading's reveal loop. Free
// text is also accepted; these are the quick-select options the TUI and CLI
// present.
const (
	FeedbackResonates = "resonates"
	FeedbackNeutral   = "neutral"
	FeedbackDissonant = "does not resonate"
)

// FeedbackOptions lists the quick-select responses in presentation order.
var FeedbackOptions = []string{
	FeedbackResonates,
	FeedbackNeutral,
	FeedbackDissonant,
}
