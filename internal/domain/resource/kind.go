// Package resource holds the portal's backend-owned resource kinds and the
// state transitions each kind accepts. Resource bodies are opaque: the
// backend owns their shape and the gateway forwards them as-is.
package resource

// Kind names a collection exposed by the backend API.
type Kind string

const (
	KindClients   Kind = "clients"
	KindEstimates Kind = "estimates"
	KindJobs      Kind = "jobs"
	KindMessages  Kind = "messages"
)

// Kinds lists every collection kind in route order.
var Kinds = []Kind{KindClients, KindEstimates, KindJobs, KindMessages}

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindClients, KindEstimates, KindJobs, KindMessages:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Action names a state transition forwarded as POST /{kind}/{id}/{action}.
type Action string

const (
	ActionSend     Action = "send"
	ActionApprove  Action = "approve"
	ActionDecline  Action = "decline"
	ActionConvert  Action = "convert"
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
	ActionMarkRead Action = "mark-read"
	ActionArchive  Action = "archive"
)

var allowedActions = map[Kind][]Action{
	KindEstimates: {ActionSend, ActionApprove, ActionDecline, ActionConvert},
	KindJobs:      {ActionStart, ActionComplete, ActionCancel},
	KindMessages:  {ActionMarkRead},
	KindClients:   {ActionArchive},
}

// Allows reports whether action is a permitted transition for kind.
func (k Kind) Allows(action Action) bool {
	for _, a := range allowedActions[k] {
		if a == action {
			return true
		}
	}
	return false
}

// Actions returns the transitions permitted for kind. The returned slice
// must not be modified.
func (k Kind) Actions() []Action {
	return allowedActions[k]
}

// String implements fmt.Stringer.
func (a Action) String() string {
	return string(a)
}
