// LingoTeach - language-teaching voice skill backend
// License: MIT

// Package alexa models the voice-platform request and response envelopes.
package alexa

// Request types carried in RequestEnvelope.Request.Type.
const (
	TypeLaunchRequest       = "LaunchRequest"
	TypeIntentRequest       = "IntentRequest"
	TypeSessionEndedRequest = "SessionEndedRequest"
)

// Built-in and custom intent names the skill reacts to.
const (
	IntentHelp        = "AMAZON.HelpIntent"
	IntentCancel      = "AMAZON.CancelIntent"
	IntentStop        = "AMAZON.StopIntent"
	IntentSetLanguage = "SetLanguage"
	IntentAsk         = "AskIntent"
	IntentRepeat      = "RepeatIntent"
)

// StatusMatch is the resolution status code for an exact slot match.
const StatusMatch = "ER_SUCCESS_MATCH"

type RequestEnvelope struct {
	Version string   `json:"version"`
	Session *Session `json:"session,omitempty"`
	Context Context  `json:"context"`
	Request Request  `json:"request"`
}

type Session struct {
	New        bool           `json:"new"`
	SessionID  string         `json:"sessionId"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

type Context struct {
	System System `json:"System"`
}

type System struct {
	Device      Device      `json:"device"`
	Application Application `json:"application"`
	User        User        `json:"user"`
}

type Device struct {
	DeviceID string `json:"deviceId"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID string `json:"userId"`
}

type Request struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp"`
	Locale    string  `json:"locale,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
	// Reason is only set on SessionEndedRequest.
	Reason string `json:"reason,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name        string       `json:"name"`
	Value       string       `json:"value,omitempty"`
	Resolutions *Resolutions `json:"resolutions,omitempty"`
}

type Resolutions struct {
	ResolutionsPerAuthority []Resolution `json:"resolutionsPerAuthority,omitempty"`
}

type Resolution struct {
	Authority string            `json:"authority"`
	Status    ResolutionStatus  `json:"status"`
	Values    []ResolutionValue `json:"values,omitempty"`
}

type ResolutionStatus struct {
	Code string `json:"code"`
}

type ResolutionValue struct {
	Value SlotValue `json:"value"`
}

type SlotValue struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// DeviceID returns the calling device identifier.
func (e *RequestEnvelope) DeviceID() string {
	return e.Context.System.Device.DeviceID
}

// IsIntent reports whether the envelope carries the named intent.
func (e *RequestEnvelope) IsIntent(name string) bool {
	return e.Request.Type == TypeIntentRequest &&
		e.Request.Intent != nil &&
		e.Request.Intent.Name == name
}

// Slot returns the named slot of the current intent, if present.
func (e *RequestEnvelope) Slot(name string) (Slot, bool) {
	if e.Request.Intent == nil {
		return Slot{}, false
	}
	slot, ok := e.Request.Intent.Slots[name]
	return slot, ok
}

// Resolved returns the id and name of the first exactly matched resolution
// value. It returns ok=false when the slot carries no resolutions, no
// authorities, a non-match status, or no candidate values.
func (s Slot) Resolved() (id, name string, ok bool) {
	if s.Resolutions == nil || len(s.Resolutions.ResolutionsPerAuthority) == 0 {
		return "", "", false
	}
	authority := s.Resolutions.ResolutionsPerAuthority[0]
	if authority.Status.Code != StatusMatch || len(authority.Values) == 0 {
		return "", "", false
	}
	value := authority.Values[0].Value
	return value.ID, value.Name, true
}
