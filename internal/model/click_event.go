package model

import "time"

// EventType enumerates the click-event kinds tracked by the analytics
// service.
type EventType string

const (
	EventLiveClick     EventType = "live-click"
	EventDeferredClick EventType = "deferred-click"
)

// EventProperty names the properties a click event may carry.
const (
	PropChannelName = "channelName"
	PropProgramName = "programName"
	PropUserGender  = "userGender"
	PropUserAge     = "userAge"
	PropUserID      = "userId"
)

// ClickEvent is a single click-style event fetched from the analytics
// service. Immutable once fetched; lives only for one report computation.
type ClickEvent struct {
	Type       EventType
	Properties EventProperties
	Timestamp  time.Time
}

// EventProperties holds the optional event properties. Nil/empty values mean
// the property was absent from the remote payload.
type EventProperties struct {
	ChannelName string `json:"channelName,omitempty"`
	ProgramName string `json:"programName,omitempty"`
	UserGender  string `json:"userGender,omitempty"`
	UserAge     *int   `json:"userAge,omitempty"`
	UserID      string `json:"userId,omitempty"`
}

// Get returns the named property as a string and whether it was present.
// Ages are bucketed so aggregation keys stay bounded.
func (p EventProperties) Get(name string) (string, bool) {
	switch name {
	case PropChannelName:
		return p.ChannelName, p.ChannelName != ""
	case PropProgramName:
		return p.ProgramName, p.ProgramName != ""
	case PropUserGender:
		return p.UserGender, p.UserGender != ""
	case PropUserAge:
		if p.UserAge == nil {
			return "", false
		}
		return string(BracketForAge(*p.UserAge, true)), true
	case PropUserID:
		return p.UserID, p.UserID != ""
	default:
		return "", false
	}
}
