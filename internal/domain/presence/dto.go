package presence

import (
	"encoding/json"
)

// Row is a `[label, value]` pair, serialized as a two element JSON array the
// dashboard charts consume directly.
type Row struct {
	Label string
	Value interface{}
}

func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{r.Label, r.Value})
}

// PresenceHeader is the leading row of the total presence report.
var PresenceHeader = Row{Label: "Weekday", Value: "Presence (s)"}

// StartEndSummary is the average clock-in and clock-out of one weekday,
// both rendered as epoch-anchored date-times.
type StartEndSummary struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Weekday string `json:"weekday"`
}

type User struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}
