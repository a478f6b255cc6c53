package board

import "time"

const Agency = "SL"

// Departure is the normalized, card compatible shape of a single upcoming
// departure. A fresh value is built on every poll cycle; no identity is
// carried between cycles.
//
// The "sensor" group is the attribute set exposed on the per-slot sensor
// variant, "basic" additionally carries the display string used as the
// sensor state.
type Departure struct {
	Line        string `json:"line" groups:"basic,sensor"`
	Destination string `json:"destination" groups:"basic,sensor"`

	ScheduledTime time.Time `json:"scheduled_time" groups:"basic,sensor"`
	ExpectedTime  time.Time `json:"expected_time" groups:"basic,sensor"`

	TimeFormatted string `json:"time_formatted" groups:"basic,sensor"`
	MinutesUntil  int    `json:"minutes_until" groups:"basic,sensor"`

	TransportMode TransportMode `json:"transport_mode" groups:"basic,sensor"`

	RealTime     bool `json:"real_time" groups:"basic,sensor"`
	DelayMinutes int  `json:"delay_minutes" groups:"basic,sensor"`
	Canceled     bool `json:"canceled" groups:"basic,sensor"`

	Platform string `json:"platform" groups:"basic,sensor"`
	Agency   string `json:"agency" groups:"basic,sensor"`

	// Bookkeeping fields carried through for compatibility
	Direction string `json:"direction" groups:"basic,sensor"`
	State     string `json:"state" groups:"basic,sensor"`
	StopArea  string `json:"stop_area" groups:"basic,sensor"`

	Deviations []string `json:"deviations,omitempty" groups:"basic,sensor"`

	// Display is the upstream free-text time string ("2 min", "14:35") used
	// as the sensor state.
	Display string `json:"display" groups:"basic"`

	DirectionCode string `json:"direction_code" groups:"basic"`
}
