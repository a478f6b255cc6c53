package sl

// Shapes returned by the SL Transport API (https://transport.integration.sl.se/v1).
// These records are read-only inputs; nothing downstream mutates them.

type Site struct {
	ID   int    `json:"id"`
	GID  int64  `json:"gid"`
	Name string `json:"name"`

	Abbreviation string   `json:"abbreviation,omitempty"`
	Aliases      []string `json:"alias,omitempty"`

	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Line struct {
	ID                   int    `json:"id"`
	Designation          string `json:"designation"`
	TransportAuthorityID int    `json:"transport_authority_id"`
	TransportMode        string `json:"transport_mode"`
	GroupOfLines         string `json:"group_of_lines,omitempty"`
}

type Journey struct {
	ID              int64  `json:"id"`
	State           string `json:"state"`
	PredictionState string `json:"prediction_state"`
}

type StopArea struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type StopPoint struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation,omitempty"`
}

type Departure struct {
	Destination   string `json:"destination"`
	DirectionCode int    `json:"direction_code"`
	Direction     string `json:"direction"`

	// State comes straight from the API (EXPECTED, ATSTOP, NORMALPROGRESS,
	// CANCELLED, ...). It is passed through opaquely.
	State string `json:"state"`

	Display   string `json:"display"`
	Scheduled string `json:"scheduled"`
	Expected  string `json:"expected,omitempty"`

	Journey   *Journey   `json:"journey,omitempty"`
	StopArea  *StopArea  `json:"stop_area,omitempty"`
	StopPoint *StopPoint `json:"stop_point,omitempty"`
	Line      *Line      `json:"line,omitempty"`

	Deviations []DepartureDeviation `json:"deviations,omitempty"`
}

type DepartureDeviation struct {
	ImportanceLevel int    `json:"importance_level"`
	ConsequenceCode string `json:"consequence,omitempty"`
	Message         string `json:"message"`
}

type StopDeviation struct {
	ID              int64  `json:"id"`
	ImportanceLevel int    `json:"importance_level"`
	Message         string `json:"message"`

	Scope *DeviationScope `json:"scope,omitempty"`
}

type DeviationScope struct {
	StopAreas  []StopArea  `json:"stop_areas,omitempty"`
	StopPoints []StopPoint `json:"stop_points,omitempty"`
	Lines      []Line      `json:"lines,omitempty"`
}

type DeparturesResponse struct {
	Departures     []Departure     `json:"departures"`
	StopDeviations []StopDeviation `json:"stop_deviations,omitempty"`
}
