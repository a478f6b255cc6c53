package board

type TransportMode string

//goland:noinspection GoUnusedConst
const (
	TransportModeBus   TransportMode = "BUS"
	TransportModeTrain               = "TRAIN"
	TransportModeMetro               = "METRO"
	TransportModeTram                = "TRAM"
	TransportModeShip                = "SHIP"
	TransportModeFerry               = "FERRY"
	TransportModeTaxi                = "TAXI"
)

// TransportModeLabels maps the API mode identifiers to display labels.
var TransportModeLabels = map[TransportMode]string{
	TransportModeBus:   "Bus",
	TransportModeTrain: "Train (Pendeltåg)",
	TransportModeMetro: "Metro (Tunnelbana)",
	TransportModeTram:  "Tram (Spårvagn)",
	TransportModeShip:  "Ship",
	TransportModeFerry: "Ferry",
}
