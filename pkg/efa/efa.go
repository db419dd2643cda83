// Package efa is a client for the EFA (Elektronische Fahrplanauskunft)
// departure monitor interface as exposed by transit authorities like the VRR.
package efa

// LocationType selects how the EFA server interprets the name part of a
// query.
type LocationType string

const (
	LocationStop    LocationType = "stop"
	LocationAddress LocationType = "address"
	LocationPOI     LocationType = "poi"
)

// Request describes a single departure monitor query. Date and Time are
// passed on in the loose formats the EFA servers accept ("d.m[.y]" and
// "hh:mm"); an empty value means "now". An empty Endpoint falls back to the
// client default.
type Request struct {
	Place string
	Name  string
	Type  LocationType

	Date string
	Time string

	Endpoint string
}

// Line is one line serving the queried location.
type Line struct {
	Type      string
	Name      string
	Direction string
	Route     string
}

// Departure is a single upcoming departure with realtime data already
// resolved.
type Departure struct {
	// Time is the display time (HH:MM), realtime when the server reported
	// one, scheduled otherwise.
	Time string

	Platform string
	// PlatformIsRail is set when the platform is a "Gleis", i.e. belongs to
	// the national rail operator rather than the local authority.
	PlatformIsRail bool

	Line        string
	Destination string

	// Info carries free-text service notices, possibly multiple lines
	// joined with "\n".
	Info string

	// Delay in minutes, 0 when on time.
	Delay     int
	Cancelled bool

	// Countdown is the number of minutes until departure.
	Countdown int
}

// Result is the outcome of one query. A non-empty ErrorMessage means the
// server could not resolve the requested location; Departures and Lines are
// in server order.
type Result struct {
	ErrorMessage string

	Lines      []Line
	Departures []Departure
}
