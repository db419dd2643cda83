package efa

import (
	"fmt"
	"strconv"
	"strings"
)

// EFA reports a delay of -9999 for departures that will not happen at all.
const cancelledDelayMarker = -9999

type itdRequest struct {
	DepartureMonitor itdDepartureMonitorRequest `xml:"itdDepartureMonitorRequest"`
}

type itdDepartureMonitorRequest struct {
	Odv           itdOdv          `xml:"itdOdv"`
	ServingLines  itdServingLines `xml:"itdServingLines"`
	DepartureList itdDepartureList `xml:"itdDepartureList"`
}

type itdOdv struct {
	Place itdOdvPlace `xml:"itdOdvPlace"`
	Name  itdOdvName  `xml:"itdOdvName"`
}

type itdOdvPlace struct {
	State string `xml:"state,attr"`
}

type itdOdvName struct {
	State string   `xml:"state,attr"`
	Elems []string `xml:"odvNameElem"`
}

type itdServingLines struct {
	Lines []itdServingLine `xml:"itdServingLine"`
}

type itdServingLine struct {
	Number    string     `xml:"number,attr"`
	Direction string     `xml:"direction,attr"`
	NoTrain   itdNoTrain `xml:"itdNoTrain"`
	RouteDesc string     `xml:"itdRouteDescText"`
}

type itdNoTrain struct {
	Name  string `xml:"name,attr"`
	Delay string `xml:"delay,attr"`
}

type itdDepartureList struct {
	Departures []itdDeparture `xml:"itdDeparture"`
}

type itdDeparture struct {
	Platform     string         `xml:"platform,attr"`
	PlatformName string         `xml:"platformName,attr"`
	Countdown    string         `xml:"countdown,attr"`
	ServingLine  itdServingLine `xml:"itdServingLine"`
	DateTime     itdDateTime    `xml:"itdDateTime"`
	RTDateTime   *itdDateTime   `xml:"itdRTDateTime"`
	InfoTexts    []string       `xml:"itdInfoLinkList>itdBannerInfoList>infoLink>infoLinkText"`
}

type itdDateTime struct {
	Time itdTime `xml:"itdTime"`
}

type itdTime struct {
	Hour   int `xml:"hour,attr"`
	Minute int `xml:"minute,attr"`
}

func (document *itdRequest) result() *Result {
	dm := document.DepartureMonitor

	if message := dm.Odv.errorMessage(); message != "" {
		return &Result{ErrorMessage: message}
	}

	result := &Result{}

	for _, line := range dm.ServingLines.Lines {
		result.Lines = append(result.Lines, Line{
			Type:      line.NoTrain.Name,
			Name:      line.Number,
			Direction: line.Direction,
			Route:     line.RouteDesc,
		})
	}

	for _, departure := range dm.DepartureList.Departures {
		result.Departures = append(result.Departures, departure.resolve())
	}

	return result
}

// errorMessage inspects the odv name resolution state. Anything other than
// "identified" means the server could not settle on a single location.
func (odv itdOdv) errorMessage() string {
	switch odv.Name.State {
	case "", "identified":
	case "list":
		return fmt.Sprintf("ambiguous name, candidates are: %s", strings.Join(odv.Name.Elems, ", "))
	default:
		return fmt.Sprintf("place/name combination is invalid (%s)", odv.Name.State)
	}

	switch odv.Place.State {
	case "", "identified":
	case "list":
		return "ambiguous place"
	default:
		return fmt.Sprintf("place is invalid (%s)", odv.Place.State)
	}

	return ""
}

func (d itdDeparture) resolve() Departure {
	delay, _ := strconv.Atoi(d.ServingLine.NoTrain.Delay)
	cancelled := delay == cancelledDelayMarker
	if cancelled {
		delay = 0
	}

	countdown, _ := strconv.Atoi(d.Countdown)

	clock := d.DateTime.Time
	if d.RTDateTime != nil {
		clock = d.RTDateTime.Time
	}

	platform := d.Platform
	if platform == "" {
		platform = trimPlatformName(d.PlatformName)
	}

	return Departure{
		Time:           fmt.Sprintf("%02d:%02d", clock.Hour, clock.Minute),
		Platform:       platform,
		PlatformIsRail: strings.HasPrefix(d.PlatformName, "Gleis"),
		Line:           d.ServingLine.Number,
		Destination:    d.ServingLine.Direction,
		Info:           strings.Join(d.InfoTexts, "\n"),
		Delay:          delay,
		Cancelled:      cancelled,
		Countdown:      countdown,
	}
}

// trimPlatformName strips the "Gleis" / "Bstg." label so the bare platform
// number remains.
func trimPlatformName(name string) string {
	name = strings.TrimPrefix(name, "Gleis")
	name = strings.TrimPrefix(name, "Bstg.")

	return strings.TrimSpace(name)
}
