package monitor

import (
	"fmt"

	"github.com/efa-tools/efadm/pkg/efa"
)

// DisplayRow is the shape-agnostic input of the table renderer: four
// primary columns plus an optional free-text annotation block printed above
// the row.
type DisplayRow struct {
	Fields     [4]string
	Annotation string
}

// DepartureRows projects departures onto display rows. In relative mode the
// time column is the countdown ("%2d min"); in absolute mode it is the
// clock time, annotated with " CANCELED" or the delay.
func DepartureRows(departures []efa.Departure, relative bool) []DisplayRow {
	rows := make([]DisplayRow, 0, len(departures))

	for _, departure := range departures {
		rows = append(rows, DisplayRow{
			Fields: [4]string{
				departureTime(departure, relative),
				EffectivePlatform(departure),
				departure.Line,
				departure.Destination,
			},
			Annotation: departure.Info,
		})
	}

	return rows
}

func departureTime(departure efa.Departure, relative bool) string {
	if relative {
		return fmt.Sprintf("%2d min", departure.Countdown)
	}

	switch {
	case departure.Cancelled:
		return departure.Time + " CANCELED"
	case departure.Delay > 0:
		return fmt.Sprintf("%s (+%d)", departure.Time, departure.Delay)
	}

	return departure.Time
}

// LineRows projects serving lines onto display rows. Lines carry no
// annotation.
func LineRows(lines []efa.Line) []DisplayRow {
	rows := make([]DisplayRow, 0, len(lines))

	for _, line := range lines {
		rows = append(rows, DisplayRow{
			Fields: [4]string{line.Type, line.Name, line.Direction, line.Route},
		})
	}

	return rows
}
