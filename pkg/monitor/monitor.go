// Package monitor holds the query resolution, filtering and rendering
// pipeline between the command line and the EFA client.
package monitor

import (
	"io"

	"github.com/efa-tools/efadm/pkg/efa"
	"github.com/rs/zerolog/log"
)

// Service is the narrow slice of the EFA client the monitor depends on.
type Service interface {
	Query(request efa.Request) (*efa.Result, error)
}

// RequestError wraps a failure reported by (or while talking to) the EFA
// service. The message is surfaced verbatim.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return "Request error: " + e.Message
}

// Options is one fully resolved invocation.
type Options struct {
	Place string
	Name  string

	Date       string
	Time       string
	ServiceURL string

	// Raw repeatable flag values; comma lists are flattened here.
	LineFilters     []string
	PlatformFilters []string

	ListLines bool
	Relative  bool
}

// Run performs a single query and writes the resulting table to out. Rows
// keep the order the service returned them in.
func Run(service Service, opts Options, out io.Writer) error {
	request, err := ResolveRequest(opts.Place, opts.Name, opts.Date, opts.Time, opts.ServiceURL)
	if err != nil {
		return err
	}

	result, err := service.Query(request)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	if result.ErrorMessage != "" {
		return &RequestError{Message: result.ErrorMessage}
	}

	lineFilter := NewStringSet(opts.LineFilters)

	if opts.ListLines {
		lines := FilterLines(result.Lines, lineFilter)
		log.Debug().Int("total", len(result.Lines)).Int("kept", len(lines)).Msg("Filtered serving lines")

		return RenderTable(out, LineRows(lines))
	}

	platformFilter := NewStringSet(opts.PlatformFilters)

	departures := FilterDepartures(result.Departures, lineFilter, platformFilter, opts.Relative)
	log.Debug().Int("total", len(result.Departures)).Int("kept", len(departures)).Msg("Filtered departures")

	return RenderTable(out, DepartureRows(departures, opts.Relative))
}
