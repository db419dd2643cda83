package monitor

import (
	"errors"
	"strings"

	"github.com/efa-tools/efadm/pkg/efa"
	"github.com/efa-tools/efadm/pkg/util"
)

// ErrUsage is returned when the two required positional arguments are not
// both present.
var ErrUsage = errors.New("both a place and a stop name are required")

var locationPrefixes = []string{"address", "poi", "stop"}

// ResolveRequest turns the raw command line arguments into a request
// descriptor. The name argument may carry an "address:", "poi:" or "stop:"
// prefix selecting the location type; anything else is taken literally and
// the location type is left for the server default (stop).
//
// Date, time and endpoint are passed through unvalidated; a malformed value
// surfaces later as a request error, not here.
func ResolveRequest(place string, name string, date string, clock string, endpoint string) (efa.Request, error) {
	if place == "" || name == "" {
		return efa.Request{}, ErrUsage
	}

	request := efa.Request{
		Place:    place,
		Name:     name,
		Date:     date,
		Time:     clock,
		Endpoint: endpoint,
	}

	if prefix, rest, found := strings.Cut(name, ":"); found && util.ContainsString(locationPrefixes, prefix) {
		request.Type = efa.LocationType(prefix)
		request.Name = rest
	}

	return request, nil
}
