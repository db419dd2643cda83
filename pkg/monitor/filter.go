package monitor

import (
	"github.com/efa-tools/efadm/pkg/efa"
	"github.com/efa-tools/efadm/pkg/util"
	"golang.org/x/exp/slices"
)

// StringSet is an exact-match membership filter. A nil or empty set matches
// everything.
type StringSet map[string]struct{}

// NewStringSet builds a set from repeated flag values, each of which may be
// a comma separated list.
func NewStringSet(values []string) StringSet {
	flattened := util.SplitCommaLists(values)
	if len(flattened) == 0 {
		return nil
	}

	set := make(StringSet, len(flattened))
	for _, value := range flattened {
		set[value] = struct{}{}
	}

	return set
}

func (s StringSet) Matches(value string) bool {
	if len(s) == 0 {
		return true
	}

	_, ok := s[value]
	return ok
}

// EffectivePlatform is the platform as displayed and as matched against
// platform filters: national rail platforms carry a " (DB)" suffix, so a
// filter wanting to match them must spell that suffix out too.
func EffectivePlatform(departure efa.Departure) string {
	if departure.PlatformIsRail {
		return departure.Platform + " (DB)"
	}

	return departure.Platform
}

// FilterLines keeps the lines whose name is in the filter set, preserving
// server order.
func FilterLines(lines []efa.Line, lineFilter StringSet) []efa.Line {
	filtered := slices.Clone(lines)

	util.InPlaceFilter(&filtered, func(line efa.Line) bool {
		return lineFilter.Matches(line.Name)
	})

	return filtered
}

// FilterDepartures applies the line and platform filter sets, preserving
// server order. With dropCancelled set, cancelled departures are removed
// entirely; the relative display mode uses this since a countdown to a
// departure that will not happen is meaningless.
func FilterDepartures(departures []efa.Departure, lineFilter StringSet, platformFilter StringSet, dropCancelled bool) []efa.Departure {
	filtered := slices.Clone(departures)

	util.InPlaceFilter(&filtered, func(departure efa.Departure) bool {
		if dropCancelled && departure.Cancelled {
			return false
		}

		return lineFilter.Matches(departure.Line) && platformFilter.Matches(EffectivePlatform(departure))
	})

	return filtered
}
