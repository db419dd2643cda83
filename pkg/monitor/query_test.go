package monitor

import (
	"testing"

	"github.com/efa-tools/efadm/pkg/efa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRequestPrefixes(t *testing.T) {
	tests := []struct {
		name     string
		wantType efa.LocationType
		wantName string
	}{
		{name: "Hauptbahnhof", wantType: "", wantName: "Hauptbahnhof"},
		{name: "poi:Hauptbahnhof", wantType: efa.LocationPOI, wantName: "Hauptbahnhof"},
		{name: "address:Klosterstr. 23", wantType: efa.LocationAddress, wantName: "Klosterstr. 23"},
		{name: "stop:Heinrichstr.", wantType: efa.LocationStop, wantName: "Heinrichstr."},
		// unknown prefixes are part of the name, not a type selector
		{name: "foo:bar", wantType: "", wantName: "foo:bar"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request, err := ResolveRequest("Düsseldorf", test.name, "", "", "")
			require.NoError(t, err)

			assert.Equal(t, "Düsseldorf", request.Place)
			assert.Equal(t, test.wantType, request.Type)
			assert.Equal(t, test.wantName, request.Name)
		})
	}
}

func TestResolveRequestPassesOptionsThrough(t *testing.T) {
	request, err := ResolveRequest("Essen", "Rüttenscheider Stern", "3.5.2024", "09:40", "https://efa.example/XML_DM_REQUEST")
	require.NoError(t, err)

	// date and time are deliberately unvalidated here
	assert.Equal(t, "3.5.2024", request.Date)
	assert.Equal(t, "09:40", request.Time)
	assert.Equal(t, "https://efa.example/XML_DM_REQUEST", request.Endpoint)
}

func TestResolveRequestRequiresPlaceAndName(t *testing.T) {
	_, err := ResolveRequest("", "Hauptbahnhof", "", "", "")
	assert.ErrorIs(t, err, ErrUsage)

	_, err = ResolveRequest("Düsseldorf", "", "", "", "")
	assert.ErrorIs(t, err, ErrUsage)
}
