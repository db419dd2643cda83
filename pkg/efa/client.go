package efa

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
)

// DefaultEndpoint is the VRR departure monitor, which also answers queries
// for most other German EFA areas.
const DefaultEndpoint = "https://efa.vrr.de/vrr/XML_DM_REQUEST"

// Client queries an EFA XML_DM_REQUEST endpoint. The zero value is not
// usable; use NewClient.
type Client struct {
	Endpoint   string
	HTTPClient *http.Client
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{},
	}
}

// Query runs one blocking departure monitor request. There is no timeout,
// retry or caching here; the caller gets exactly one round trip.
func (c *Client) Query(request Request) (*Result, error) {
	form, err := request.form()
	if err != nil {
		return nil, err
	}

	endpoint := request.Endpoint
	if endpoint == "" {
		endpoint = c.Endpoint
	}

	log.Debug().
		Str("endpoint", endpoint).
		Str("place", request.Place).
		Str("name", request.Name).
		Msg("Querying EFA departure monitor")

	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("EFA endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var document itdRequest
	if err := xml.Unmarshal(body, &document); err != nil {
		return nil, fmt.Errorf("failed to decode EFA response: %w", err)
	}

	result := document.result()

	if e := log.Debug(); e.Enabled() {
		e.Int("lines", len(result.Lines)).
			Int("departures", len(result.Departures)).
			Msg(pretty.Sprint(result))
	}

	return result, nil
}

// form translates the request into the parameter set understood by
// XML_DM_REQUEST. Date and time validation happens here, so a malformed
// value fails the query rather than the argument parsing.
func (r Request) form() (url.Values, error) {
	locationType := r.Type
	if locationType == "" {
		locationType = LocationStop
	}

	form := url.Values{}
	form.Set("outputFormat", "XML")
	form.Set("language", "de")
	form.Set("mode", "direct")
	form.Set("stateless", "1")
	form.Set("useRealtime", "1")
	form.Set("locationServerActive", "1")
	form.Set("type_dm", string(locationType))
	form.Set("place_dm", r.Place)
	form.Set("name_dm", r.Name)

	if r.Date != "" {
		day, month, year, err := parseDate(r.Date)
		if err != nil {
			return nil, err
		}
		form.Set("itdDateDay", strconv.Itoa(day))
		form.Set("itdDateMonth", strconv.Itoa(month))
		if year != 0 {
			form.Set("itdDateYear", strconv.Itoa(year))
		}
	}

	if r.Time != "" {
		hour, minute, err := parseTime(r.Time)
		if err != nil {
			return nil, err
		}
		form.Set("itdTimeHour", strconv.Itoa(hour))
		form.Set("itdTimeMinute", strconv.Itoa(minute))
	}

	return form, nil
}

func parseDate(date string) (day int, month int, year int, err error) {
	parts := strings.Split(strings.TrimSuffix(date, "."), ".")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q, expected day.month[.year]", date)
	}

	day, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q, expected day.month[.year]", date)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q, expected day.month[.year]", date)
	}
	if len(parts) == 3 {
		year, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid date %q, expected day.month[.year]", date)
		}
	}

	return day, month, year, nil
}

func parseTime(clock string) (hour int, minute int, err error) {
	before, after, found := strings.Cut(clock, ":")
	if !found {
		return 0, 0, fmt.Errorf("invalid time %q, expected hh:mm", clock)
	}

	hour, err = strconv.Atoi(before)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, expected hh:mm", clock)
	}
	minute, err = strconv.Atoi(after)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, expected hh:mm", clock)
	}

	return hour, minute, nil
}
