package utils

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Coordinate parse failures keep "off-range" and "unparseable" apart so
// callers can report the right cause. The offending input is echoed in the
// wrapping error.
var (
	ErrLatitudeRange    = stderrors.New("latitude must be in range [-90, 90]")
	ErrLongitudeRange   = stderrors.New("longitude must be in range [-180, 180]")
	ErrCoordinateFormat = stderrors.New("unrecognized coordinate format")
)

var (
	latLonDecRe = regexp.MustCompile(
		`^([+-]?\d+(?:\.\d+)?)[º°]?\s*([NS])?\s*[,/]?\s*([+-]?\d+(?:\.\d+)?)[º°]?\s*([EW])?$`,
	)
	latLonSymRe = regexp.MustCompile(
		`^([+-]?\d+)[º°]?\s*(?:(\d+)['′])?\s*(?:(\d+)["″])?\s*([NS])?\s*[,/]?\s*` +
			`([+-]?\d+)[º°]?\s*(?:(\d+)['′])?\s*(?:(\d+)["″])?\s*([EW])?$`,
	)
)

var (
	sixty        = decimal.NewFromInt(60)
	thirtySixHun = decimal.NewFromInt(3600)
	maxLat       = decimal.NewFromInt(90)
	maxLon       = decimal.NewFromInt(180)
)

// ParseLatLon parses a coordinate pair in decimal ("12.34, 56.78"),
// hemisphere-suffixed ("12.34N 56.78E") or DMS ("12°20′24″N 56°46′48″E")
// form. Results are rounded to the 4 decimal places the schema stores.
func ParseLatLon(s string) (decimal.Decimal, decimal.Decimal, error) {
	var latD, latM, latS, latDir string
	var lonD, lonM, lonS, lonDir string

	trimmed := strings.TrimSpace(s)
	if m := latLonDecRe.FindStringSubmatch(trimmed); m != nil {
		latD, latDir, lonD, lonDir = m[1], m[2], m[3], m[4]
	} else if m := latLonSymRe.FindStringSubmatch(trimmed); m != nil {
		latD, latM, latS, latDir = m[1], m[2], m[3], m[4]
		lonD, lonM, lonS, lonDir = m[5], m[6], m[7], m[8]
	} else {
		return decimal.Zero, decimal.Zero, coordErr(s, ErrCoordinateFormat)
	}

	lat, err := makeDecimal(latD, latM, latS, latDir == "S")
	if err != nil {
		return decimal.Zero, decimal.Zero, coordErr(s, err)
	}
	if lat.Abs().GreaterThan(maxLat) {
		return decimal.Zero, decimal.Zero, coordErr(s, ErrLatitudeRange)
	}

	lon, err := makeDecimal(lonD, lonM, lonS, lonDir == "W")
	if err != nil {
		return decimal.Zero, decimal.Zero, coordErr(s, err)
	}
	if lon.Abs().GreaterThan(maxLon) {
		return decimal.Zero, decimal.Zero, coordErr(s, ErrLongitudeRange)
	}

	return lat.Round(4), lon.Round(4), nil
}

func makeDecimal(degs, mins, secs string, negative bool) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(degs)
	if err != nil {
		return decimal.Zero, ErrCoordinateFormat
	}

	m := decimal.Zero
	if mins != "" {
		if m, err = decimal.NewFromString(mins); err != nil {
			return decimal.Zero, ErrCoordinateFormat
		}
	}
	sec := decimal.Zero
	if secs != "" {
		if sec, err = decimal.NewFromString(secs); err != nil {
			return decimal.Zero, ErrCoordinateFormat
		}
	}

	if m.GreaterThanOrEqual(sixty) || sec.GreaterThanOrEqual(sixty) {
		return decimal.Zero, ErrCoordinateFormat
	}

	d = d.Add(m.Div(sixty)).Add(sec.Div(thirtySixHun))
	if negative {
		d = d.Neg()
	}
	return d, nil
}

func coordErr(input string, cause error) error {
	return fmt.Errorf("invalid coordinate %q: %w", input, cause)
}
