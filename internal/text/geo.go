package text

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Geo is a WGS 84 coordinate pair.
type Geo struct {
	Latitude  float64
	Longitude float64
}

// FormatGeoURI renders the geo: URI form used by vCard GEO.
func FormatGeoURI(g Geo) string {
	return fmt.Sprintf("geo:%s,%s", formatCoord(g.Latitude), formatCoord(g.Longitude))
}

// FormatGeoPair renders the semicolon-separated form used by iCalendar GEO.
func FormatGeoPair(g Geo) string {
	return fmt.Sprintf("%s;%s", formatCoord(g.Latitude), formatCoord(g.Longitude))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// ParseGeo accepts the geo: URI form, the iCalendar lat;lng form, and a bare
// lat,lng pair. Out-of-range coordinates are treated as unparsable.
func ParseGeo(s string) mo.Option[Geo] {
	s = strings.TrimSpace(strings.TrimPrefix(s, "geo:"))
	// geo: URIs may carry ;u= or other parameters after the coordinates.
	if i := strings.IndexByte(s, ','); i >= 0 {
		if j := strings.IndexByte(s[i+1:], ';'); j >= 0 {
			s = s[:i+1+j]
		}
	}
	sep := ","
	if !strings.Contains(s, ",") {
		sep = ";"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return mo.None[Geo]()
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return mo.None[Geo]()
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return mo.None[Geo]()
	}
	return mo.Some(Geo{Latitude: lat, Longitude: lng})
}
