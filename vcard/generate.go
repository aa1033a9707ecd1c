package vcard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cyp0633/libvdir/idgen"
	"github.com/cyp0633/libvdir/internal/contentline"
	"github.com/cyp0633/libvdir/internal/text"
)

// Generate renders contacts as a vCard 4.0 document, records concatenated in
// input order. A contact with no FormattedName cannot be represented and is
// skipped; the returned error joins one error per skipped record while the
// returned text still contains every record that generated cleanly. An empty
// input yields an empty string and nil error.
func Generate(contacts []Contact, opts ...Option) (string, error) {
	cfg := newConfig(opts)
	var b strings.Builder
	var errs []error
	for i, c := range contacts {
		out, err := generateOne(c, cfg)
		if err != nil {
			errs = append(errs, fmt.Errorf("contact %d: %w", i, err))
			continue
		}
		b.WriteString(out)
	}
	return b.String(), errors.Join(errs...)
}

// GenerateOne renders a single contact.
func GenerateOne(c Contact, opts ...Option) (string, error) {
	return generateOne(c, newConfig(opts))
}

func generateOne(c Contact, cfg config) (string, error) {
	if c.FormattedName == "" {
		return "", errors.New("missing formatted name (FN)")
	}

	var w contentline.Writer
	w.Line("BEGIN", nil, "VCARD")
	w.Line("VERSION", nil, "4.0")
	w.Line("FN", nil, text.Escape(c.FormattedName))

	if c.FamilyName != "" || c.GivenName != "" || c.MiddleName != "" ||
		c.HonorificPrefix != "" || c.HonorificSuffix != "" {
		w.Line("N", nil, text.JoinStructured(
			c.FamilyName, c.GivenName, c.MiddleName, c.HonorificPrefix, c.HonorificSuffix))
	}
	w.Text("NICKNAME", c.Nickname)
	w.Text("GENDER", string(c.Gender))
	w.Text("KIND", string(c.Kind))
	if c.Birthday != nil {
		w.Line("BDAY", nil, text.FormatDate(*c.Birthday))
	}
	if c.Anniversary != nil {
		w.Line("ANNIVERSARY", nil, text.FormatDate(*c.Anniversary))
	}
	if c.Organization != "" {
		w.Line("ORG", nil, text.JoinStructured(c.Organization, c.OrgUnit))
	}
	w.Text("TITLE", c.Title)
	w.Text("ROLE", c.Role)
	w.Text("NOTE", c.Note)
	if c.URL != "" {
		w.Line("URL", nil, c.URL)
	}
	if c.Geo != nil {
		w.Line("GEO", nil, text.FormatGeoURI(text.Geo{Latitude: c.Geo.Latitude, Longitude: c.Geo.Longitude}))
	}
	w.Text("TZ", c.TimeZone)

	prefEmail := firstPrimary(c.Emails, func(e Email) bool { return e.Primary })
	for i, e := range c.Emails {
		w.Line("EMAIL", entryParams(string(e.Type), i == prefEmail), text.Escape(e.Address))
	}
	prefPhone := firstPrimary(c.Phones, func(p Phone) bool { return p.Primary })
	for i, p := range c.Phones {
		w.Line("TEL", entryParams(string(p.Type), i == prefPhone), text.Escape(p.Number))
	}
	prefAddr := firstPrimary(c.Addresses, func(a Address) bool { return a.Primary })
	for i, a := range c.Addresses {
		value := text.JoinStructured("", "", a.Street, a.Locality, a.Region, a.PostalCode, a.Country)
		if value == "" {
			continue
		}
		w.Line("ADR", entryParams(string(a.Type), i == prefAddr), value)
	}
	prefIM := firstPrimary(c.IMs, func(im IM) bool { return im.Primary })
	for i, im := range c.IMs {
		if im.Service == "" || im.Handle == "" {
			continue
		}
		w.Line("IMPP", entryParams("", i == prefIM), fmt.Sprintf("%s:%s", im.Service, im.Handle))
	}
	prefRel := firstPrimary(c.Relations, func(r Relation) bool { return r.Primary })
	for i, r := range c.Relations {
		w.Line("RELATED", entryParams(string(r.Type), i == prefRel), text.Escape(r.Value))
	}
	prefLang := firstPrimary(c.Languages, func(l Language) bool { return l.Primary })
	for i, l := range c.Languages {
		w.Line("LANG", entryParams(l.Type, i == prefLang), l.Tag)
	}
	prefKey := firstPrimary(c.Keys, func(k Key) bool { return k.Primary })
	for i, k := range c.Keys {
		w.Line("KEY", entryParams(k.Type, i == prefKey), k.Value)
	}
	prefCal := firstPrimary(c.CalendarURIs, func(u CalendarURI) bool { return u.Primary })
	for i, u := range c.CalendarURIs {
		w.Line("CALURI", entryParams("", i == prefCal), u.URI)
	}

	uid := c.UID
	if uid == "" {
		uid = idgen.URN(cfg.ids.NewID())
	}
	w.Line("UID", nil, uid)
	w.Line("REV", nil, text.FormatTimestamp(cfg.now()))
	if cfg.prodID != "" {
		w.Line("PRODID", nil, text.Escape(cfg.prodID))
	} else if c.ProdID != "" {
		w.Line("PRODID", nil, text.Escape(c.ProdID))
	}
	w.Line("END", nil, "VCARD")
	return w.String(), nil
}

// entryParams builds the TYPE/PREF parameter list for a multi-value entry.
// Only the first entry flagged primary within its group gets PREF=1; the
// generator demotes any further primaries rather than emitting duplicates.
func entryParams(typ string, pref bool) []contentline.Param {
	var params []contentline.Param
	if typ != "" {
		params = append(params, contentline.Param{Name: "TYPE", Value: typ})
	}
	if pref {
		params = append(params, contentline.Param{Name: "PREF", Value: "1"})
	}
	return params
}

// firstPrimary returns the index of the first entry flagged primary, or -1.
func firstPrimary[T any](entries []T, primary func(T) bool) int {
	for i, e := range entries {
		if primary(e) {
			return i
		}
	}
	return -1
}
