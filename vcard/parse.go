package vcard

import (
	"fmt"
	"strings"

	"github.com/cyp0633/libvdir/internal/contentline"
	"github.com/cyp0633/libvdir/internal/text"
)

// Parse reads a vCard document and returns every record it can recover,
// best-effort. Structural problems (a BEGIN without END, a record missing
// FN) drop only the affected record; an unparsable field drops only that
// field. Unknown property names are skipped silently so vendor extensions
// survive. Parse never fails for malformed wire content.
func Parse(content string, opts ...Option) ParseResult {
	cfg := newConfig(opts)
	records, errs := contentline.Scan(content, "VCARD")

	result := ParseResult{Errors: errs}
	for i, rec := range records {
		c, recErrs := parseContact(rec, i, cfg)
		result.Errors = append(result.Errors, recErrs...)
		if c != nil {
			result.Contacts = append(result.Contacts, *c)
		}
	}
	return result
}

func parseContact(rec contentline.Record, index int, cfg config) (*Contact, []string) {
	var c Contact
	var errs []string
	fieldErr := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf("contact %d: ", index)+fmt.Sprintf(format, args...))
	}

	for _, line := range rec.Lines {
		value := text.Unescape(line.Value)
		switch line.Name {
		case "VERSION":
			// Accepted as-is; 3.0 input parses the same way.
		case "FN":
			c.FormattedName = value
		case "N":
			parts := text.SplitStructured(line.Value)
			get := func(i int) string {
				if i < len(parts) {
					return parts[i]
				}
				return ""
			}
			c.FamilyName, c.GivenName, c.MiddleName = get(0), get(1), get(2)
			c.HonorificPrefix, c.HonorificSuffix = get(3), get(4)
		case "NICKNAME":
			c.Nickname = value
		case "GENDER":
			// Only the sex component is modeled; a free-text identity
			// component after ";" is dropped.
			sex, _, _ := strings.Cut(value, ";")
			c.Gender = Gender(strings.ToUpper(strings.TrimSpace(sex)))
		case "KIND":
			c.Kind = Kind(normType(value))
		case "BDAY":
			if t, ok := text.ParseDate(value).Get(); ok {
				c.Birthday = &t
			} else {
				fieldErr("invalid BDAY %q", value)
			}
		case "ANNIVERSARY":
			if t, ok := text.ParseDate(value).Get(); ok {
				c.Anniversary = &t
			} else {
				fieldErr("invalid ANNIVERSARY %q", value)
			}
		case "ORG":
			parts := text.SplitStructured(line.Value)
			c.Organization = parts[0]
			if len(parts) > 1 {
				c.OrgUnit = parts[1]
			}
		case "TITLE":
			c.Title = value
		case "ROLE":
			c.Role = value
		case "NOTE":
			c.Note = value
		case "URL":
			c.URL = line.Value
		case "GEO":
			if g, ok := text.ParseGeo(value).Get(); ok {
				c.Geo = &Geo{Latitude: g.Latitude, Longitude: g.Longitude}
			} else {
				fieldErr("invalid GEO %q", value)
			}
		case "TZ":
			c.TimeZone = value
		case "EMAIL":
			c.Emails = append(c.Emails, Email{
				Address: value,
				Type:    EmailType(normType(line.Param("TYPE"))),
				Primary: isPrimary(line),
			})
		case "TEL":
			c.Phones = append(c.Phones, Phone{
				Number:  value,
				Type:    TelType(normType(line.Param("TYPE"))),
				Primary: isPrimary(line),
			})
		case "ADR":
			c.Addresses = append(c.Addresses, parseAddress(line))
		case "IMPP":
			service, handle, found := strings.Cut(line.Value, ":")
			if !found || service == "" || handle == "" {
				fieldErr("invalid IMPP %q", line.Value)
				continue
			}
			c.IMs = append(c.IMs, IM{
				Service: IMService(normType(service)),
				Handle:  handle,
				Primary: isPrimary(line),
			})
		case "RELATED":
			c.Relations = append(c.Relations, Relation{
				Value:   value,
				Type:    RelationType(normType(line.Param("TYPE"))),
				Primary: isPrimary(line),
			})
		case "LANG":
			c.Languages = append(c.Languages, Language{
				Tag:     value,
				Type:    normType(line.Param("TYPE")),
				Primary: isPrimary(line),
			})
		case "KEY":
			c.Keys = append(c.Keys, Key{
				Value:   line.Value,
				Type:    normType(line.Param("TYPE")),
				Primary: isPrimary(line),
			})
		case "CALURI":
			c.CalendarURIs = append(c.CalendarURIs, CalendarURI{
				URI:     line.Value,
				Primary: isPrimary(line),
			})
		case "UID":
			c.UID = line.Value
		case "REV":
			if t, ok := text.ParseDateTime(value).Get(); ok {
				c.Revision = &t
			} else {
				fieldErr("invalid REV %q", value)
			}
		case "PRODID":
			c.ProdID = value
		default:
			cfg.logger.Debug("skipping unknown vCard property", "name", line.Name)
		}
	}

	if c.FormattedName == "" {
		errs = append(errs, fmt.Sprintf("contact %d: missing FN, record dropped", index))
		return nil, errs
	}
	return &c, errs
}

func parseAddress(line contentline.Line) Address {
	parts := text.SplitStructured(line.Value)
	get := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}
	// Wire components: po-box;extended;street;locality;region;postal;country.
	return Address{
		Street:     get(2),
		Locality:   get(3),
		Region:     get(4),
		PostalCode: get(5),
		Country:    get(6),
		Type:       AddressType(normType(line.Param("TYPE"))),
		Primary:    isPrimary(line),
	}
}

// isPrimary reports a PREF parameter with any value; PREF=1 is what the
// generator emits, but producers disagree on the ordinal.
func isPrimary(line contentline.Line) bool {
	return line.Param("PREF") != ""
}
