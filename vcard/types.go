// Package vcard implements the vCard 4.0 (RFC 6350) text codec: a generator
// producing interoperable, folded, CRLF-terminated output and a tolerant
// best-effort parser that never fails an entire document over one bad record
// or field.
//
// The property surface is the curated set used for personal contact
// management: name, contact methods, organization, geo, security and
// calendar-linkage properties. Unknown properties are skipped on parse,
// never treated as errors.
package vcard

import "time"

// Contact is the contact record handled by both the generator and the
// parser. All fields are optional except FormattedName, which the format
// mandates. Contacts are plain value objects; the codec keeps no reference
// to them after a call returns.
type Contact struct {
	// FormattedName is the FN property, required for generation.
	FormattedName string

	// Structured name components (N property).
	FamilyName      string
	GivenName       string
	MiddleName      string
	HonorificPrefix string
	HonorificSuffix string

	Nickname    string
	Gender      Gender
	Kind        Kind
	Birthday    *time.Time
	Anniversary *time.Time

	Organization string
	OrgUnit      string
	Title        string
	Role         string

	Note     string
	URL      string
	Geo      *Geo
	TimeZone string

	Emails       []Email
	Phones       []Phone
	Addresses    []Address
	IMs          []IM
	Relations    []Relation
	Languages    []Language
	Keys         []Key
	CalendarURIs []CalendarURI

	// Wire metadata. UID is generated when absent; Revision and ProdID are
	// stamped by the generator and recovered by the parser.
	UID      string
	Revision *time.Time
	ProdID   string
}

// Geo is a WGS 84 coordinate pair carried by the GEO property.
type Geo struct {
	Latitude  float64
	Longitude float64
}

// Email is one EMAIL property entry.
type Email struct {
	Address string
	Type    EmailType
	Primary bool
}

// Phone is one TEL property entry.
type Phone struct {
	Number  string
	Type    TelType
	Primary bool
}

// Address is one ADR property entry. The post-office-box and extended
// components of the wire value are not modeled and are emitted empty.
type Address struct {
	Street     string
	Locality   string
	Region     string
	PostalCode string
	Country    string
	Type       AddressType
	Primary    bool
}

// IM is one IMPP property entry; Service becomes the URI scheme.
type IM struct {
	Service IMService
	Handle  string
	Primary bool
}

// Relation is one RELATED property entry.
type Relation struct {
	Value   string
	Type    RelationType
	Primary bool
}

// Language is one LANG property entry with a BCP 47 tag.
type Language struct {
	Tag     string
	Type    string
	Primary bool
}

// Key is one KEY property entry (URI or key data).
type Key struct {
	Value   string
	Type    string
	Primary bool
}

// CalendarURI is one CALURI property entry.
type CalendarURI struct {
	URI     string
	Primary bool
}

// ParseResult is the outcome of parsing a vCard document: the records that
// could be recovered plus a human-readable error list in document order.
type ParseResult struct {
	Contacts []Contact
	Errors   []string
}
