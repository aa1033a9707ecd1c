package vcard

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
	"github.com/cyp0633/libvdir/idgen"
	"github.com/cyp0633/libvdir/internal/text"
)

// XCardNamespace is the RFC 6351 vcard-4.0 XML namespace.
const XCardNamespace = "urn:ietf:params:xml:ns:vcard-4.0"

// GenerateXML renders contacts as an xCard (RFC 6351) document covering the
// same property surface as Generate. Like Generate, contacts with no
// FormattedName are skipped and reported through the joined error. Export
// only; parsing xCard input is out of scope.
func GenerateXML(contacts []Contact, opts ...Option) (string, error) {
	cfg := newConfig(opts)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("vcards")
	root.CreateAttr("xmlns", XCardNamespace)

	var errs []error
	for i, c := range contacts {
		if c.FormattedName == "" {
			errs = append(errs, fmt.Errorf("contact %d: missing formatted name (FN)", i))
			continue
		}
		appendXCard(root, c, cfg)
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", err
	}
	return out, errors.Join(errs...)
}

func appendXCard(root *etree.Element, c Contact, cfg config) {
	card := root.CreateElement("vcard")

	textProp(card, "fn", c.FormattedName)

	if c.FamilyName != "" || c.GivenName != "" || c.MiddleName != "" ||
		c.HonorificPrefix != "" || c.HonorificSuffix != "" {
		n := card.CreateElement("n")
		n.CreateElement("surname").SetText(c.FamilyName)
		n.CreateElement("given").SetText(c.GivenName)
		n.CreateElement("additional").SetText(c.MiddleName)
		n.CreateElement("prefix").SetText(c.HonorificPrefix)
		n.CreateElement("suffix").SetText(c.HonorificSuffix)
	}
	textProp(card, "nickname", c.Nickname)
	if c.Gender != "" {
		card.CreateElement("gender").CreateElement("sex").SetText(string(c.Gender))
	}
	textProp(card, "kind", string(c.Kind))
	if c.Birthday != nil {
		card.CreateElement("bday").CreateElement("date").SetText(text.FormatDate(*c.Birthday))
	}
	if c.Anniversary != nil {
		card.CreateElement("anniversary").CreateElement("date").SetText(text.FormatDate(*c.Anniversary))
	}
	if c.Organization != "" {
		org := card.CreateElement("org")
		org.CreateElement("text").SetText(c.Organization)
		if c.OrgUnit != "" {
			org.CreateElement("text").SetText(c.OrgUnit)
		}
	}
	textProp(card, "title", c.Title)
	textProp(card, "role", c.Role)
	textProp(card, "note", c.Note)
	uriProp(card, "url", c.URL)
	if c.Geo != nil {
		uriProp(card, "geo", text.FormatGeoURI(text.Geo{Latitude: c.Geo.Latitude, Longitude: c.Geo.Longitude}))
	}
	textProp(card, "tz", c.TimeZone)

	prefEmail := firstPrimary(c.Emails, func(e Email) bool { return e.Primary })
	for i, e := range c.Emails {
		el := card.CreateElement("email")
		entryParamsXML(el, string(e.Type), i == prefEmail)
		el.CreateElement("text").SetText(e.Address)
	}
	prefPhone := firstPrimary(c.Phones, func(p Phone) bool { return p.Primary })
	for i, p := range c.Phones {
		el := card.CreateElement("tel")
		entryParamsXML(el, string(p.Type), i == prefPhone)
		el.CreateElement("text").SetText(p.Number)
	}
	prefAddr := firstPrimary(c.Addresses, func(a Address) bool { return a.Primary })
	for i, a := range c.Addresses {
		el := card.CreateElement("adr")
		entryParamsXML(el, string(a.Type), i == prefAddr)
		el.CreateElement("pobox")
		el.CreateElement("ext")
		el.CreateElement("street").SetText(a.Street)
		el.CreateElement("locality").SetText(a.Locality)
		el.CreateElement("region").SetText(a.Region)
		el.CreateElement("code").SetText(a.PostalCode)
		el.CreateElement("country").SetText(a.Country)
	}
	prefIM := firstPrimary(c.IMs, func(im IM) bool { return im.Primary })
	for i, im := range c.IMs {
		if im.Service == "" || im.Handle == "" {
			continue
		}
		el := card.CreateElement("impp")
		entryParamsXML(el, "", i == prefIM)
		el.CreateElement("uri").SetText(fmt.Sprintf("%s:%s", im.Service, im.Handle))
	}
	prefRel := firstPrimary(c.Relations, func(r Relation) bool { return r.Primary })
	for i, r := range c.Relations {
		el := card.CreateElement("related")
		entryParamsXML(el, string(r.Type), i == prefRel)
		el.CreateElement("text").SetText(r.Value)
	}
	prefLang := firstPrimary(c.Languages, func(l Language) bool { return l.Primary })
	for i, l := range c.Languages {
		el := card.CreateElement("lang")
		entryParamsXML(el, l.Type, i == prefLang)
		el.CreateElement("language-tag").SetText(l.Tag)
	}
	prefKey := firstPrimary(c.Keys, func(k Key) bool { return k.Primary })
	for i, k := range c.Keys {
		el := card.CreateElement("key")
		entryParamsXML(el, k.Type, i == prefKey)
		el.CreateElement("uri").SetText(k.Value)
	}
	prefCal := firstPrimary(c.CalendarURIs, func(u CalendarURI) bool { return u.Primary })
	for i, u := range c.CalendarURIs {
		el := card.CreateElement("caluri")
		entryParamsXML(el, "", i == prefCal)
		el.CreateElement("uri").SetText(u.URI)
	}

	uid := c.UID
	if uid == "" {
		uid = idgen.URN(cfg.ids.NewID())
	}
	uriProp(card, "uid", uid)
	card.CreateElement("rev").CreateElement("timestamp").SetText(text.FormatTimestamp(cfg.now()))
	if cfg.prodID != "" {
		textProp(card, "prodid", cfg.prodID)
	} else {
		textProp(card, "prodid", c.ProdID)
	}
}

func textProp(parent *etree.Element, name, value string) {
	if value == "" {
		return
	}
	parent.CreateElement(name).CreateElement("text").SetText(value)
}

func uriProp(parent *etree.Element, name, value string) {
	if value == "" {
		return
	}
	parent.CreateElement(name).CreateElement("uri").SetText(value)
}

// entryParamsXML mirrors entryParams for the XML rendition.
func entryParamsXML(el *etree.Element, typ string, pref bool) {
	if typ == "" && !pref {
		return
	}
	params := el.CreateElement("parameters")
	if typ != "" {
		params.CreateElement("type").CreateElement("text").SetText(typ)
	}
	if pref {
		params.CreateElement("pref").CreateElement("integer").SetText("1")
	}
}
