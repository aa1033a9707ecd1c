package vcard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vcardDoc(lines ...string) string {
	all := append([]string{"BEGIN:VCARD", "VERSION:4.0"}, lines...)
	all = append(all, "END:VCARD")
	return strings.Join(all, "\r\n") + "\r\n"
}

func TestParseMinimal(t *testing.T) {
	result := Parse(vcardDoc("FN:John Doe"))
	require.Empty(t, result.Errors)
	require.Len(t, result.Contacts, 1)
	assert.Equal(t, "John Doe", result.Contacts[0].FormattedName)
}

func TestParseScalarFields(t *testing.T) {
	result := Parse(vcardDoc(
		"FN:Dr. Jane Q. Doe",
		"N:Doe;Jane;Q;Dr.;Jr.",
		"NICKNAME:JD",
		"GENDER:F",
		"KIND:individual",
		"BDAY:1985-12-24",
		"ORG:Example Corp;R&D",
		"TITLE:Engineer",
		"NOTE:likes commas\\, and\\nnewlines",
		"URL:https://example.com/jane",
		"GEO:geo:48.856600,2.352200",
		"TZ:Europe/Paris",
		"UID:urn:uuid:abc",
		"REV:2024-06-03T09:30:00Z",
		"PRODID:-//Example//EN",
	))
	require.Empty(t, result.Errors)
	require.Len(t, result.Contacts, 1)

	c := result.Contacts[0]
	assert.Equal(t, "Doe", c.FamilyName)
	assert.Equal(t, "Jane", c.GivenName)
	assert.Equal(t, "Q", c.MiddleName)
	assert.Equal(t, "Dr.", c.HonorificPrefix)
	assert.Equal(t, "Jr.", c.HonorificSuffix)
	assert.Equal(t, GenderFemale, c.Gender)
	assert.True(t, c.Gender.Known())
	assert.Equal(t, KindIndividual, c.Kind)
	require.NotNil(t, c.Birthday)
	assert.Equal(t, 1985, c.Birthday.Year())
	assert.Equal(t, "Example Corp", c.Organization)
	assert.Equal(t, "R&D", c.OrgUnit)
	assert.Equal(t, "likes commas, and\nnewlines", c.Note)
	require.NotNil(t, c.Geo)
	assert.InDelta(t, 48.8566, c.Geo.Latitude, 1e-6)
	assert.Equal(t, "Europe/Paris", c.TimeZone)
	assert.Equal(t, "urn:uuid:abc", c.UID)
	require.NotNil(t, c.Revision)
	assert.Equal(t, "-//Example//EN", c.ProdID)
}

func TestParseMultiValueOrderAndPref(t *testing.T) {
	result := Parse(vcardDoc(
		"FN:X",
		"EMAIL;TYPE=work:first@example.com",
		"EMAIL;TYPE=home;PREF=1:second@example.com",
		"TEL;TYPE=cell;PREF=1:+1",
		"TEL;TYPE=weird-vendor-type:+2",
		"ADR;TYPE=home:;;123 Main St;Springfield;IL;62701;USA",
		"IMPP;PREF=1:xmpp:alice@example.com",
		"RELATED;TYPE=friend;PREF=1:urn:uuid:f81d4fae",
		"RELATED;TYPE=colleague:urn:uuid:c0ffee",
		"LANG;TYPE=work;PREF=1:en",
		"LANG:fr",
	))
	require.Empty(t, result.Errors)
	require.Len(t, result.Contacts, 1)
	c := result.Contacts[0]

	require.Len(t, c.Emails, 2)
	assert.Equal(t, "first@example.com", c.Emails[0].Address)
	assert.False(t, c.Emails[0].Primary)
	assert.True(t, c.Emails[1].Primary)
	assert.Equal(t, EmailHome, c.Emails[1].Type)

	require.Len(t, c.Phones, 2)
	assert.True(t, c.Phones[0].Primary)
	assert.Equal(t, TelCell, c.Phones[0].Type)
	// Unknown producer value survives verbatim.
	assert.Equal(t, TelType("weird-vendor-type"), c.Phones[1].Type)
	assert.False(t, c.Phones[1].Type.Known())

	require.Len(t, c.Addresses, 1)
	assert.Equal(t, "123 Main St", c.Addresses[0].Street)
	assert.Equal(t, "Springfield", c.Addresses[0].Locality)
	assert.Equal(t, "IL", c.Addresses[0].Region)
	assert.Equal(t, "62701", c.Addresses[0].PostalCode)
	assert.Equal(t, "USA", c.Addresses[0].Country)

	require.Len(t, c.IMs, 1)
	assert.Equal(t, IMXMPP, c.IMs[0].Service)
	assert.Equal(t, "alice@example.com", c.IMs[0].Handle)
	assert.True(t, c.IMs[0].Primary)

	require.Len(t, c.Relations, 2)
	assert.Equal(t, RelationFriend, c.Relations[0].Type)
	assert.True(t, c.Relations[0].Primary)
	assert.False(t, c.Relations[1].Primary)

	require.Len(t, c.Languages, 2)
	assert.Equal(t, "en", c.Languages[0].Tag)
	assert.True(t, c.Languages[0].Primary)
	assert.False(t, c.Languages[1].Primary)
}

func TestParseFieldErrorKeepsRecord(t *testing.T) {
	result := Parse(vcardDoc(
		"FN:X",
		"BDAY:not-a-date",
		"NOTE:still here",
	))
	require.Len(t, result.Contacts, 1)
	assert.Nil(t, result.Contacts[0].Birthday)
	assert.Equal(t, "still here", result.Contacts[0].Note)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "BDAY")
	assert.Contains(t, result.Errors[0], "contact 0")
}

func TestParseMissingFNDropsRecordOnly(t *testing.T) {
	content := vcardDoc("NOTE:anonymous") + vcardDoc("FN:Survivor")
	result := Parse(content)
	require.Len(t, result.Contacts, 1)
	assert.Equal(t, "Survivor", result.Contacts[0].FormattedName)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "missing FN")
}

func TestParseMalformedRecordAmongValid(t *testing.T) {
	content := "BEGIN:VCARD\r\nFN:Dangling\r\n" + vcardDoc("FN:Valid")
	result := Parse(content)
	require.Len(t, result.Contacts, 1)
	assert.Equal(t, "Valid", result.Contacts[0].FormattedName)
	assert.NotEmpty(t, result.Errors)
}

func TestParseIgnoresUnknownProperties(t *testing.T) {
	result := Parse(vcardDoc(
		"FN:X",
		"X-APPLE-OMIT-YEAR:1604",
		"SOUND:data:audio/basic;base64,AAAA",
	))
	assert.Empty(t, result.Errors)
	require.Len(t, result.Contacts, 1)
}

func TestParseStripsGroupPrefixes(t *testing.T) {
	result := Parse(vcardDoc(
		"FN:X",
		"item1.TEL;TYPE=cell:+1-555-0100",
		"item1.X-ABLabel:mobile",
	))
	require.Empty(t, result.Errors)
	require.Len(t, result.Contacts, 1)
	require.Len(t, result.Contacts[0].Phones, 1)
	assert.Equal(t, "+1-555-0100", result.Contacts[0].Phones[0].Number)
}

func TestParseFoldedInput(t *testing.T) {
	content := "BEGIN:VCARD\r\nFN:X\r\nNOTE:" + strings.Repeat("A", 70) + "\r\n " +
		strings.Repeat("B", 30) + "\r\nEND:VCARD\r\n"
	result := Parse(content)
	require.Empty(t, result.Errors)
	require.Len(t, result.Contacts, 1)
	assert.Equal(t, strings.Repeat("A", 70)+strings.Repeat("B", 30), result.Contacts[0].Note)
}

func TestParseEmptyDocument(t *testing.T) {
	result := Parse("")
	assert.Empty(t, result.Contacts)
	assert.Empty(t, result.Errors)
}

func TestParseInvalidIMPPReported(t *testing.T) {
	result := Parse(vcardDoc("FN:X", "IMPP:nocolonhere"))
	require.Len(t, result.Contacts, 1)
	assert.Empty(t, result.Contacts[0].IMs)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "IMPP")
}
