package vcard

import "strings"

// The TYPE-style enumerations below are open string unions: the canonical
// RFC 6350 values are provided as constants and Known reports membership,
// but arbitrary producer-specific values are carried through verbatim.
// Forward compatibility with non-conformant producers takes precedence over
// strict validation.

// TelType classifies a phone number.
type TelType string

const (
	TelHome  TelType = "home"
	TelWork  TelType = "work"
	TelCell  TelType = "cell"
	TelFax   TelType = "fax"
	TelVoice TelType = "voice"
	TelVideo TelType = "video"
	TelPager TelType = "pager"
	TelText  TelType = "text"
)

// Known reports whether the value is one of the canonical phone types.
func (t TelType) Known() bool {
	switch t {
	case TelHome, TelWork, TelCell, TelFax, TelVoice, TelVideo, TelPager, TelText:
		return true
	}
	return false
}

// EmailType classifies an email address.
type EmailType string

const (
	EmailHome     EmailType = "home"
	EmailWork     EmailType = "work"
	EmailInternet EmailType = "internet"
)

func (t EmailType) Known() bool {
	switch t {
	case EmailHome, EmailWork, EmailInternet:
		return true
	}
	return false
}

// AddressType classifies a postal address.
type AddressType string

const (
	AddressHome AddressType = "home"
	AddressWork AddressType = "work"
)

func (t AddressType) Known() bool {
	return t == AddressHome || t == AddressWork
}

// IMService is the messaging service carried as the IMPP URI scheme.
type IMService string

const (
	IMXMPP     IMService = "xmpp"
	IMSIP      IMService = "sip"
	IMSkype    IMService = "skype"
	IMTelegram IMService = "telegram"
	IMSignal   IMService = "signal"
	IMMatrix   IMService = "matrix"
)

func (s IMService) Known() bool {
	switch s {
	case IMXMPP, IMSIP, IMSkype, IMTelegram, IMSignal, IMMatrix:
		return true
	}
	return false
}

// RelationType is the RFC 6350 §6.6.6 relationship value.
type RelationType string

const (
	RelationContact      RelationType = "contact"
	RelationAcquaintance RelationType = "acquaintance"
	RelationFriend       RelationType = "friend"
	RelationMet          RelationType = "met"
	RelationCoWorker     RelationType = "co-worker"
	RelationColleague    RelationType = "colleague"
	RelationCoResident   RelationType = "co-resident"
	RelationNeighbor     RelationType = "neighbor"
	RelationChild        RelationType = "child"
	RelationParent       RelationType = "parent"
	RelationSibling      RelationType = "sibling"
	RelationSpouse       RelationType = "spouse"
	RelationKin          RelationType = "kin"
	RelationMuse         RelationType = "muse"
	RelationCrush        RelationType = "crush"
	RelationDate         RelationType = "date"
	RelationSweetheart   RelationType = "sweetheart"
	RelationMe           RelationType = "me"
	RelationAgent        RelationType = "agent"
	RelationEmergency    RelationType = "emergency"
)

var knownRelations = map[RelationType]struct{}{
	RelationContact: {}, RelationAcquaintance: {}, RelationFriend: {},
	RelationMet: {}, RelationCoWorker: {}, RelationColleague: {},
	RelationCoResident: {}, RelationNeighbor: {}, RelationChild: {},
	RelationParent: {}, RelationSibling: {}, RelationSpouse: {},
	RelationKin: {}, RelationMuse: {}, RelationCrush: {},
	RelationDate: {}, RelationSweetheart: {}, RelationMe: {},
	RelationAgent: {}, RelationEmergency: {},
}

func (r RelationType) Known() bool {
	_, ok := knownRelations[r]
	return ok
}

// Gender is the single-letter GENDER sex component.
type Gender string

const (
	GenderMale        Gender = "M"
	GenderFemale      Gender = "F"
	GenderOther       Gender = "O"
	GenderNone        Gender = "N"
	GenderUnspecified Gender = "U"
)

func (g Gender) Known() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderNone, GenderUnspecified:
		return true
	}
	return false
}

// Kind is the KIND property value.
type Kind string

const (
	KindIndividual   Kind = "individual"
	KindGroup        Kind = "group"
	KindOrganization Kind = "org"
	KindLocation     Kind = "location"
)

func (k Kind) Known() bool {
	switch k {
	case KindIndividual, KindGroup, KindOrganization, KindLocation:
		return true
	}
	return false
}

// normType lowercases a wire TYPE parameter value for enum comparison.
func normType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
