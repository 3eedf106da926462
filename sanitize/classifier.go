package sanitize

import "strings"

// Action is the classifier's verdict for a single field.
type Action int

const (
	// Pass emits the value unchanged (subject to pattern redaction for
	// free-form strings).
	Pass Action = iota
	// Drop omits the field entirely.
	Drop
	// Mask routes the value to a specific Kind-tagged transformer.
	Mask
)

// MaskKind identifies which transformer a MASK verdict routes to.
type MaskKind int

const (
	MaskNone MaskKind = iota
	MaskEmail
	MaskPhone
	MaskAddress
	MaskBirthDate
	MaskStudentID
)

// alwaysRemove is the process-wide seed set of substring tokens that drop a
// field regardless of its value, at any depth.
// Tokens are written without separators; classify strips "_"/"-" from the
// field name (and from context-supplied tokens) before matching so "internal_id",
// "internalId", and "internalID" are all recognized as the same token.
var alwaysRemove = []string{
	"ssn", "socialsecuritynumber", "password", "passwordhash",
	"pin", "pincode", "securityquestion", "securityanswer",
	"internalid", "systemid", "databaseid", "dbid",
	"serverip", "hostip", "macaddress", "gpscoordinates",
	"latitude", "longitude", "ipaddress", "clientip",
}

// maskableOrder is evaluated in this fixed order so overlapping substrings
// (e.g. a field containing both "email" and "address") resolve
// deterministically: the first matching token in this list wins.
var maskableOrder = []struct {
	kind    MaskKind
	matches func(lower string) bool
}{
	{MaskEmail, func(l string) bool { return strings.Contains(l, "email") }},
	{MaskPhone, func(l string) bool { return strings.Contains(l, "phone") }},
	{MaskAddress, func(l string) bool { return strings.Contains(l, "address") }},
	{MaskBirthDate, func(l string) bool { return strings.Contains(l, "birth") || strings.Contains(l, "dob") }},
	{MaskStudentID, func(l string) bool { return strings.Contains(l, "studentid") }},
}

// classify applies the classifier's three rules, in order, against a field name.
// Matching is substring-on-lowercase for both the token set and the field
// name, intentionally permissive to catch naming-convention variants
// (phoneNumber, phone_number, mobilePhone).
func classify(fieldName string, ctx *Context) (Action, MaskKind) {
	lower := strings.ToLower(fieldName)
	collapsed := strings.ReplaceAll(strings.ReplaceAll(lower, "_", ""), "-", "")

	for _, token := range alwaysRemove {
		if strings.Contains(collapsed, token) {
			return Drop, MaskNone
		}
	}
	for token := range ctx.additionalFieldsToRemove {
		token = strings.ReplaceAll(strings.ReplaceAll(token, "_", ""), "-", "")
		if token != "" && strings.Contains(collapsed, token) {
			return Drop, MaskNone
		}
	}

	for _, candidate := range maskableOrder {
		if candidate.kind == MaskStudentID {
			if strings.Contains(collapsed, "studentid") {
				return Mask, MaskStudentID
			}
			continue
		}
		if candidate.matches(lower) {
			return Mask, candidate.kind
		}
	}

	return Pass, MaskNone
}
