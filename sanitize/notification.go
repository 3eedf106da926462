package sanitize

import "regexp"

// schoolInfoPattern matches internal system identifiers leaking into
// free-form notification text: "server: db01", "database:prod-3",
// "schema: students", case-insensitively.
var schoolInfoPattern = regexp.MustCompile(`(?i)\b(server|database|schema):\s*\S+`)

func redactSchoolInfo(s string) string {
	return schoolInfoPattern.ReplaceAllStringFunc(s, func(match string) string {
		loc := schoolInfoPattern.FindStringSubmatchIndex(match)
		label := match[loc[2]:loc[3]]
		return lowerASCII(label) + ": [INTERNAL]"
	})
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

// SanitizeNotification is the notification domain entry point:
// sanitize_notification(notification, device) -> notification.
//
// recipient_email and recipient_phone pass through verbatim: they are the
// delivery target, already known to the device receiving the message, not
// incidental PII picked up from elsewhere in the record. subject and body
// go through pattern redaction (SSN, address, phone — phone redaction is
// an intentional extension beyond the reference omission, see DESIGN.md)
// plus the internal-system-info redactor; attachments are dropped wholesale
// (content inspection is out of scope).
func SanitizeNotification(notification *Mapping, device Device, opts ...ContextOption) *Mapping {
	ctx := NewContext(NotificationData, ParentNotification, opts...)
	out := NewMapping()

	notification.Range(func(key string, v Value) bool {
		switch key {
		case "recipient_email", "recipient_phone", "type", "template_id",
			"template_variables", "priority":
			out.Set(key, v)
		case "subject":
			out.SetScalar("subject", sanitizeNotificationText(stringScalar(v), "[REDACTED]", "[SCHOOL]", "[PHONE REDACTED]"))
		case "body":
			// Body sentinels use "[SSN-REDACTED]"/"[SCHOOL ADDRESS]"/"server:
			// [INTERNAL]" — see DESIGN.md for why these differ from subject's
			// sentinels.
			out.SetScalar("body", sanitizeNotificationText(stringScalar(v), "[SSN-REDACTED]", "[SCHOOL ADDRESS]", "[PHONE REDACTED]"))
		case "attachments":
			out.Set("attachments", FromSequence(nil))
		default:
			// unrecognized fields on the notification shape are dropped: the
			// shape is closed.
		}
		return true
	})

	if ctx.IncludeMeta {
		stampMetadata(out)
	}
	return out
}

func sanitizeNotificationText(s, ssnSentinel, addressSentinel, phoneSentinel string) string {
	s = redactPattern(ssnPattern, s, ssnSentinel)
	s = redactPattern(ipv4Pattern, s, "[INTERNAL]")
	s = redactPattern(addressPattern, s, addressSentinel)
	s = redactPattern(phonePattern, s, phoneSentinel)
	s = redactSchoolInfo(s)
	return s
}

func stringScalar(v Value) string {
	if v.Kind != KindScalar {
		return ""
	}
	s, _ := v.Scalar.(string)
	return s
}
