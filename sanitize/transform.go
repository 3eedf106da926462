package sanitize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	sentinelEmailRedacted   = "[EMAIL REDACTED]"
	sentinelPhoneRedacted   = "[PHONE REDACTED]"
	sentinelDOBRedacted     = "[DOB REDACTED]"
	sentinelAddressRedacted = "[ADDRESS REDACTED]"
)

// maskEmail masks an email address: show the first two
// characters of the local part (or "***" if it's shorter than three), then
// "***"; the domain becomes "***.<last-label>" if it contains a dot, else
// "***". A string without "@" yields the redacted sentinel outright.
func maskEmail(value string) string {
	at := strings.LastIndex(value, "@")
	if at < 0 {
		return sentinelEmailRedacted
	}
	local, domain := value[:at], value[at+1:]

	var localMasked string
	if len(local) < 3 {
		localMasked = "***"
	} else {
		localMasked = local[:2] + "***"
	}

	var domainMasked string
	if dot := strings.LastIndex(domain, "."); dot >= 0 {
		domainMasked = "***" + domain[dot:]
	} else {
		domainMasked = "***"
	}

	return localMasked + "@" + domainMasked
}

// maskPhone masks a phone number: strip non-digits, and if
// at least 10 remain, show "***-***-<last 4>"; otherwise the redacted
// sentinel.
func maskPhone(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) < 10 {
		return sentinelPhoneRedacted
	}
	return "***-***-" + d[len(d)-4:]
}

// maskBirthDate masks a birth date: if the first four
// characters parse as an integer, emit "<yyyy>-**-**"; otherwise the
// redacted sentinel.
func maskBirthDate(value string) string {
	if len(value) < 4 {
		return sentinelDOBRedacted
	}
	year := value[:4]
	if _, err := strconv.Atoi(year); err != nil {
		return sentinelDOBRedacted
	}
	return year + "-**-**"
}

// maskStudentID masks a student ID as "[ID:<h>]" where h
// is a stable 32-bit hash, deterministic within and across process
// invocations. xxhash's 64-bit sum is truncated to 32 bits; any
// deterministic 32-bit hash would satisfy the same contract.
func maskStudentID(value string) string {
	h := uint32(xxhash.Sum64String(value))
	return fmt.Sprintf("[ID:%d]", h)
}

// maskAddress replaces an address with a constant sentinel.
func maskAddress(string) string {
	return sentinelAddressRedacted
}

// applyMask dispatches a MaskKind to its transformer.
func applyMask(kind MaskKind, value string) string {
	switch kind {
	case MaskEmail:
		return maskEmail(value)
	case MaskPhone:
		return maskPhone(value)
	case MaskAddress:
		return maskAddress(value)
	case MaskBirthDate:
		return maskBirthDate(value)
	case MaskStudentID:
		return maskStudentID(value)
	default:
		return value
	}
}
