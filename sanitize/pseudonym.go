package sanitize

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
)

// defaultSalt is the process-wide pseudonym salt. Deployments may override
// it through PolicyConfig.PseudonymSalt (loaded via LoadPolicyConfig); it is
// never rotated per call — rotating it would break invariant 3's
// per-device stability guarantee for any reference minted before the
// rotation.
const defaultSalt = "heronix-salt"

var pseudonymSalt = defaultSalt

// SetPseudonymSalt overrides the process-wide salt used by DerivePseudonym.
// Intended to be called once at process start (e.g. via (*PolicyConfig).Apply);
// it is not meant to be rotated while the process is serving traffic.
func SetPseudonymSalt(salt string) {
	if salt == "" {
		return
	}
	pseudonymSalt = salt
}

// DerivePseudonym computes a deterministic, device-scoped reference ID for
// a student:
//
//  1. concatenate studentID + ":" + deviceID + ":" + salt
//  2. SHA-256 the UTF-8 bytes
//  3. base64-standard-encode
//  4. take the first 12 characters, substituting "/"->"X" and "+"->"Y"
//  5. prefix with "REF-"
//
// If studentID is empty, the pseudonym degrades to "ANON-<first 8 chars of
// a fresh UUID>" and the call is logged at error level (the determinism
// contract is broken for that single call).
func DerivePseudonym(studentID, deviceID string) string {
	if studentID == "" {
		return anonFallback("empty student id")
	}

	input := studentID + ":" + deviceID + ":" + pseudonymSalt
	sum := sha256.Sum256([]byte(input))
	encoded := base64.StdEncoding.EncodeToString(sum[:])
	if len(encoded) < 12 {
		return anonFallback("short hash encoding")
	}

	head := encoded[:12]
	head = strings.ReplaceAll(head, "/", "X")
	head = strings.ReplaceAll(head, "+", "Y")
	return "REF-" + head
}

func anonFallback(reason string) string {
	logDegraded("pseudonym derivation fell back to anonymous reference", reason)
	id := uuid.New().String()[:8]
	return "ANON-" + id
}
