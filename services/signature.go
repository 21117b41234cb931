package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// PayPath is the gateway path suffix mixed into outbound request
// signatures. Callback signatures are computed without a suffix.
const PayPath = "/pg/v1/pay"

// Sign computes the X-VERIFY token for a base64 payload:
// sha256(payload + pathSuffix + saltKey) in hex, then "###" and the salt
// index identifying which secret version was used.
func Sign(base64Payload, pathSuffix, saltKey string, saltIndex int) string {
	sum := sha256.Sum256([]byte(base64Payload + pathSuffix + saltKey))
	return fmt.Sprintf("%s###%d", hex.EncodeToString(sum[:]), saltIndex)
}

// VerifySignature reports whether signature matches the expected token
// for the callback payload. The comparison is constant-time; nothing is
// decoded before this check passes.
func VerifySignature(base64Payload, signature, saltKey string, saltIndex int) bool {
	if saltKey == "" {
		return false
	}
	expected := Sign(base64Payload, "", saltKey, saltIndex)
	return hmac.Equal([]byte(expected), []byte(signature))
}
