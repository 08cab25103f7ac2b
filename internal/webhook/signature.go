package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const signaturePrefix = "sha256="

// Sign returns the hex-encoded HMAC-SHA256 of body keyed with secret.
func Sign(body []byte, secret string) (string, error) {
	if secret == "" {
		return "", ErrInvalidSecret
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// SignatureHeader is the X-Webhook-Signature value for body.
func SignatureHeader(body []byte, secret string) (string, error) {
	sig, err := Sign(body, secret)
	if err != nil {
		return "", err
	}
	return signaturePrefix + sig, nil
}

// VerifySignature checks signature, with or without the "sha256=" prefix,
// against body. The comparison is constant time.
func VerifySignature(body []byte, signature, secret string) (bool, error) {
	expected, err := Sign(body, secret)
	if err != nil {
		return false, err
	}

	got := strings.TrimPrefix(signature, signaturePrefix)
	return hmac.Equal([]byte(got), []byte(expected)), nil
}
