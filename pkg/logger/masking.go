package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
)

// MaskCredential replaces all but a short identifying prefix of a secret
// with a hash fragment, so configuration logging never exposes API keys
// or passwords.
func MaskCredential(secret string) string {
	if secret == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(secret))
	return "cred#" + hex.EncodeToString(sum[:])[:8]
}

// MaskURL reduces a URL to scheme and host for log output, dropping
// paths and query strings that may identify customers or carry tokens.
func MaskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "<invalid-url>"
	}
	return u.Scheme + "://" + u.Host + "/..."
}
