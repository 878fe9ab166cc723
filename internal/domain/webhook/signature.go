package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

type SignatureOutcome string

const (
	SignatureValid        SignatureOutcome = "valid"
	SignatureInvalid      SignatureOutcome = "invalid"
	SignatureMissing      SignatureOutcome = "missing"
	SignatureUnconfigured SignatureOutcome = "unconfigured"
)

// VerifySignature checks an `X-Signature: ts=<unix>,v1=<hex>` header
// against the shared secret. The sender has shipped several message
// template formats over time, so the HMAC is computed over each candidate
// and the first match wins. Template names are returned for the webhook
// log so drift can be analyzed later.
func VerifySignature(header, secret string, body []byte) (SignatureOutcome, string) {
	if header == "" {
		return SignatureMissing, ""
	}
	if secret == "" {
		return SignatureUnconfigured, ""
	}

	ts, v1 := parseSignatureHeader(header)
	if ts == "" || v1 == "" {
		return SignatureInvalid, ""
	}

	truncated := body
	if len(truncated) > 100 {
		truncated = truncated[:100]
	}

	templates := []struct {
		name    string
		message string
	}{
		{"full_body", string(body)},
		{"timestamp", ts},
		{"timestamp_body", ts + "." + string(body)},
		{"timestamp_truncated", ts + "." + string(truncated)},
	}

	for _, tmpl := range templates {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write([]byte(tmpl.message))
		calculated := hex.EncodeToString(mac.Sum(nil))
		if hmac.Equal([]byte(calculated), []byte(v1)) {
			return SignatureValid, tmpl.name
		}
	}
	return SignatureInvalid, ""
}

func parseSignatureHeader(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		switch {
		case strings.HasPrefix(part, "ts="):
			ts = strings.TrimPrefix(part, "ts=")
		case strings.HasPrefix(part, "v1="):
			v1 = strings.TrimPrefix(part, "v1=")
		}
	}
	return ts, v1
}
