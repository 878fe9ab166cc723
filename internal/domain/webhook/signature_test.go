//go:build unit

package webhook_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"fulfillment-core/internal/domain/webhook"

	"github.com/stretchr/testify/assert"
)

const testSecret = "shhh-very-secret"

func sign(secret, message string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"data":{"id":"12345678"}}`)
	ts := "1725000000"

	t.Run("full body template", func(t *testing.T) {
		header := "ts=" + ts + ",v1=" + sign(testSecret, string(body))
		outcome, template := webhook.VerifySignature(header, testSecret, body)
		assert.Equal(t, webhook.SignatureValid, outcome)
		assert.Equal(t, "full_body", template)
	})

	t.Run("timestamp template", func(t *testing.T) {
		header := "ts=" + ts + ",v1=" + sign(testSecret, ts)
		outcome, template := webhook.VerifySignature(header, testSecret, body)
		assert.Equal(t, webhook.SignatureValid, outcome)
		assert.Equal(t, "timestamp", template)
	})

	t.Run("timestamp dot body template", func(t *testing.T) {
		header := "ts=" + ts + ",v1=" + sign(testSecret, ts+"."+string(body))
		outcome, template := webhook.VerifySignature(header, testSecret, body)
		assert.Equal(t, webhook.SignatureValid, outcome)
		assert.Equal(t, "timestamp_body", template)
	})

	t.Run("truncated body template", func(t *testing.T) {
		long := append([]byte(`{"filler":"`), make([]byte, 200)...)
		for i := range long {
			if long[i] == 0 {
				long[i] = 'x'
			}
		}
		header := "ts=" + ts + ",v1=" + sign(testSecret, ts+"."+string(long[:100]))
		outcome, template := webhook.VerifySignature(header, testSecret, long)
		assert.Equal(t, webhook.SignatureValid, outcome)
		assert.Equal(t, "timestamp_truncated", template)
	})

	t.Run("wrong secret", func(t *testing.T) {
		header := "ts=" + ts + ",v1=" + sign("other-secret", string(body))
		outcome, _ := webhook.VerifySignature(header, testSecret, body)
		assert.Equal(t, webhook.SignatureInvalid, outcome)
	})

	t.Run("malformed header", func(t *testing.T) {
		outcome, _ := webhook.VerifySignature("garbage", testSecret, body)
		assert.Equal(t, webhook.SignatureInvalid, outcome)
	})

	t.Run("missing header", func(t *testing.T) {
		outcome, _ := webhook.VerifySignature("", testSecret, body)
		assert.Equal(t, webhook.SignatureMissing, outcome)
	})

	t.Run("no secret configured", func(t *testing.T) {
		header := "ts=" + ts + ",v1=" + sign(testSecret, string(body))
		outcome, _ := webhook.VerifySignature(header, "", body)
		assert.Equal(t, webhook.SignatureUnconfigured, outcome)
	})

	t.Run("header parts in any order with spaces", func(t *testing.T) {
		header := "v1=" + sign(testSecret, string(body)) + ", ts=" + ts
		outcome, template := webhook.VerifySignature(header, testSecret, body)
		assert.Equal(t, webhook.SignatureValid, outcome)
		assert.Equal(t, "full_body", template)
	})
}
