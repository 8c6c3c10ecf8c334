package shopify

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// VerifyWebhook checks the X-Shopify-Hmac-Sha256 signature of a webhook
// payload. The signature is the base64-encoded HMAC-SHA256 of the raw body
// under the app's webhook secret.
func (s *Service) VerifyWebhook(body []byte, signature string) bool {
	if s.WebhookSecret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(s.WebhookSecret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}
