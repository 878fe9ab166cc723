package webhook

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var resourceURLPattern = regexp.MustCompile(`/v1/payments/(\d+)`)
var numericPattern = regexp.MustCompile(`^\d+$`)

// Extraction is the result of running the payment-ID resolver chain over
// a raw webhook body. Strategy names the resolver that matched, for the
// webhook log.
type Extraction struct {
	PaymentID string
	Strategy  string
}

type resolver struct {
	name string
	fn   func(body map[string]any) (string, bool)
}

// The gateway describes the same payment in several body shapes. Each
// resolver handles one shape; the first match wins.
var resolvers = []resolver{
	{"data_id", fromDataID},
	{"direct_id", fromDirectID},
	{"resource_url", fromResourceURL},
	{"resource_id", fromResourceNumeric},
	{"topic_resource", fromTopicResource},
	{"key_scan", fromKeyScan},
}

// ExtractPaymentID parses the raw body and runs the resolver chain.
// Returns false when no resolver matches.
func ExtractPaymentID(raw []byte) (Extraction, bool) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return Extraction{}, false
	}
	for _, r := range resolvers {
		if id, ok := r.fn(body); ok && id != "" {
			return Extraction{PaymentID: id, Strategy: r.name}, true
		}
	}
	return Extraction{}, false
}

func fromDataID(body map[string]any) (string, bool) {
	data, ok := body["data"].(map[string]any)
	if !ok {
		return "", false
	}
	return stringify(data["id"])
}

func fromDirectID(body map[string]any) (string, bool) {
	return stringify(body["id"])
}

func fromResourceURL(body map[string]any) (string, bool) {
	res, ok := body["resource"].(string)
	if !ok {
		return "", false
	}
	if m := resourceURLPattern.FindStringSubmatch(res); m != nil {
		return m[1], true
	}
	return "", false
}

func fromResourceNumeric(body map[string]any) (string, bool) {
	res, ok := body["resource"].(string)
	if !ok || !numericPattern.MatchString(res) {
		return "", false
	}
	return res, true
}

// Feed v2.0 shape: topic=payment plus a resource field.
func fromTopicResource(body map[string]any) (string, bool) {
	if topic, _ := body["topic"].(string); topic != "payment" {
		return "", false
	}
	return stringify(body["resource"])
}

// Last resort: scan for any id-ish key or nested object carrying an id.
func fromKeyScan(body map[string]any) (string, bool) {
	for key, val := range body {
		if nested, ok := val.(map[string]any); ok {
			if id, ok := stringify(nested["id"]); ok {
				return id, true
			}
			continue
		}
		if strings.Contains(strings.ToLower(key), "id") {
			if id, ok := stringify(val); ok {
				return id, true
			}
		}
	}
	return "", false
}

func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		if t == "" {
			return "", false
		}
		return t, true
	case float64:
		return fmt.Sprintf("%.0f", t), true
	case json.Number:
		return t.String(), true
	default:
		return "", false
	}
}
