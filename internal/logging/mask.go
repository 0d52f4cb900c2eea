package logging

import (
	"regexp"
	"strings"

	"github.com/fivetwenty-io/chargify-client/internal/constants"
)

var sensitiveKeys = []string{
	"password",
	"secret",
	"token",
	"api_key",
	"apikey",
	"authorization",
}

// Payment details that appear in request and response bodies.
var sensitiveElements = []string{
	"full_number",
	"cvv",
	"bank_account_number",
	"bank_routing_number",
	"vault_token",
}

var (
	xmlElementPattern = regexp.MustCompile(`(<(?:` + strings.Join(sensitiveElements, "|") + `)(?:\s[^>]*)?>)([^<]*)(</)`)
	jsonMemberPattern = regexp.MustCompile(`("(?:` + strings.Join(sensitiveElements, "|") + `)"\s*:\s*")([^"]*)(")`)
)

// MaskAPIKey masks API keys, preserving only the last 4 characters.
func MaskAPIKey(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	return maskLast4(value)
}

// MaskFields returns a copy of fields with sensitive values masked.
func MaskFields(fields map[string]interface{}) map[string]interface{} {
	if fields == nil {
		return nil
	}

	out := make(map[string]interface{}, len(fields))

	for key, value := range fields {
		if isSensitiveKey(key) {
			out[key] = maskValue(value)

			continue
		}

		out[key] = value
	}

	return out
}

// MaskBody masks card and bank account details in an XML or JSON body.
func MaskBody(body []byte) string {
	masked := xmlElementPattern.ReplaceAllStringFunc(string(body), func(match string) string {
		parts := xmlElementPattern.FindStringSubmatch(match)

		return parts[1] + maskLast4(parts[2]) + parts[3]
	})

	return jsonMemberPattern.ReplaceAllStringFunc(masked, func(match string) string {
		parts := jsonMemberPattern.FindStringSubmatch(match)

		return parts[1] + maskLast4(parts[2]) + parts[3]
	})
}

func maskValue(value interface{}) interface{} {
	switch typed := value.(type) {
	case string:
		return maskLast4(typed)
	case []byte:
		return maskLast4(string(typed))
	default:
		return constants.MaskedSecret
	}
}

func isSensitiveKey(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))

	for _, needle := range sensitiveKeys {
		if strings.Contains(key, needle) {
			return true
		}
	}

	return false
}

func maskLast4(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if len(value) <= constants.StringTruncationLimit {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + value[len(value)-constants.StringTruncationLimit:]
}
