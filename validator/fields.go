package validator

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"hotel-reservation-api/constants"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// field decodes one JSON member into its typed destination.
// decode returns an error message, or "" on success.
type field struct {
	name     string
	required bool
	decode   func(raw json.RawMessage) string
}

func parseObject(body []byte) (map[string]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &payload); err != nil || payload == nil {
		return nil, false
	}
	return payload, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// unquote returns the text of a JSON string member
func unquote(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", false
	}
	return s, true
}

func stringField(name string, required bool, dst **string) field {
	return field{name: name, required: required, decode: func(raw json.RawMessage) string {
		s, ok := unquote(raw)
		if !ok {
			return MsgNotString
		}
		*dst = &s
		return ""
	}}
}

// intField accepts JSON integers and strings holding an integer
func intField(name string, required bool, dst **int) field {
	return field{name: name, required: required, decode: func(raw json.RawMessage) string {
		text, ok := unquote(raw)
		if !ok {
			text = string(bytes.TrimSpace(raw))
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return MsgNotInteger
		}
		*dst = &parsed
		return ""
	}}
}

// boolField accepts JSON booleans and strings such as "true" or "0"
func boolField(name string, required bool, dst **bool) field {
	return field{name: name, required: required, decode: func(raw json.RawMessage) string {
		text, ok := unquote(raw)
		if !ok {
			text = string(bytes.TrimSpace(raw))
			if text != "true" && text != "false" {
				return MsgNotBoolean
			}
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return MsgNotBoolean
		}
		*dst = &parsed
		return ""
	}}
}

// decimalField accepts JSON numbers and numeric strings, rounded to cents
func decimalField(name string, required bool, dst **decimal.Decimal) field {
	return field{name: name, required: required, decode: func(raw json.RawMessage) string {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || (trimmed[0] != '"' && trimmed[0] != '-' && (trimmed[0] < '0' || trimmed[0] > '9')) {
			return MsgNotNumber
		}
		var d decimal.Decimal
		if err := d.UnmarshalJSON(trimmed); err != nil {
			return MsgNotNumber
		}
		d = d.Round(2)
		*dst = &d
		return ""
	}}
}

// dateField accepts YYYY-MM-DD strings
func dateField(name string, required bool, dst **time.Time) field {
	return field{name: name, required: required, decode: func(raw json.RawMessage) string {
		s, ok := unquote(raw)
		if !ok {
			return MsgNotDate
		}
		t, err := time.ParseInLocation(constants.DateLayout, strings.TrimSpace(s), time.UTC)
		if err != nil {
			return MsgNotDate
		}
		*dst = &t
		return ""
	}}
}
