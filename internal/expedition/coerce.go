package expedition

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Count coerces a Weight or Quantity field. Numbers truncate toward zero,
// booleans count as 0 or 1, numeric strings are parsed; anything else,
// including a missing field, is 1. The result is never below 1.
func Count(v gjson.Result) int {
	n := 1
	switch v.Type {
	case gjson.Number:
		n = int(v.Int())
	case gjson.True:
		n = 1
	case gjson.False:
		n = 0
	case gjson.String:
		parsed, err := strconv.Atoi(strings.TrimSpace(v.Str))
		if err == nil {
			n = parsed
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

// truthy mirrors the loose truthiness the config format has always used for
// optional ids: null, false, 0, "" and empty containers are false.
func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null:
		return false
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	}
	if !v.Exists() {
		return false
	}
	nonEmpty := false
	v.ForEach(func(_, _ gjson.Result) bool {
		nonEmpty = true
		return false
	})
	return nonEmpty
}

// text renders a display field. Strings are returned as-is, other values as
// their JSON text, null and missing as "".
func text(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	}
	return v.Raw
}

// optionalText is text for fields that fall back when falsy.
func optionalText(v gjson.Result) string {
	if !truthy(v) {
		return ""
	}
	return text(v)
}
