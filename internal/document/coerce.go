package document

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// present reports whether a value exists and is not null
func present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

// integer coerces a value to an int. Numbers truncate toward zero, numeric
// strings parse, booleans count as 0 or 1, and anything else yields def.
// Results are clamped to the int32 range so derived arithmetic cannot
// overflow.
func integer(r gjson.Result, def int) int {
	switch r.Type {
	case gjson.Number:
		f := r.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return def
		}
		return clampInt(math.Trunc(f))
	case gjson.String:
		n, err := strconv.ParseInt(strings.TrimSpace(r.Str), 10, 64)
		if err != nil {
			return def
		}
		return clampInt(float64(n))
	case gjson.True:
		return 1
	case gjson.False:
		return 0
	}
	return def
}

func clampInt(f float64) int {
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// text renders a scalar for display. Integral numbers print without a
// fraction; containers print as their raw JSON.
func text(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		f := r.Float()
		if f == math.Trunc(f) && math.Abs(f) < 1e15 {
			return strconv.FormatInt(int64(f), 10)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	case gjson.True:
		return "True"
	case gjson.False:
		return "False"
	case gjson.JSON:
		return r.Raw
	}
	return ""
}

// truthy follows the usual falsy set: null, false, zero, "" and empty
// containers
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null:
		return false
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return r.Float() != 0
	case gjson.String:
		return r.Str != ""
	case gjson.JSON:
		if r.IsArray() {
			return len(r.Array()) > 0
		}
		empty := true
		r.ForEach(func(_, _ gjson.Result) bool {
			empty = false
			return false
		})
		return !empty
	}
	return false
}

// truthyText returns the display text of a truthy value, or ""
func truthyText(r gjson.Result) string {
	if !truthy(r) {
		return ""
	}
	return text(r)
}

// stringList collects display text from an array. A bare scalar counts as a
// one-element list.
func stringList(r gjson.Result) []string {
	if !truthy(r) {
		return nil
	}
	if !r.IsArray() {
		if r.IsObject() {
			return nil
		}
		return []string{text(r)}
	}

	var out []string
	for _, v := range r.Array() {
		if present(v) {
			out = append(out, text(v))
		}
	}
	return out
}

// child returns key from an object value and an empty result otherwise
func child(r gjson.Result, key string) gjson.Result {
	if !r.IsObject() {
		return gjson.Result{}
	}
	// duplicate keys resolve to the last occurrence
	var found gjson.Result
	r.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			found = v
		}
		return true
	})
	return found
}

// has reports whether an object value carries key, whatever its value
func has(r gjson.Result, key string) bool {
	return child(r, key).Exists()
}
