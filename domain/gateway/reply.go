package gateway

// Reply is the loosely-typed document a backend command returns. The
// backend guarantees nothing beyond a status indicator, so every accessor
// checks presence and degrades to a zero value instead of panicking on
// absent or oddly-typed fields.
type Reply map[string]any

// String returns the named field as a string, "" when absent or not a
// string.
func (r Reply) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Int returns the named field as an int. JSON numbers decode as float64;
// anything else degrades to def.
func (r Reply) Int(key string, def int) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

// List returns the named field as a list. ok is false when the field is
// absent or not a list; a present empty list is ok with length zero.
func (r Reply) List(key string) (items []any, ok bool) {
	items, ok = r[key].([]any)
	return items, ok
}

// Map returns the named field as a nested Reply document.
func (r Reply) Map(key string) (Reply, bool) {
	if m, ok := r[key].(map[string]any); ok {
		return Reply(m), true
	}
	return nil, false
}

// Row converts a list item into a Reply document for field access.
func Row(item any) (Reply, bool) {
	if m, ok := item.(map[string]any); ok {
		return Reply(m), true
	}
	return nil, false
}

// FailureMessage resolves the backend's failure message through the
// standard fallback chain: human message, then error code, then a generic
// string.
func (r Reply) FailureMessage() string {
	if msg := r.String("ajaxCallMessage"); msg != "" {
		return msg
	}
	if code := r.String("ajaxCallErrorCode"); code != "" {
		return code
	}
	return "unknown error"
}

// SuccessPredicate decides whether a reply reports success. Which fields
// count as a success indicator varies per backend command; each operation
// declares its own predicate instead of sharing one unified check.
type SuccessPredicate func(Reply) bool

// SingleFieldSuccess is the common predicate: ajaxCallResult must be "S".
func SingleFieldSuccess(r Reply) bool {
	return r.String("ajaxCallResult") == "S"
}

// DualFieldSuccess accepts either ajaxCallResult or processResult being
// "S". The task-log command reports success through either field; this
// mirrors the backend's behavior and must not be folded into the single
// field check.
func DualFieldSuccess(r Reply) bool {
	return r.String("ajaxCallResult") == "S" || r.String("processResult") == "S"
}
