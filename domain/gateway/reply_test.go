package gateway

import (
	"testing"
)

func TestReplyAccessors(t *testing.T) {
	r := Reply{
		"name":  "value",
		"count": 3.0,
		"items": []any{"a", "b"},
		"empty": []any{},
		"inner": map[string]any{"k": "v"},
	}

	if r.String("name") != "value" {
		t.Errorf("String() = %q", r.String("name"))
	}
	if r.String("missing") != "" {
		t.Error("absent string should degrade to empty")
	}
	if r.String("count") != "" {
		t.Error("non-string should degrade to empty")
	}

	if r.Int("count", 0) != 3 {
		t.Errorf("Int() = %d", r.Int("count", 0))
	}
	if r.Int("missing", 7) != 7 {
		t.Error("absent int should use default")
	}

	items, ok := r.List("items")
	if !ok || len(items) != 2 {
		t.Errorf("List() = %v, %v", items, ok)
	}
	if empty, ok := r.List("empty"); !ok || len(empty) != 0 {
		t.Error("a present empty list is ok with length zero")
	}
	if _, ok := r.List("missing"); ok {
		t.Error("absent list must not be ok")
	}
	if _, ok := r.List("name"); ok {
		t.Error("non-list must not be ok")
	}

	inner, ok := r.Map("inner")
	if !ok || inner.String("k") != "v" {
		t.Errorf("Map() = %v, %v", inner, ok)
	}
	if _, ok := r.Map("name"); ok {
		t.Error("non-map must not be ok")
	}
}

func TestFailureMessage_FallbackChain(t *testing.T) {
	tests := []struct {
		name  string
		reply Reply
		want  string
	}{
		{
			name:  "human message preferred",
			reply: Reply{"ajaxCallMessage": "ticket not found", "ajaxCallErrorCode": "E1234"},
			want:  "ticket not found",
		},
		{
			name:  "error code when no message",
			reply: Reply{"ajaxCallErrorCode": "E1234"},
			want:  "E1234",
		},
		{
			name:  "generic fallback",
			reply: Reply{"ajaxCallResult": "N"},
			want:  "unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.reply.FailureMessage(); got != tt.want {
				t.Errorf("FailureMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSuccessPredicates(t *testing.T) {
	tests := []struct {
		name       string
		reply      Reply
		wantSingle bool
		wantDual   bool
	}{
		{"both S", Reply{"ajaxCallResult": "S", "processResult": "S"}, true, true},
		{"only ajaxCallResult S", Reply{"ajaxCallResult": "S"}, true, true},
		{"only processResult S", Reply{"ajaxCallResult": "N", "processResult": "S"}, false, true},
		{"neither", Reply{"ajaxCallResult": "N", "processResult": "N"}, false, false},
		{"empty reply", Reply{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SingleFieldSuccess(tt.reply); got != tt.wantSingle {
				t.Errorf("SingleFieldSuccess() = %v, want %v", got, tt.wantSingle)
			}
			if got := DualFieldSuccess(tt.reply); got != tt.wantDual {
				t.Errorf("DualFieldSuccess() = %v, want %v", got, tt.wantDual)
			}
		})
	}
}
