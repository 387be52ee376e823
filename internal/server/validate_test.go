// ABOUTME: Tests for chat message validation and sanitization
// ABOUTME: Covers trimming, stripping, emptiness, and length limits

package server

import (
	"errors"
	"testing"
)

func TestValidateMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "plain text", in: "tell me about fees", want: "tell me about fees"},
		{name: "trims whitespace", in: "  hello  ", want: "hello"},
		{name: "strips markup characters", in: `hi <b>"there"</b>`, want: "hi bthere/b"},
		{name: "strips quotes and backslash", in: `it's a \test`, want: "its a test"},
		{name: "empty", in: "", wantErr: ErrEmptyMessage},
		{name: "whitespace only", in: "   ", wantErr: ErrEmptyMessage},
		{name: "markup only", in: `<>"'`, wantErr: ErrEmptyMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ValidateMessage(tt.in, 500)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateMessageLength(t *testing.T) {
	t.Parallel()

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := ValidateMessage(string(long), 500); err == nil {
		t.Fatal("expected an error for an over-long message")
	} else if errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("err = %v, want a length error", err)
	}

	if _, err := ValidateMessage(string(long[:500]), 500); err != nil {
		t.Fatalf("message at the limit should pass, got %v", err)
	}
}
