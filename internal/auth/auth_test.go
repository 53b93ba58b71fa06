package auth

import (
	"strings"
	"testing"
)

func TestAuthorizationRoundTrip(t *testing.T) {
	b := &Basic{Token: "token", Key: "key"}
	h, err := b.Authorization()
	if err != nil {
		t.Fatalf("authorization: %v", err)
	}
	if h != "Basic dG9rZW46a2V5" {
		t.Fatalf("unexpected header: %q", h)
	}

	got, err := ParseBasic(" " + h + "\r\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Token != "token" || got.Key != "key" {
		t.Fatalf("unexpected credentials: %+v", got)
	}
}

func TestAuthorizationRequiresCredentials(t *testing.T) {
	for _, b := range []*Basic{nil, {}, {Token: "t"}, {Key: "k"}} {
		if _, err := b.Authorization(); err == nil {
			t.Fatalf("expected error for %+v", b)
		}
	}
}

func TestParseBasicErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "bearer", input: "Bearer abc", wantErr: "not a basic"},
		{name: "empty", input: "", wantErr: "not a basic"},
		{name: "base64", input: "Basic !!!", wantErr: "invalid base64"},
		{name: "no colon", input: "Basic dG9rZW4=", wantErr: "token:key"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBasic(tc.input)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}
