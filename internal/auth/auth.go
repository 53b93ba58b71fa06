// Package auth builds the HTTP Basic credentials MoIP expects: base64("token:key").
package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Basic authenticates requests with an account token and key.
type Basic struct {
	Token string
	Key   string
}

// Authorization returns the Authorization header value.
func (b *Basic) Authorization() (string, error) {
	if b == nil || b.Token == "" || b.Key == "" {
		return "", errors.New("auth: token and key are required")
	}
	raw := b.Token + ":" + b.Key
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw)), nil
}

// ParseBasic is the inverse of Authorization. Test servers use it to check the
// credentials a client sent.
func ParseBasic(header string) (*Basic, error) {
	header = strings.TrimSpace(header)
	scheme, payload, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Basic") {
		return nil, errors.New("auth: not a basic authorization header")
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, fmt.Errorf("auth: invalid base64 credentials: %w", err)
	}
	token, key, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return nil, errors.New("auth: credentials must be token:key")
	}
	return &Basic{Token: token, Key: key}, nil
}
