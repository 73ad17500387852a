// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// BearerPrefix is the scheme prefix of the Authorization header value.
const BearerPrefix = "Bearer "

// Token is a signed access token of a diary user.
//
// The "sub" claim holds the decimal user id; UserID caches its parsed value
// once the token has been issued or verified.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// GetUserID parses the subject claim as a base-10 user id.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error reading token subject: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject %q is not a user id: %w", subject, err)
	}

	return userID, nil
}

// AuthorizationHeader returns the value for an Authorization request header.
func (t *Token) AuthorizationHeader() string {
	return BearerPrefix + t.SignedString
}

// String implements [fmt.Stringer] and returns the signed token.
func (t *Token) String() string {
	return t.SignedString
}

// ParseBearer strips the bearer scheme from an Authorization header value.
// The second result is false when the header does not use that scheme or
// carries no token.
func ParseBearer(header string) (string, bool) {
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
	return token, token != ""
}
