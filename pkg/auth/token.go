/* Copyright 2025 Plume Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package auth

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/plumenote/plume/pkg/clock"
)

// ErrTokenInvalid is an error for an access token that fails verification
var ErrTokenInvalid = errors.New("invalid access token")

// ErrTokenMissingSubject is an error for an access token without a user id
var ErrTokenMissingSubject = errors.New("access token has no subject")

// TokenProvider derives the current user from a bearer access token. The
// token's subject claim carries the user id. The user becomes absent once
// the token expires.
type TokenProvider struct {
	mu        sync.RWMutex
	userID    string
	expiresAt time.Time
	clock     clock.Clock
	fns       []func(*User)
}

// NewTokenProvider verifies the given HS256 token against the secret and
// returns a provider for the user identified by the token's subject.
func NewTokenProvider(token, secret string, c clock.Clock) (*TokenProvider, error) {
	claims := jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(c.Now))
	if err != nil {
		return nil, errors.Wrap(ErrTokenInvalid, err.Error())
	}

	if claims.Subject == "" {
		return nil, ErrTokenMissingSubject
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &TokenProvider{
		userID:    claims.Subject,
		expiresAt: expiresAt,
		clock:     c,
	}, nil
}

// CurrentUser returns the token's user, or nil if the token has expired
func (p *TokenProvider) CurrentUser() *User {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.expiresAt.IsZero() && !p.clock.Now().Before(p.expiresAt) {
		return nil
	}

	return &User{ID: p.userID}
}

// OnChange registers a callback for authentication state changes
func (p *TokenProvider) OnChange(fn func(*User)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.fns = append(p.fns, fn)
}

// Expire forces the provider into the signed-out state and notifies the
// subscribers. It is used on explicit logout.
func (p *TokenProvider) Expire() {
	p.mu.Lock()
	p.expiresAt = p.clock.Now().Add(-time.Second)
	fns := make([]func(*User), len(p.fns))
	copy(fns, p.fns)
	p.mu.Unlock()

	for _, fn := range fns {
		fn(nil)
	}
}
