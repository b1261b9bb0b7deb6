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

// Package auth defines the identity provider contract. The synchronization
// core reloads when a user becomes present and resets its collections when
// the user becomes absent.
package auth

import "sync"

// User identifies the authenticated user of the current session
type User struct {
	ID string
}

// Provider yields the current user, if any, and notifies subscribers when
// the authentication state changes.
type Provider interface {
	// CurrentUser returns the authenticated user, or nil when signed out
	CurrentUser() *User
	// OnChange registers a callback invoked with the new user on sign-in
	// and with nil on sign-out
	OnChange(fn func(*User))
}

// Static is a provider with a fixed, manually controlled user. It is used
// in tests and by commands that read the user from configuration.
type Static struct {
	mu   sync.RWMutex
	user *User
	fns  []func(*User)
}

// NewStatic returns a static provider for the given user
func NewStatic(user *User) *Static {
	return &Static{user: user}
}

// CurrentUser returns the configured user
func (s *Static) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user
}

// OnChange registers a callback for authentication state changes
func (s *Static) OnChange(fn func(*User)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fns = append(s.fns, fn)
}

// SetUser replaces the current user and notifies the subscribers
func (s *Static) SetUser(user *User) {
	s.mu.Lock()
	s.user = user
	fns := make([]func(*User), len(s.fns))
	copy(fns, s.fns)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(user)
	}
}
