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

// Package store implements the remote store adapter. It translates between
// the client entity shapes and the remote schema's rows, resolves category
// names to identifiers on every write, and scopes every query to the
// authenticated user.
package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/plumenote/plume/pkg/auth"
	"github.com/plumenote/plume/pkg/clock"
)

const (
	// remoteRateLimitPerSecond is the max requests per second the adapter
	// will issue against the remote store
	remoteRateLimitPerSecond = 50
	// remoteRateLimitBurst is the burst capacity for rate limiting
	remoteRateLimitBurst = 100
)

// Store is the remote store adapter
type Store struct {
	DB      *gorm.DB
	Auth    auth.Provider
	Clock   clock.Clock
	limiter *rate.Limiter
}

// New returns a store backed by the given connection, scoping all
// operations to the user yielded by the given provider
func New(db *gorm.DB, provider auth.Provider, c clock.Clock) *Store {
	interval := time.Second / time.Duration(remoteRateLimitPerSecond)

	return &Store{
		DB:      db,
		Auth:    provider,
		Clock:   c,
		limiter: rate.NewLimiter(rate.Every(interval), remoteRateLimitBurst),
	}
}

// Open initializes the connection to the remote relational store
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(ErrRemoteUnavailable, err.Error())
	}

	return db, nil
}

// InitSchema migrates the store schema to reflect the latest model definition
func InitSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Category{},
		&Note{},
		&Attachment{},
	); err != nil {
		return errors.Wrap(err, "migrating schema")
	}

	return nil
}

// userID returns the id of the authenticated user. Every operation fails
// fast with ErrUnauthenticated when no user context is available.
func (s *Store) userID() (string, error) {
	user := s.Auth.CurrentUser()
	if user == nil {
		return "", ErrUnauthenticated
	}

	return user.ID, nil
}

// throttle blocks until the rate limiter admits another remote request
func (s *Store) throttle() {
	// the limiter only errors on a cancelled context
	_ = s.limiter.Wait(context.Background())
}
