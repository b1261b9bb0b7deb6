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

package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/plumenote/plume/pkg/notes"
)

var (
	// ErrUnauthenticated is an error for an operation without a user context
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrNotFound is an error for an id/user pair matching no row
	ErrNotFound = errors.New("record not found")
	// ErrValidation is an error for a store-side constraint rejection
	ErrValidation = errors.New("validation failed")
	// ErrRemoteUnavailable is an error for a transport failure reaching the store
	ErrRemoteUnavailable = errors.New("remote store unavailable")
)

// classify maps a raw driver error onto the adapter's error taxonomy. Raw
// errors never cross the adapter boundary for expected conditions.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Wrap(ErrValidation, err.Error())
	case notes.IsValidationErr(err):
		return errors.Wrap(ErrValidation, err.Error())
	case strings.Contains(strings.ToLower(err.Error()), "constraint"):
		return errors.Wrap(ErrValidation, err.Error())
	default:
		return errors.Wrap(ErrRemoteUnavailable, err.Error())
	}
}
