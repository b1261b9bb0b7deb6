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

package core

import (
	"github.com/pkg/errors"

	"github.com/plumenote/plume/pkg/notes"
)

const msgLoadFailed = "Impossible de charger les données"

// Load fetches the remote collections and replaces the canonical state.
// A user with no categories gets the bootstrap set created first; each
// creation is best-effort, and a failed one is skipped so a partial set
// never blocks the load.
func (s *Session) Load() error {
	s.mu.Lock()
	s.status = StatusLoading
	s.errMsg = ""
	s.mu.Unlock()

	categories, err := s.store.ListCategories()
	if err != nil {
		return s.failLoad(errors.Wrap(err, "listing categories"))
	}

	if len(categories) == 0 {
		for _, c := range notes.DefaultCategories() {
			// best-effort; a skipped default is recreated on a later load
			_, _ = s.store.CreateCategory(c)
		}

		categories, err = s.store.ListCategories()
		if err != nil {
			return s.failLoad(errors.Wrap(err, "listing seeded categories"))
		}
	}

	collection, err := s.store.ListNotes()
	if err != nil {
		return s.failLoad(errors.Wrap(err, "listing notes"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = categories
	s.notes = collection
	if s.findNoteLocked(s.selectedID) == -1 {
		s.selectedID = ""
	}
	s.status = StatusReady

	return nil
}

// failLoad transitions the session to the failed state. The collections
// from before the load are kept so a retry has something to fall back on.
func (s *Session) failLoad(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusFailed
	s.errMsg = msgLoadFailed

	return err
}
