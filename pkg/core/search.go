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
	"strings"

	"github.com/plumenote/plume/pkg/notes"
)

// SearchNotes searches the remote store for notes matching the given query.
// When the remote search fails, the canonical collection is scanned locally
// over title, content, tags and category name instead, so the user always
// gets an answer. An empty query returns the canonical collection.
func (s *Session) SearchNotes(query string) ([]notes.Note, error) {
	if strings.TrimSpace(query) == "" {
		s.mu.Lock()
		defer s.mu.Unlock()

		ret := make([]notes.Note, len(s.notes))
		copy(ret, s.notes)

		return ret, nil
	}

	results, err := s.store.SearchNotes(query)
	if err == nil {
		return results, nil
	}

	return s.searchLocal(query), nil
}

// searchLocal scans the canonical collection for notes matching the query,
// case-insensitive
func (s *Session) searchLocal(query string) []notes.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	ret := []notes.Note{}
	for _, n := range s.notes {
		if matchesQuery(n, q) {
			ret = append(ret, n)
		}
	}

	return ret
}

func matchesQuery(n notes.Note, q string) bool {
	if strings.Contains(strings.ToLower(n.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Category), q) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}

	return false
}
