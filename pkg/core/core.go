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

// Package core implements the synchronization core. A session owns the
// canonical in-memory collections of notes and categories for the current
// authenticated session and sequences every mutation against the remote
// store adapter.
//
// Writes follow a confirm-then-apply policy: the canonical state changes
// only after the remote call succeeds, and a failed call leaves the prior
// state untouched. No optimistic entry ever survives a failed write.
package core

import (
	"slices"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/plumenote/plume/pkg/auth"
	"github.com/plumenote/plume/pkg/clock"
	"github.com/plumenote/plume/pkg/notes"
	"github.com/plumenote/plume/pkg/views"
)

// Status is the lifecycle state of the session's collections
type Status int

const (
	// StatusUninitialized is the state before the first load
	StatusUninitialized Status = iota
	// StatusLoading is the state while an operation is in flight
	StatusLoading
	// StatusReady is the state with usable canonical collections
	StatusReady
	// StatusFailed is the state after a failed load; a retry re-invokes Load
	StatusFailed
)

// Adapter is the remote store surface the session sequences its operations
// against
type Adapter interface {
	ListNotes() ([]notes.Note, error)
	GetNote(id string) (*notes.Note, error)
	CreateNote(n notes.Note) (notes.Note, error)
	UpdateNote(id string, p notes.NoteParams) (notes.Note, error)
	DeleteNote(id string) error
	SearchNotes(query string) ([]notes.Note, error)
	ListCategories() ([]notes.Category, error)
	CreateCategory(c notes.Category) (notes.Category, error)
	UpdateCategory(id string, p notes.CategoryParams) (notes.Category, error)
	DeleteCategory(id string) error
}

// Options configures session behavior
type Options struct {
	// AutoPersistImports persists imported notes to the remote store as
	// they are read. When false, imported notes stay local-only until the
	// next explicit save.
	AutoPersistImports bool
}

// Session owns the canonical collections for one authenticated session.
// Its lifecycle is tied to sign-in and sign-out events rather than any
// ambient global state.
type Session struct {
	store Adapter
	clock clock.Clock
	opts  Options

	mu         sync.Mutex
	status     Status
	errMsg     string
	notes      []notes.Note
	categories []notes.Category
	selectedID string
	sortBy     notes.SortBy
	sortOrder  notes.SortOrder
}

// NewSession returns a session backed by the given adapter
func NewSession(store Adapter, c clock.Clock, opts Options) *Session {
	return &Session{
		store:      store,
		clock:      c,
		opts:       opts,
		status:     StatusUninitialized,
		notes:      []notes.Note{},
		categories: notes.DefaultCategories(),
		sortBy:     notes.SortByUpdatedAt,
		sortOrder:  notes.OrderDesc,
	}
}

// Bind ties the session lifecycle to the given identity provider: the
// session reloads when a user becomes present and resets to the default
// state when the user becomes absent.
func (s *Session) Bind(provider auth.Provider) {
	provider.OnChange(func(user *auth.User) {
		if user != nil {
			// the load error is already recorded on the session
			_ = s.Load()
			return
		}

		s.reset()
	})
}

// reset clears the collections to the signed-out default state
func (s *Session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusUninitialized
	s.errMsg = ""
	s.notes = []notes.Note{}
	s.categories = notes.DefaultCategories()
	s.selectedID = ""
}

// Status returns the session's lifecycle state
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status
}

// Err returns the user-facing message of the last failed operation, or an
// empty string
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.errMsg
}

// Notes returns the canonical notes passed through the session's sorting
func (s *Session) Notes() []notes.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	return views.Sort(s.notes, s.sortBy, s.sortOrder)
}

// Categories returns a copy of the canonical category collection
func (s *Session) Categories() []notes.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	ret := make([]notes.Category, len(s.categories))
	copy(ret, s.categories)

	return ret
}

// FilteredNotes returns the canonical notes passing the given filters,
// in the session's sort order
func (s *Session) FilteredNotes(f views.Filters) []notes.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Collect(views.Project(s.notes, s.sortBy, s.sortOrder, f))
}

// SetSorting sets the comparator the note collection is viewed through
func (s *Session) SetSorting(by notes.SortBy, order notes.SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sortBy = by
	s.sortOrder = order
}

// Sorting returns the session's sort field and direction
func (s *Session) Sorting() (notes.SortBy, notes.SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sortBy, s.sortOrder
}

// SelectNote marks the note with the given id as selected. Selecting an id
// absent from the canonical collection clears the selection.
func (s *Session) SelectNote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findNoteLocked(id) == -1 {
		s.selectedID = ""
		return
	}

	s.selectedID = id
}

// SelectedNote returns a copy of the currently selected note, or nil. The
// selection is a weak reference: it is cleared when the note is deleted.
func (s *Session) SelectedNote() *notes.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findNoteLocked(s.selectedID)
	if idx == -1 {
		return nil
	}

	ret := s.notes[idx]
	return &ret
}

// findNoteLocked returns the index of the note with the given id, or -1.
// The caller must hold the mutex.
func (s *Session) findNoteLocked(id string) int {
	if id == "" {
		return -1
	}

	for idx, n := range s.notes {
		if n.ID == id {
			return idx
		}
	}

	return -1
}

// FindNote returns a copy of the note whose id matches the given id or
// unique id prefix
func (s *Session) FindNote(idOrPrefix string) (notes.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.findNoteLocked(idOrPrefix); idx != -1 {
		return s.notes[idx], nil
	}

	matched := -1
	for idx, n := range s.notes {
		if strings.HasPrefix(n.ID, idOrPrefix) {
			if matched != -1 {
				return notes.Note{}, errors.Errorf("note id %s is ambiguous", idOrPrefix)
			}
			matched = idx
		}
	}
	if matched == -1 {
		return notes.Note{}, errors.Wrapf(ErrNoteNotFound, "resolving %s", idOrPrefix)
	}

	return s.notes[matched], nil
}

// beginOp marks an operation in flight and clears the previous error
func (s *Session) beginOp() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusLoading
	s.errMsg = ""
}

// endOp restores the ready state after an operation unless the operation
// transitioned the session elsewhere
func (s *Session) endOp() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusLoading {
		s.status = StatusReady
	}
}

// recordErr records the user-facing message of a failed mutating operation
// without discarding the rest of the session state
func (s *Session) recordErr(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errMsg = msg
}
