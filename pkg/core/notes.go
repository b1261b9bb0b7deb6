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

	"github.com/plumenote/plume/pkg/helpers"
	"github.com/plumenote/plume/pkg/notes"
)

const (
	msgCreateNoteFailed = "Impossible de créer la note"
	msgUpdateNoteFailed = "Impossible de mettre à jour la note"
	msgDeleteNoteFailed = "Impossible de supprimer la note"
)

// CreateNote creates a fresh note with the default field values, prepends
// the confirmed row to the canonical collection and selects it
func (s *Session) CreateNote() (notes.Note, error) {
	s.beginOp()
	defer s.endOp()

	id, err := helpers.GenUUID()
	if err != nil {
		s.recordErr(msgCreateNoteFailed)
		return notes.Note{}, errors.Wrap(err, "generating note id")
	}

	created, err := s.store.CreateNote(notes.New(id, s.clock.Now()))
	if err != nil {
		s.recordErr(msgCreateNoteFailed)
		return notes.Note{}, errors.Wrap(err, "creating note")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = append([]notes.Note{created}, s.notes...)
	s.selectedID = created.ID

	return created, nil
}

// UpdateNote applies the given partial update to the note with the given
// id. The canonical entry is replaced only with the row the remote store
// confirmed; on failure the entry is left exactly as it was.
func (s *Session) UpdateNote(id string, p notes.NoteParams) (notes.Note, error) {
	s.beginOp()
	defer s.endOp()

	updated, err := s.store.UpdateNote(id, p)
	if err != nil {
		s.recordErr(msgUpdateNoteFailed)
		return notes.Note{}, errors.Wrapf(err, "updating note %s", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.findNoteLocked(id); idx != -1 {
		s.notes[idx] = updated
	}

	return updated, nil
}

// DeleteNote deletes the note with the given id remotely, then drops it
// from the canonical collection. A deleted note that was selected clears
// the selection.
func (s *Session) DeleteNote(id string) error {
	s.beginOp()
	defer s.endOp()

	if err := s.store.DeleteNote(id); err != nil {
		s.recordErr(msgDeleteNoteFailed)
		return errors.Wrapf(err, "deleting note %s", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.findNoteLocked(id); idx != -1 {
		s.notes = append(s.notes[:idx], s.notes[idx+1:]...)
	}
	if s.selectedID == id {
		s.selectedID = ""
	}

	return nil
}

// ToggleFavorite flips the favorite flag of the note with the given id.
// An unknown id is a no-op.
func (s *Session) ToggleFavorite(id string) error {
	s.mu.Lock()
	idx := s.findNoteLocked(id)
	if idx == -1 {
		s.mu.Unlock()
		return nil
	}
	val := !s.notes[idx].IsFavorite
	s.mu.Unlock()

	_, err := s.UpdateNote(id, notes.NoteParams{IsFavorite: notes.BoolPtr(val)})

	return err
}

// ToggleArchive flips the archived flag of the note with the given id.
// An unknown id is a no-op.
func (s *Session) ToggleArchive(id string) error {
	s.mu.Lock()
	idx := s.findNoteLocked(id)
	if idx == -1 {
		s.mu.Unlock()
		return nil
	}
	val := !s.notes[idx].IsArchived
	s.mu.Unlock()

	_, err := s.UpdateNote(id, notes.NoteParams{IsArchived: notes.BoolPtr(val)})

	return err
}
