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
	"golang.org/x/crypto/bcrypt"

	"github.com/plumenote/plume/pkg/notes"
)

// ErrWrongPassword is an error for a password that does not match a
// protected note's hash
var ErrWrongPassword = errors.New("wrong password")

// ProtectNote marks the note with the given id as protected, guarded by
// the given password. Only the bcrypt hash of the password is stored.
func (s *Session) ProtectNote(id, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hashing password")
	}

	_, err = s.UpdateNote(id, notes.NoteParams{
		IsProtected: notes.BoolPtr(true),
		Password:    notes.StringPtr(string(hash)),
	})

	return err
}

// UnprotectNote clears the protection of the note with the given id after
// verifying the given password against the stored hash
func (s *Session) UnprotectNote(id, password string) error {
	if !s.VerifyNotePassword(id, password) {
		return ErrWrongPassword
	}

	_, err := s.UpdateNote(id, notes.NoteParams{
		IsProtected: notes.BoolPtr(false),
		Password:    notes.StringPtr(""),
	})

	return err
}

// VerifyNotePassword checks the given password against the stored hash of
// the note with the given id. An unprotected note accepts any password.
func (s *Session) VerifyNotePassword(id, password string) bool {
	s.mu.Lock()
	idx := s.findNoteLocked(id)
	if idx == -1 {
		s.mu.Unlock()
		return false
	}
	n := s.notes[idx]
	s.mu.Unlock()

	if !n.IsProtected {
		return true
	}

	return bcrypt.CompareHashAndPassword([]byte(n.Password), []byte(password)) == nil
}
