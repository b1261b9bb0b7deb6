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
	"testing"

	"github.com/plumenote/plume/pkg/assert"
)

func TestProtectNote(t *testing.T) {
	s, f, c := newTestSession(t)
	f.seedCategories()
	f.seedNote("n1", "journal", "private thoughts", "Personal", nil, c.Now())
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	if err := s.ProtectNote("n1", "s3cret"); err != nil {
		t.Fatal(err)
	}

	got := s.Notes()[0]
	assert.Equal(t, got.IsProtected, true, "protected flag mismatch")
	assert.NotEqual(t, got.Password, "", "hash should be stored")
	assert.NotEqual(t, got.Password, "s3cret", "the raw password must not be stored")

	assert.Equal(t, s.VerifyNotePassword("n1", "s3cret"), true, "correct password should verify")
	assert.Equal(t, s.VerifyNotePassword("n1", "wrong"), false, "wrong password should not verify")
}

func TestUnprotectNote(t *testing.T) {
	s, f, c := newTestSession(t)
	f.seedCategories()
	f.seedNote("n1", "journal", "private thoughts", "Personal", nil, c.Now())
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	if err := s.ProtectNote("n1", "s3cret"); err != nil {
		t.Fatal(err)
	}

	err := s.UnprotectNote("n1", "wrong")
	assert.Equal(t, err, ErrWrongPassword, "error mismatch")
	assert.Equal(t, s.Notes()[0].IsProtected, true, "protection should survive a wrong password")

	if err := s.UnprotectNote("n1", "s3cret"); err != nil {
		t.Fatal(err)
	}
	got := s.Notes()[0]
	assert.Equal(t, got.IsProtected, false, "protected flag mismatch")
	assert.Equal(t, got.Password, "", "hash should be cleared")
}

func TestVerifyNotePassword_unprotected(t *testing.T) {
	s, f, c := newTestSession(t)
	f.seedCategories()
	f.seedNote("n1", "groceries", "milk", "Personal", nil, c.Now())
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, s.VerifyNotePassword("n1", "anything"), true, "unprotected note should accept any password")
	assert.Equal(t, s.VerifyNotePassword("no-such-id", "anything"), false, "unknown id should not verify")
}
