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
	"testing"

	"github.com/pkg/errors"

	"github.com/plumenote/plume/pkg/assert"
	"github.com/plumenote/plume/pkg/auth"
	"github.com/plumenote/plume/pkg/notes"
)

func TestCreateAttachment_noteNotFound(t *testing.T) {
	s, _ := newTestStore(t, "user-1")

	_, err := s.CreateAttachment("nonexistent", notes.Attachment{Name: "a.png"})
	assert.Equal(t, errors.Is(err, ErrNotFound), true, "expected ErrNotFound")
}

func TestDeleteAttachment(t *testing.T) {
	s, _ := newTestStore(t, "user-1")

	n, err := s.CreateNote(notes.Note{Title: "with file"})
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating note"))
	}
	a, err := s.CreateAttachment(n.ID, notes.Attachment{Name: "scan.pdf", Type: "application/pdf", Size: 2048, URL: "https://files/scan.pdf"})
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating attachment"))
	}

	if err := s.DeleteAttachment(a.ID); err != nil {
		t.Fatal(errors.Wrap(err, "deleting attachment"))
	}

	var count int64
	if err := s.DB.Model(&Attachment{}).Count(&count).Error; err != nil {
		t.Fatal(errors.Wrap(err, "counting attachments"))
	}
	assert.Equal(t, count, int64(0), "attachment count mismatch")
}

func TestDeleteAttachment_otherUser(t *testing.T) {
	s, _ := newTestStore(t, "user-1")

	n, err := s.CreateNote(notes.Note{Title: "with file"})
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating note"))
	}
	a, err := s.CreateAttachment(n.ID, notes.Attachment{Name: "scan.pdf"})
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating attachment"))
	}

	other := New(s.DB, auth.NewStatic(&auth.User{ID: "user-2"}), s.Clock)
	err = other.DeleteAttachment(a.ID)
	assert.Equal(t, errors.Is(err, ErrNotFound), true, "expected ErrNotFound for an id/user mismatch")
}
