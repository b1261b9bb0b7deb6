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
	"time"

	"github.com/plumenote/plume/pkg/assert"
	"github.com/plumenote/plume/pkg/notes"
	"github.com/plumenote/plume/pkg/store"
)

func TestCreateNote(t *testing.T) {
	s, f, _ := newTestSession(t)
	f.seedCategories()
	f.seedNote("n1", "groceries", "milk", "Personal", nil, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC))
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	created, err := s.CreateNote()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, created.Title, "Nouvelle note", "title mismatch")
	assert.Equal(t, created.Category, "Personal", "category mismatch")
	assert.NotEqual(t, created.ID, "", "id should be assigned")

	got := s.Notes()
	assert.Equalf(t, len(got), 2, "note count mismatch")
	assert.Equal(t, got[0].ID, created.ID, "new note should come first")

	sel := s.SelectedNote()
	if sel == nil {
		t.Fatal("expected the new note to be selected")
	}
	assert.Equal(t, sel.ID, created.ID, "selection mismatch")
}

func TestCreateNote_failure(t *testing.T) {
	s, f, _ := newTestSession(t)
	f.seedCategories()
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	f.failOn("CreateNote", store.ErrRemoteUnavailable)

	_, err := s.CreateNote()
	assert.NotEqual(t, err, nil, "expected an error")
	assert.Equal(t, s.Err(), "Impossible de créer la note", "error message mismatch")
	assert.Equal(t, s.Status(), StatusReady, "a failed write should not fail the session")
	assert.Equal(t, len(s.Notes()), 0, "no note should appear on failure")
	assert.Equal(t, s.SelectedNote() == nil, true, "no selection should appear on failure")
}

func TestUpdateNote(t *testing.T) {
	s, f, c := newTestSession(t)
	f.seedCategories()
	f.seedNote("n1", "groceries", "milk", "Personal", nil, c.Now())
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	c.SetNow(c.Now().Add(time.Hour))
	updated, err := s.UpdateNote("n1", notes.NoteParams{
		Title:    notes.StringPtr("shopping"),
		Category: notes.StringPtr("Work"),
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, updated.Title, "shopping", "title mismatch")
	assert.Equal(t, updated.Category, "Work", "category mismatch")
	assert.Equal(t, updated.Content, "milk", "content should be preserved")

	got := s.Notes()
	assert.Equalf(t, len(got), 1, "note count mismatch")
	assert.DeepEqual(t, got[0], updated, "canonical entry should be the confirmed row")
}

func TestUpdateNote_failure(t *testing.T) {
	s, f, c := newTestSession(t)
	f.seedCategories()
	f.seedNote("n1", "groceries", "milk", "Personal", []string{"errand"}, c.Now())
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	before := s.Notes()[0]
	f.failOn("UpdateNote", store.ErrRemoteUnavailable)

	_, err := s.UpdateNote("n1", notes.NoteParams{Title: notes.StringPtr("shopping")})
	assert.NotEqual(t, err, nil, "expected an error")
	assert.Equal(t, s.Err(), "Impossible de mettre à jour la note", "error message mismatch")

	after := s.Notes()[0]
	assert.DeepEqual(t, after, before, "a failed update should leave the entry untouched")
}

func TestDeleteNote(t *testing.T) {
	s, f, c := newTestSession(t)
	f.seedCategories()
	f.seedNote("n1", "groceries", "milk", "Personal", nil, c.Now())
	f.seedNote("n2", "standup", "notes", "Work", nil, c.Now())
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	s.SelectNote("n1")

	err := s.DeleteNote("n1")
	if err != nil {
		t.Fatal(err)
	}

	got := s.Notes()
	assert.Equalf(t, len(got), 1, "note count mismatch")
	assert.Equal(t, got[0].ID, "n2", "remaining note mismatch")
	assert.Equal(t, s.SelectedNote() == nil, true, "selection should be cleared")
	assert.Equal(t, len(f.notes), 1, "remote note count mismatch")
}

func TestDeleteNote_failure(t *testing.T) {
	s, f, c := newTestSession(t)
	f.seedCategories()
	f.seedNote("n1", "groceries", "milk", "Personal", nil, c.Now())
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	f.failOn("DeleteNote", store.ErrRemoteUnavailable)

	err := s.DeleteNote("n1")
	assert.NotEqual(t, err, nil, "expected an error")
	assert.Equal(t, s.Err(), "Impossible de supprimer la note", "error message mismatch")
	assert.Equal(t, len(s.Notes()), 1, "the note should survive a failed delete")
}

func TestToggleFavorite(t *testing.T) {
	s, f, c := newTestSession(t)
	f.seedCategories()
	f.seedNote("n1", "groceries", "milk", "Personal", nil, c.Now())
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	if err := s.ToggleFavorite("n1"); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, s.Notes()[0].IsFavorite, true, "favorite flag mismatch")

	if err := s.ToggleFavorite("n1"); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, s.Notes()[0].IsFavorite, false, "favorite flag mismatch after second toggle")

	// unknown id is a no-op
	if err := s.ToggleFavorite("no-such-id"); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, f.calls["UpdateNote"], 2, "update call count mismatch")
}

func TestToggleArchive(t *testing.T) {
	s, f, c := newTestSession(t)
	f.seedCategories()
	f.seedNote("n1", "groceries", "milk", "Personal", nil, c.Now())
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	if err := s.ToggleArchive("n1"); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, s.Notes()[0].IsArchived, true, "archived flag mismatch")
}
