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
	"github.com/plumenote/plume/pkg/clock"
	"github.com/plumenote/plume/pkg/store"
)

func TestImportNotes(t *testing.T) {
	s, f, _ := newTestSession(t)
	f.seedCategories()
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	imported, err := s.ImportNotes([]ImportFile{
		{Name: "meeting-notes.txt", Content: "standup summary"},
		{Name: "ideas.md", Content: "a list of ideas"},
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equalf(t, len(imported), 2, "imported count mismatch")
	assert.Equal(t, imported[0].Title, "meeting-notes", "title mismatch")
	assert.Equal(t, imported[0].Content, "standup summary", "content mismatch")
	assert.Equal(t, imported[0].Category, "Personal", "category mismatch")
	assert.Equal(t, imported[1].Title, "ideas", "second title mismatch")

	// imports stay local-only by default
	assert.Equal(t, f.calls["CreateNote"], 0, "imports should not hit the store")
	got := s.Notes()
	assert.Equalf(t, len(got), 2, "note count mismatch")
	assert.Equal(t, got[0].Title, "ideas", "newest import should come first")
}

func TestImportNotes_autoPersist(t *testing.T) {
	c := clock.NewMock()
	c.SetNow(time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC))
	f := newFakeStore(c)
	f.seedCategories()
	s := NewSession(f, c, Options{AutoPersistImports: true})
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	imported, err := s.ImportNotes([]ImportFile{
		{Name: "meeting-notes.txt", Content: "standup summary"},
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, f.calls["CreateNote"], 1, "import should be persisted")
	note, err := f.GetNote(imported[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if note == nil {
		t.Fatal("expected the note to exist remotely")
	}
	assert.Equal(t, note.Title, "meeting-notes", "remote title mismatch")
}

func TestImportNotes_persistFailureKeepsLocal(t *testing.T) {
	c := clock.NewMock()
	c.SetNow(time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC))
	f := newFakeStore(c)
	f.seedCategories()
	s := NewSession(f, c, Options{AutoPersistImports: true})
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	f.failOn("CreateNote", store.ErrRemoteUnavailable)

	imported, err := s.ImportNotes([]ImportFile{
		{Name: "meeting-notes.txt", Content: "standup summary"},
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equalf(t, len(imported), 1, "imported count mismatch")
	assert.Equal(t, len(s.Notes()), 1, "the note should be kept locally")
	assert.Equal(t, len(f.notes), 0, "the note should not exist remotely")
}

func TestTitleFromFilename(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "meeting-notes.txt", expected: "meeting-notes"},
		{input: "/tmp/exports/ideas.md", expected: "ideas"},
		{input: "plain", expected: "plain"},
		{input: "archive.tar.gz", expected: "archive.tar"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, titleFromFilename(tc.input), tc.expected, "title mismatch")
		})
	}
}
