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
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/plumenote/plume/pkg/helpers"
	"github.com/plumenote/plume/pkg/notes"
)

// ImportFile is one file handed to ImportNotes. Reading the content off
// disk is the caller's concern.
type ImportFile struct {
	Name    string
	Content string
}

// ImportNotes turns the given files into notes and prepends them to the
// canonical collection, newest first. The title is the file name without
// its extension; tags, category and flags take the default values. The
// notes stay local-only unless AutoPersistImports is set, in which case
// each one is persisted as it is read and a failed persist keeps the note
// local rather than dropping it.
func (s *Session) ImportNotes(files []ImportFile) ([]notes.Note, error) {
	s.beginOp()
	defer s.endOp()

	imported := make([]notes.Note, 0, len(files))
	for _, f := range files {
		id, err := helpers.GenUUID()
		if err != nil {
			return imported, errors.Wrap(err, "generating note id")
		}

		n := notes.New(id, s.clock.Now())
		n.Title = notes.NormalizeTitle(titleFromFilename(f.Name))
		n.Content = f.Content

		if s.opts.AutoPersistImports {
			if created, err := s.store.CreateNote(n); err == nil {
				n = created
			}
		}

		s.mu.Lock()
		s.notes = append([]notes.Note{n}, s.notes...)
		s.mu.Unlock()

		imported = append(imported, n)
	}

	return imported, nil
}

// titleFromFilename strips the directory and extension from a file name
func titleFromFilename(name string) string {
	base := filepath.Base(name)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
