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
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/plumenote/plume/pkg/notes"
)

// ErrNoteNotFound is an error for an id absent from the canonical collection
var ErrNoteNotFound = errors.New("note not found")

// ErrExportFormatUnsupported is an error for an export format with no
// defined transformation
var ErrExportFormatUnsupported = errors.New("export format not supported")

// Export formats
const (
	ExportTxt = "txt"
	ExportMd  = "md"
	// ExportPdf is accepted by the interface but has no transformation yet
	ExportPdf = "pdf"
)

// Export is a downloadable payload derived from a single note
type Export struct {
	Filename string
	MimeType string
	Content  string
}

// ExportNote derives a downloadable payload from the note with the given
// id. The session state is not mutated. Requesting the pdf format returns
// ErrExportFormatUnsupported, as does any unknown format.
func (s *Session) ExportNote(id, format string) (Export, error) {
	s.mu.Lock()
	idx := s.findNoteLocked(id)
	if idx == -1 {
		s.mu.Unlock()
		return Export{}, errors.Wrapf(ErrNoteNotFound, "exporting note %s", id)
	}
	n := s.notes[idx]
	s.mu.Unlock()

	switch format {
	case ExportTxt:
		return Export{
			Filename: fmt.Sprintf("%s.txt", n.Title),
			MimeType: "text/plain",
			Content:  fmt.Sprintf("%s\n\n%s", n.Title, n.Content),
		}, nil
	case ExportMd:
		return Export{
			Filename: fmt.Sprintf("%s.md", n.Title),
			MimeType: "text/markdown",
			Content:  renderMarkdown(n),
		}, nil
	default:
		return Export{}, errors.Wrapf(ErrExportFormatUnsupported, "exporting note %s as %s", id, format)
	}
}

// renderMarkdown renders a note as a markdown document with a trailing
// metadata block
func renderMarkdown(n notes.Note) string {
	return fmt.Sprintf(`# %s

%s

---

Tags: %s
Catégorie: %s
Créé le: %s`,
		n.Title,
		n.Content,
		strings.Join(n.Tags, ", "),
		n.Category,
		n.CreatedAt.Format("02/01/2006 15:04"))
}
