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

	"github.com/pkg/errors"

	"github.com/plumenote/plume/pkg/assert"
)

func TestExportNote_txt(t *testing.T) {
	s, f, _ := newTestSession(t)
	f.seedCategories()
	f.seedNote("n1", "groceries", "milk\neggs", "Personal", nil, time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC))
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	got, err := s.ExportNote("n1", ExportTxt)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, got.Filename, "groceries.txt", "filename mismatch")
	assert.Equal(t, got.MimeType, "text/plain", "mime type mismatch")
	assert.Equal(t, got.Content, "groceries\n\nmilk\neggs", "content mismatch")
}

func TestExportNote_md(t *testing.T) {
	s, f, _ := newTestSession(t)
	f.seedCategories()
	f.seedNote("n1", "groceries", "milk", "Personal", []string{"errand", "weekly"}, time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC))
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	got, err := s.ExportNote("n1", ExportMd)
	if err != nil {
		t.Fatal(err)
	}

	expected := `# groceries

milk

---

Tags: errand, weekly
Catégorie: Personal
Créé le: 15/03/2025 09:30`

	assert.Equal(t, got.Filename, "groceries.md", "filename mismatch")
	assert.Equal(t, got.MimeType, "text/markdown", "mime type mismatch")
	assert.Equal(t, got.Content, expected, "content mismatch")
}

func TestExportNote_pdf(t *testing.T) {
	s, f, c := newTestSession(t)
	f.seedCategories()
	f.seedNote("n1", "groceries", "milk", "Personal", nil, c.Now())
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	_, err := s.ExportNote("n1", ExportPdf)
	assert.Equal(t, errors.Cause(err), ErrExportFormatUnsupported, "error mismatch")
}

func TestExportNote_unknownID(t *testing.T) {
	s, f, _ := newTestSession(t)
	f.seedCategories()
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	_, err := s.ExportNote("no-such-id", ExportTxt)
	assert.Equal(t, errors.Cause(err), ErrNoteNotFound, "error mismatch")
}
