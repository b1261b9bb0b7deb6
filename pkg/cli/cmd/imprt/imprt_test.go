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

package imprt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plumenote/plume/pkg/assert"
)

func TestIsImportable(t *testing.T) {
	testCases := []struct {
		path     string
		expected bool
	}{
		{path: "notes.txt", expected: true},
		{path: "inbox/idea.md", expected: true},
		{path: "inbox/idea.MD", expected: false},
		{path: "photo.jpg", expected: false},
		{path: "archive.tar.gz", expected: false},
		{path: "README", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, isImportable(tc.path), tc.expected, "importable mismatch")
		})
	}
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()

	p1 := filepath.Join(dir, "groceries.txt")
	if err := os.WriteFile(p1, []byte("milk\neggs"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	p2 := filepath.Join(dir, "meeting.md")
	if err := os.WriteFile(p2, []byte("# agenda"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	files, err := readFiles([]string{p1, p2})
	if err != nil {
		t.Fatalf("reading files: %v", err)
	}

	assert.Equal(t, len(files), 2, "file count mismatch")
	assert.Equal(t, files[0].Name, p1, "first name mismatch")
	assert.Equal(t, files[0].Content, "milk\neggs", "first content mismatch")
	assert.Equal(t, files[1].Name, p2, "second name mismatch")
	assert.Equal(t, files[1].Content, "# agenda", "second content mismatch")
}

func TestReadFiles_missing(t *testing.T) {
	_, err := readFiles([]string{filepath.Join(t.TempDir(), "nope.txt")})
	if err == nil {
		t.Fatal("expected an error")
	}
}
