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

// Package output provides functions to print informations on the terminal
// in a consistent manner
package output

import (
	"fmt"
	"strings"

	"github.com/plumenote/plume/pkg/cli/log"
	"github.com/plumenote/plume/pkg/notes"
)

// noteMarkers returns the status markers for a note
func noteMarkers(n notes.Note) string {
	var ret []string

	if n.IsFavorite {
		ret = append(ret, log.ColorYellow.Sprint("★"))
	}
	if n.IsArchived {
		ret = append(ret, log.ColorGray.Sprint("archived"))
	}
	if n.IsProtected {
		ret = append(ret, log.ColorRed.Sprint("protected"))
	}

	return strings.Join(ret, " ")
}

// NoteLine prints a one-line summary of a note
func NoteLine(n notes.Note) {
	line := fmt.Sprintf("%s %s %s",
		log.ColorYellow.Sprintf("(%s)", shortID(n.ID)),
		n.Title,
		log.ColorGray.Sprintf("[%s]", n.Category),
	)

	if markers := noteMarkers(n); markers != "" {
		line = fmt.Sprintf("%s %s", line, markers)
	}

	log.Plainf("%s\n", line)
}

// NoteList prints a one-line summary for each of the given notes
func NoteList(collection []notes.Note) {
	for _, n := range collection {
		NoteLine(n)
	}
}

// NoteInfo prints a note information
func NoteInfo(n notes.Note) {
	log.Infof("titre: %s\n", n.Title)
	log.Infof("catégorie: %s\n", n.Category)
	if len(n.Tags) > 0 {
		log.Infof("tags: %s\n", strings.Join(n.Tags, ", "))
	}
	log.Infof("créé le: %s\n", n.CreatedAt.Format("02/01/2006 15:04"))
	log.Infof("modifié le: %s\n", n.UpdatedAt.Format("02/01/2006 15:04"))
	log.Infof("note id: %s\n", n.ID)

	if n.IsProtected {
		log.Infof("note protégée\n")
		return
	}

	fmt.Printf("\n------------------------content------------------------\n")
	fmt.Printf("%s", n.Content)
	fmt.Printf("\n-------------------------------------------------------\n")
}

// CategoryInfo prints a category information
func CategoryInfo(c notes.Category, count int) {
	line := fmt.Sprintf("%s %s",
		c.Name,
		log.ColorGray.Sprintf("(%d)", count),
	)

	log.Plainf("%s\n", line)
}

// shortID returns the first segment of a uuid for display
func shortID(id string) string {
	if idx := strings.Index(id, "-"); idx != -1 {
		return id[:idx]
	}

	return id
}
