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

	"github.com/plumenote/plume/pkg/notes"
)

const (
	msgCreateCategoryFailed = "Impossible de créer la catégorie"
	msgUpdateCategoryFailed = "Impossible de mettre à jour la catégorie"
	msgDeleteCategoryFailed = "Impossible de supprimer la catégorie"
)

// AddCategory creates a category with the given name, color and optional
// parent, and appends the confirmed row to the canonical collection
func (s *Session) AddCategory(name, color, parentID string) (notes.Category, error) {
	s.beginOp()
	defer s.endOp()

	created, err := s.store.CreateCategory(notes.Category{
		Name:     name,
		Color:    color,
		ParentID: parentID,
	})
	if err != nil {
		s.recordErr(msgCreateCategoryFailed)
		return notes.Category{}, errors.Wrap(err, "creating category")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = append(s.categories, created)

	return created, nil
}

// UpdateCategory applies the given partial update to the category with the
// given id. Notes referencing the category by its old name keep the old
// name; the next write through the adapter re-resolves them.
func (s *Session) UpdateCategory(id string, p notes.CategoryParams) (notes.Category, error) {
	s.beginOp()
	defer s.endOp()

	updated, err := s.store.UpdateCategory(id, p)
	if err != nil {
		s.recordErr(msgUpdateCategoryFailed)
		return notes.Category{}, errors.Wrapf(err, "updating category %s", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, c := range s.categories {
		if c.ID == id {
			s.categories[idx] = updated
			break
		}
	}

	return updated, nil
}

// DeleteCategory deletes the category with the given id. Notes referencing
// it are reassigned to the default category remotely first, so no note ever
// points at a category that no longer exists; the remote delete happens
// only after every reassignment succeeded. An unknown id is a no-op.
func (s *Session) DeleteCategory(id string) error {
	s.beginOp()
	defer s.endOp()

	s.mu.Lock()
	var target *notes.Category
	for idx, c := range s.categories {
		if c.ID == id {
			target = &s.categories[idx]
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		return nil
	}
	name := target.Name

	var referencing []string
	for _, n := range s.notes {
		if n.Category == name {
			referencing = append(referencing, n.ID)
		}
	}
	s.mu.Unlock()

	if name != notes.DefaultCategoryName {
		fallback := notes.StringPtr(notes.DefaultCategoryName)
		for _, noteID := range referencing {
			updated, err := s.store.UpdateNote(noteID, notes.NoteParams{Category: fallback})
			if err != nil {
				s.recordErr(msgDeleteCategoryFailed)
				return errors.Wrapf(err, "reassigning note %s", noteID)
			}

			s.mu.Lock()
			if idx := s.findNoteLocked(noteID); idx != -1 {
				s.notes[idx] = updated
			}
			s.mu.Unlock()
		}
	}

	if err := s.store.DeleteCategory(id); err != nil {
		s.recordErr(msgDeleteCategoryFailed)
		return errors.Wrapf(err, "deleting category %s", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, c := range s.categories {
		if c.ID == id {
			s.categories = append(s.categories[:idx], s.categories[idx+1:]...)
			break
		}
	}

	return nil
}
