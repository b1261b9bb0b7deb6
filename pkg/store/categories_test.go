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

func TestListCategories(t *testing.T) {
	s, _ := newTestStore(t, "user-1")

	mustCreateCategory(t, s, "Work", "#10B981")
	mustCreateCategory(t, s, "Ideas", "#8B5CF6")
	mustCreateCategory(t, s, "Personal", "#3B82F6")

	other := New(s.DB, auth.NewStatic(&auth.User{ID: "user-2"}), s.Clock)
	if _, err := other.CreateCategory(notes.Category{Name: "Theirs"}); err != nil {
		t.Fatal(errors.Wrap(err, "creating category for other user"))
	}

	got, err := s.ListCategories()
	if err != nil {
		t.Fatal(errors.Wrap(err, "listing categories"))
	}

	assert.Equalf(t, len(got), 3, "category count mismatch")
	assert.Equal(t, got[0].Name, "Ideas", "categories should be ordered by name")
	assert.Equal(t, got[1].Name, "Personal", "categories should be ordered by name")
	assert.Equal(t, got[2].Name, "Work", "categories should be ordered by name")
}

func TestCreateCategory_invalid(t *testing.T) {
	s, _ := newTestStore(t, "user-1")

	testCases := []struct {
		name  string
		color string
	}{
		{
			name:  "",
			color: "#3B82F6",
		},
		{
			name:  "Personal",
			color: "not-a-color",
		},
	}

	for idx, tc := range testCases {
		_, err := s.CreateCategory(notes.Category{Name: tc.name, Color: tc.color})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("case %d: expected ErrValidation but got %v", idx, err)
		}
	}
}

func TestUpdateCategory(t *testing.T) {
	s, _ := newTestStore(t, "user-1")

	parent := mustCreateCategory(t, s, "Projects", "#F59E0B")
	cat := mustCreateCategory(t, s, "Side projects", "#F59E0B")

	got, err := s.UpdateCategory(cat.ID, notes.CategoryParams{
		Name:     notes.StringPtr("Hobby projects"),
		ParentID: notes.StringPtr(parent.ID),
	})
	if err != nil {
		t.Fatal(errors.Wrap(err, "updating category"))
	}

	assert.Equal(t, got.Name, "Hobby projects", "name mismatch")
	assert.Equal(t, got.Color, "#F59E0B", "untouched color should be preserved")
	assert.Equal(t, got.ParentID, parent.ID, "parent id mismatch")

	// an empty parent id clears the link
	got, err = s.UpdateCategory(cat.ID, notes.CategoryParams{ParentID: notes.StringPtr("")})
	if err != nil {
		t.Fatal(errors.Wrap(err, "clearing parent"))
	}
	assert.Equal(t, got.ParentID, "", "parent link should be cleared")
}

func TestUpdateCategory_notFound(t *testing.T) {
	s, _ := newTestStore(t, "user-1")

	_, err := s.UpdateCategory("nonexistent", notes.CategoryParams{Name: notes.StringPtr("x")})
	assert.Equal(t, errors.Is(err, ErrNotFound), true, "expected ErrNotFound")
}

func TestDeleteCategory(t *testing.T) {
	s, _ := newTestStore(t, "user-1")

	cat := mustCreateCategory(t, s, "Work", "#10B981")

	if err := s.DeleteCategory(cat.ID); err != nil {
		t.Fatal(errors.Wrap(err, "deleting category"))
	}

	var count int64
	if err := s.DB.Model(&Category{}).Count(&count).Error; err != nil {
		t.Fatal(errors.Wrap(err, "counting categories"))
	}
	assert.Equal(t, count, int64(0), "category count mismatch")

	err := s.DeleteCategory(cat.ID)
	assert.Equal(t, errors.Is(err, ErrNotFound), true, "expected ErrNotFound on a second delete")
}

func TestCategories_unauthenticated(t *testing.T) {
	s, _ := newTestStore(t, "")

	if _, err := s.ListCategories(); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("ListCategories: expected ErrUnauthenticated but got %v", err)
	}
	if _, err := s.CreateCategory(notes.Category{Name: "x"}); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("CreateCategory: expected ErrUnauthenticated but got %v", err)
	}
	if _, err := s.UpdateCategory("id", notes.CategoryParams{}); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("UpdateCategory: expected ErrUnauthenticated but got %v", err)
	}
	if err := s.DeleteCategory("id"); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("DeleteCategory: expected ErrUnauthenticated but got %v", err)
	}
}
