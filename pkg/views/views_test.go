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

package views

import (
	"slices"
	"testing"
	"time"

	"github.com/plumenote/plume/pkg/assert"
	"github.com/plumenote/plume/pkg/notes"
)

func titles(collection []notes.Note) []string {
	ret := []string{}
	for _, n := range collection {
		ret = append(ret, n.Title)
	}

	return ret
}

func TestSort_title(t *testing.T) {
	collection := []notes.Note{
		{ID: "1", Title: "charlie"},
		{ID: "2", Title: "alpha"},
		{ID: "3", Title: "bravo"},
	}

	asc := Sort(collection, notes.SortByTitle, notes.OrderAsc)
	assert.DeepEqual(t, titles(asc), []string{"alpha", "bravo", "charlie"}, "ascending title order mismatch")

	desc := Sort(collection, notes.SortByTitle, notes.OrderDesc)
	assert.DeepEqual(t, titles(desc), []string{"charlie", "bravo", "alpha"}, "descending order should be the exact reverse for unique titles")

	// the input must not be mutated
	assert.DeepEqual(t, titles(collection), []string{"charlie", "alpha", "bravo"}, "input collection should be untouched")
}

func TestSort_caseSensitive(t *testing.T) {
	collection := []notes.Note{
		{ID: "1", Title: "apple"},
		{ID: "2", Title: "Banana"},
	}

	got := Sort(collection, notes.SortByTitle, notes.OrderAsc)
	// uppercase sorts before lowercase in a case-sensitive lexical compare
	assert.DeepEqual(t, titles(got), []string{"Banana", "apple"}, "compare should be case-sensitive")
}

func TestSort_stableTies(t *testing.T) {
	collection := []notes.Note{
		{ID: "1", Title: "same"},
		{ID: "2", Title: "same"},
		{ID: "3", Title: "same"},
	}

	for _, order := range []notes.SortOrder{notes.OrderAsc, notes.OrderDesc} {
		got := Sort(collection, notes.SortByTitle, order)

		ids := []string{}
		for _, n := range got {
			ids = append(ids, n.ID)
		}
		assert.DeepEqual(t, ids, []string{"1", "2", "3"}, "ties should keep insertion order")
	}
}

func TestSort_timestamps(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	collection := []notes.Note{
		{ID: "1", CreatedAt: t0.Add(2 * time.Hour), UpdatedAt: t0},
		{ID: "2", CreatedAt: t0, UpdatedAt: t0.Add(3 * time.Hour)},
		{ID: "3", CreatedAt: t0.Add(time.Hour), UpdatedAt: t0.Add(time.Hour)},
	}

	byCreated := Sort(collection, notes.SortByCreatedAt, notes.OrderAsc)
	assert.Equal(t, byCreated[0].ID, "2", "createdAt ascending mismatch")
	assert.Equal(t, byCreated[2].ID, "1", "createdAt ascending mismatch")

	byUpdated := Sort(collection, notes.SortByUpdatedAt, notes.OrderDesc)
	assert.Equal(t, byUpdated[0].ID, "2", "updatedAt descending mismatch")
	assert.Equal(t, byUpdated[2].ID, "1", "updatedAt descending mismatch")
}

func TestFilter(t *testing.T) {
	collection := []notes.Note{
		{ID: "1", Category: "Work", Tags: []string{"go", "review"}, IsFavorite: true},
		{ID: "2", Category: "Work", Tags: []string{"go"}},
		{ID: "3", Category: "Personal", Tags: []string{"go", "review"}, IsArchived: true},
	}

	testCases := []struct {
		filters  Filters
		expected []string
	}{
		{
			filters:  Filters{},
			expected: []string{"1", "2", "3"},
		},
		{
			filters:  Filters{Category: "Work"},
			expected: []string{"1", "2"},
		},
		{
			filters:  Filters{Tags: []string{"go", "review"}},
			expected: []string{"1", "3"},
		},
		{
			filters:  Filters{IsFavorite: notes.BoolPtr(true)},
			expected: []string{"1"},
		},
		{
			filters:  Filters{IsArchived: notes.BoolPtr(false)},
			expected: []string{"1", "2"},
		},
		{
			filters:  Filters{Category: "Work", Tags: []string{"review"}},
			expected: []string{"1"},
		},
	}

	for idx, tc := range testCases {
		got := Filter(collection, tc.filters)

		ids := []string{}
		for _, n := range got {
			ids = append(ids, n.ID)
		}

		if !slices.Equal(ids, tc.expected) {
			t.Errorf("case %d: got %v, expected %v", idx, ids, tc.expected)
		}
	}
}

func TestProject_restartable(t *testing.T) {
	collection := []notes.Note{
		{ID: "1", Title: "bravo"},
		{ID: "2", Title: "alpha"},
	}

	seq := Project(collection, notes.SortByTitle, notes.OrderAsc, Filters{})

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.DeepEqual(t, titles(first), []string{"alpha", "bravo"}, "projection order mismatch")
	assert.DeepEqual(t, second, first, "the sequence should be restartable")
}

func TestCategoryCounts(t *testing.T) {
	collection := []notes.Note{
		{ID: "1", Category: "Work"},
		{ID: "2", Category: "Work"},
		{ID: "3", Category: "Personal"},
	}

	got := CategoryCounts(collection)
	assert.DeepEqual(t, got, map[string]int{"Work": 2, "Personal": 1}, "category counts mismatch")
}

func TestParentChain(t *testing.T) {
	categories := []notes.Category{
		{ID: "1", Name: "Projects"},
		{ID: "2", Name: "Go", ParentID: "1"},
		{ID: "3", Name: "Plume", ParentID: "2"},
	}

	got := ParentChain(categories, "3")

	names := []string{}
	for _, c := range got {
		names = append(names, c.Name)
	}
	assert.DeepEqual(t, names, []string{"Plume", "Go", "Projects"}, "parent chain mismatch")
}

func TestParentChain_cycle(t *testing.T) {
	categories := []notes.Category{
		{ID: "1", Name: "A", ParentID: "2"},
		{ID: "2", Name: "B", ParentID: "1"},
	}

	got := ParentChain(categories, "1")
	assert.Equal(t, len(got), maxCategoryDepth, "a cyclic hierarchy should be cut at the depth bound")
}
