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

// Package views derives read-only projections of the canonical note and
// category collections. Projections never mutate their inputs and are
// deterministic given identical inputs.
package views

import (
	"iter"
	"slices"
	"strings"

	"github.com/plumenote/plume/pkg/notes"
)

// maxCategoryDepth bounds parent chain traversal so that a cyclic or
// degenerate hierarchy cannot loop forever
const maxCategoryDepth = 10

// Filters selects a subset of notes. Zero-valued fields do not filter.
type Filters struct {
	// Category matches notes carrying exactly this category name
	Category string
	// Tags matches notes carrying every listed tag
	Tags []string
	// IsFavorite, when set, matches notes whose favorite flag equals it
	IsFavorite *bool
	// IsArchived, when set, matches notes whose archived flag equals it
	IsArchived *bool
}

// Match checks if the given note passes the filters
func Match(n notes.Note, f Filters) bool {
	if f.Category != "" && n.Category != f.Category {
		return false
	}
	for _, tag := range f.Tags {
		if !n.HasTag(tag) {
			return false
		}
	}
	if f.IsFavorite != nil && n.IsFavorite != *f.IsFavorite {
		return false
	}
	if f.IsArchived != nil && n.IsArchived != *f.IsArchived {
		return false
	}

	return true
}

// Filter returns the notes passing the filters, in collection order
func Filter(collection []notes.Note, f Filters) []notes.Note {
	ret := []notes.Note{}
	for _, n := range collection {
		if Match(n, f) {
			ret = append(ret, n)
		}
	}

	return ret
}

func compare(a, b notes.Note, by notes.SortBy) int {
	switch by {
	case notes.SortByTitle:
		return strings.Compare(a.Title, b.Title)
	case notes.SortByCategory:
		return strings.Compare(a.Category, b.Category)
	case notes.SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	}
}

// Sort returns a new slice ordered by the given field and direction. The
// sort is stable: ties keep the original collection order regardless of
// direction.
func Sort(collection []notes.Note, by notes.SortBy, order notes.SortOrder) []notes.Note {
	ret := make([]notes.Note, len(collection))
	copy(ret, collection)

	slices.SortStableFunc(ret, func(a, b notes.Note) int {
		cmp := compare(a, b, by)
		if order == notes.OrderDesc {
			return -cmp
		}
		return cmp
	})

	return ret
}

// Project derives the sorted, filtered note sequence from the canonical
// collection. The sequence is lazy and restartable; each iteration walks
// a snapshot taken at call time.
func Project(collection []notes.Note, by notes.SortBy, order notes.SortOrder, f Filters) iter.Seq[notes.Note] {
	projected := Sort(Filter(collection, f), by, order)

	return func(yield func(notes.Note) bool) {
		for _, n := range projected {
			if !yield(n) {
				return
			}
		}
	}
}

// CategoryCounts returns the number of notes carrying each category name
func CategoryCounts(collection []notes.Note) map[string]int {
	ret := map[string]int{}
	for _, n := range collection {
		ret[n.Category]++
	}

	return ret
}

// ParentChain returns the category and its ancestors, nearest first. The
// chain is cut at a fixed depth bound; the source hierarchy carries no
// acyclicity guarantee.
func ParentChain(categories []notes.Category, id string) []notes.Category {
	byID := make(map[string]notes.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	ret := []notes.Category{}
	current := id
	for i := 0; i < maxCategoryDepth; i++ {
		c, ok := byID[current]
		if !ok {
			break
		}
		ret = append(ret, c)

		if c.ParentID == "" {
			break
		}
		current = c.ParentID
	}

	return ret
}
