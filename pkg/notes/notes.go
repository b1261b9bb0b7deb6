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

// Package notes defines the client-facing note and category model.
// Notes carry their category by name rather than by foreign key; the
// store adapter resolves names to identifiers on every write.
package notes

import (
	"strings"
	"time"
)

// DefaultTitle is the placeholder title given to a note created or
// normalized with an empty title.
const DefaultTitle = "Nouvelle note"

// DefaultCategoryName is the reserved category a note falls back to when
// its category reference does not resolve.
const DefaultCategoryName = "Personal"

// Attachment is the metadata of a file attached to a note. The binary
// content lives elsewhere; only the retrieval URL is kept here.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// Note is a note as seen by the client
type Note struct {
	ID          string       `json:"id"`
	Title       string       `json:"title" validate:"max=200"`
	Content     string       `json:"content"`
	Tags        []string     `json:"tags" validate:"dive,max=64"`
	Category    string       `json:"category"`
	IsFavorite  bool         `json:"isFavorite"`
	IsArchived  bool         `json:"isArchived"`
	IsProtected bool         `json:"isProtected"`
	// Password holds the bcrypt hash guarding a protected note
	Password    string       `json:"password,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Attachments []Attachment `json:"attachments"`
}

// Category is a category as seen by the client. Names are expected, but not
// enforced, to be unique per user.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required,max=64"`
	Color    string `json:"color" validate:"omitempty,hexcolor"`
	ParentID string `json:"parentId,omitempty"`
}

// New constructs a note with the default field values
func New(id string, now time.Time) Note {
	return Note{
		ID:          id,
		Title:       DefaultTitle,
		Content:     "",
		Tags:        []string{},
		Category:    DefaultCategoryName,
		CreatedAt:   now,
		UpdatedAt:   now,
		Attachments: []Attachment{},
	}
}

// NormalizeTitle trims the given title and coerces an empty result to the
// default placeholder
func NormalizeTitle(title string) string {
	ret := strings.TrimSpace(title)
	if ret == "" {
		return DefaultTitle
	}

	return ret
}

// AddTag appends the given tag to the note's tags, preserving the user
// order and suppressing duplicates
func (n *Note) AddTag(tag string) {
	for _, t := range n.Tags {
		if t == tag {
			return
		}
	}

	n.Tags = append(n.Tags, tag)
}

// HasTag checks if the note carries the given tag
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}

	return false
}

// DefaultCategories returns the bootstrap set of categories for a user that
// has none. Identifiers are assigned by the remote store on creation.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Personal", Color: "#3B82F6"},
		{Name: "Work", Color: "#10B981"},
		{Name: "Projects", Color: "#F59E0B"},
		{Name: "Ideas", Color: "#8B5CF6"},
	}
}
