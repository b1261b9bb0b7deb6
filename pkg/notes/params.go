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

package notes

// NoteParams is a partial update for a note. A nil field leaves the
// corresponding column untouched.
type NoteParams struct {
	Title       *string
	Content     *string
	Tags        *[]string
	Category    *string
	IsFavorite  *bool
	IsArchived  *bool
	IsProtected *bool
	Password    *string
}

// GetTitle gets the title from the NoteParams
func (p NoteParams) GetTitle() string {
	if p.Title == nil {
		return ""
	}

	return *p.Title
}

// GetCategory gets the category name from the NoteParams
func (p NoteParams) GetCategory() string {
	if p.Category == nil {
		return ""
	}

	return *p.Category
}

// CategoryParams is a partial update for a category. A nil field leaves the
// corresponding column untouched. An empty ParentID clears the parent link.
type CategoryParams struct {
	Name     *string
	Color    *string
	ParentID *string
}

// GetName gets the name from the CategoryParams
func (p CategoryParams) GetName() string {
	if p.Name == nil {
		return ""
	}

	return *p.Name
}

// StringPtr returns a pointer to the given string, for building params
func StringPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to the given bool, for building params
func BoolPtr(b bool) *bool {
	return &b
}

// TagsPtr returns a pointer to the given tags, for building params
func TagsPtr(tags []string) *[]string {
	return &tags
}
