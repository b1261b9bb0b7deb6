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

// SortBy is a field a note collection can be ordered by
type SortBy string

// SortOrder is a direction a note collection can be ordered in
type SortOrder string

const (
	// SortByTitle orders notes by title, case-sensitive lexical compare
	SortByTitle SortBy = "title"
	// SortByCategory orders notes by category name, case-sensitive lexical compare
	SortByCategory SortBy = "category"
	// SortByCreatedAt orders notes by creation timestamp
	SortByCreatedAt SortBy = "createdAt"
	// SortByUpdatedAt orders notes by last-modified timestamp
	SortByUpdatedAt SortBy = "updatedAt"

	// OrderAsc sorts in ascending order
	OrderAsc SortOrder = "asc"
	// OrderDesc sorts in descending order
	OrderDesc SortOrder = "desc"
)
