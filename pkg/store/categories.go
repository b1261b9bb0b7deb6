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
	"github.com/pkg/errors"

	"github.com/plumenote/plume/pkg/helpers"
	"github.com/plumenote/plume/pkg/notes"
)

// ListCategories returns all categories for the user, ordered by name
func (s *Store) ListCategories() ([]notes.Category, error) {
	userID, err := s.userID()
	if err != nil {
		return nil, err
	}
	s.throttle()

	var rows []Category
	if err := s.DB.Where("user_id = ?", userID).Order("name").Find(&rows).Error; err != nil {
		return nil, classify(err)
	}

	ret := make([]notes.Category, 0, len(rows))
	for _, row := range rows {
		ret = append(ret, row.toClient())
	}

	return ret, nil
}

// CreateCategory inserts a category row and returns it
func (s *Store) CreateCategory(c notes.Category) (notes.Category, error) {
	userID, err := s.userID()
	if err != nil {
		return notes.Category{}, err
	}

	if err := notes.ValidateCategory(c); err != nil {
		return notes.Category{}, classify(err)
	}
	s.throttle()

	id := c.ID
	if id == "" {
		id, err = helpers.GenUUID()
		if err != nil {
			return notes.Category{}, errors.Wrap(err, "generating category id")
		}
	}

	now := s.Clock.Now()
	row := Category{
		ID:        id,
		Name:      c.Name,
		Color:     c.Color,
		ParentID:  nullString(c.ParentID),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.DB.Create(&row).Error; err != nil {
		return notes.Category{}, classify(err)
	}

	return row.toClient(), nil
}

// UpdateCategory issues a partial update restricted to the fields present
// in the given params and returns the updated category
func (s *Store) UpdateCategory(id string, p notes.CategoryParams) (notes.Category, error) {
	userID, err := s.userID()
	if err != nil {
		return notes.Category{}, err
	}
	s.throttle()

	updates := map[string]interface{}{
		"updated_at": s.Clock.Now(),
	}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Color != nil {
		updates["color"] = *p.Color
	}
	if p.ParentID != nil {
		// an empty parent id clears the parent link
		updates["parent_id"] = nullString(*p.ParentID)
	}

	res := s.DB.Model(&Category{}).Where("id = ? AND user_id = ?", id, userID).Updates(updates)
	if res.Error != nil {
		return notes.Category{}, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return notes.Category{}, errors.Wrapf(ErrNotFound, "category %s", id)
	}

	var row Category
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&row).Error; err != nil {
		return notes.Category{}, classify(err)
	}

	return row.toClient(), nil
}

// DeleteCategory removes the category row. Reassigning notes that reference
// the deleted category is the synchronization core's responsibility and
// happens before this call.
func (s *Store) DeleteCategory(id string) error {
	userID, err := s.userID()
	if err != nil {
		return err
	}
	s.throttle()

	res := s.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&Category{})
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "category %s", id)
	}

	return nil
}
