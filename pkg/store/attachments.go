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
	"gorm.io/gorm"

	"github.com/plumenote/plume/pkg/helpers"
	"github.com/plumenote/plume/pkg/notes"
)

// CreateAttachment inserts attachment metadata for the given note. It fails
// with ErrNotFound if the note does not belong to the user.
func (s *Store) CreateAttachment(noteID string, a notes.Attachment) (notes.Attachment, error) {
	userID, err := s.userID()
	if err != nil {
		return notes.Attachment{}, err
	}
	s.throttle()

	var note Note
	err = s.DB.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notes.Attachment{}, errors.Wrapf(ErrNotFound, "note %s", noteID)
	}
	if err != nil {
		return notes.Attachment{}, classify(err)
	}

	id := a.ID
	if id == "" {
		id, err = helpers.GenUUID()
		if err != nil {
			return notes.Attachment{}, errors.Wrap(err, "generating attachment id")
		}
	}

	row := Attachment{
		ID:        id,
		NoteID:    noteID,
		Name:      a.Name,
		Type:      a.Type,
		Size:      a.Size,
		URL:       a.URL,
		UserID:    userID,
		CreatedAt: s.Clock.Now(),
	}
	if err := s.DB.Create(&row).Error; err != nil {
		return notes.Attachment{}, classify(err)
	}

	return row.toClient(), nil
}

// DeleteAttachment removes the attachment metadata row
func (s *Store) DeleteAttachment(id string) error {
	userID, err := s.userID()
	if err != nil {
		return err
	}
	s.throttle()

	res := s.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&Attachment{})
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "attachment %s", id)
	}

	return nil
}
