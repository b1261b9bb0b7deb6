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
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/plumenote/plume/pkg/helpers"
	"github.com/plumenote/plume/pkg/notes"
)

// preloadNote attaches the category and attachment joins to the query
func preloadNote(conn *gorm.DB) *gorm.DB {
	return conn.Preload("Category").Preload("Attachments")
}

// resolveCategoryID resolves a category name to its identifier by exact
// match within the user's categories. It returns an invalid NullString when
// no category matches, in which case the link is silently omitted.
func (s *Store) resolveCategoryID(userID, name string) (sql.NullString, error) {
	if name == "" {
		return sql.NullString{}, nil
	}

	var cat Category
	err := s.DB.Where("user_id = ? AND name = ?", userID, name).First(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sql.NullString{}, nil
	}
	if err != nil {
		return sql.NullString{}, classify(err)
	}

	return sql.NullString{String: cat.ID, Valid: true}, nil
}

// ListNotes returns all notes for the user, each joined with its category
// and attachment metadata, ordered by last-modified descending
func (s *Store) ListNotes() ([]notes.Note, error) {
	userID, err := s.userID()
	if err != nil {
		return nil, err
	}
	s.throttle()

	var rows []Note
	conn := preloadNote(s.DB.Where("notes.user_id = ?", userID)).Order("updated_at DESC")
	if err := conn.Find(&rows).Error; err != nil {
		return nil, classify(err)
	}

	ret := make([]notes.Note, 0, len(rows))
	for _, row := range rows {
		ret = append(ret, row.toClient())
	}

	return ret, nil
}

// GetNote retrieves a single note by id. It returns nil without an error
// if the id/user pair matches no row.
func (s *Store) GetNote(id string) (*notes.Note, error) {
	userID, err := s.userID()
	if err != nil {
		return nil, err
	}
	s.throttle()

	row, err := s.getNoteRow(userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}

	ret := row.toClient()
	return &ret, nil
}

func (s *Store) getNoteRow(userID, id string) (Note, error) {
	var row Note
	err := preloadNote(s.DB.Where("notes.id = ? AND notes.user_id = ?", id, userID)).First(&row).Error

	return row, err
}

// CreateNote resolves the note's category name, inserts a row and returns
// the full joined row. The client-generated identifier is honored so the
// caller can reference the note before the round-trip completes.
func (s *Store) CreateNote(n notes.Note) (notes.Note, error) {
	userID, err := s.userID()
	if err != nil {
		return notes.Note{}, err
	}

	if err := notes.ValidateNote(n); err != nil {
		return notes.Note{}, classify(err)
	}
	s.throttle()

	id := n.ID
	if id == "" {
		id, err = helpers.GenUUID()
		if err != nil {
			return notes.Note{}, errors.Wrap(err, "generating note id")
		}
	}

	categoryID, err := s.resolveCategoryID(userID, n.Category)
	if err != nil {
		return notes.Note{}, err
	}

	now := s.Clock.Now()
	createdAt := n.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}

	row := Note{
		ID:           id,
		Title:        notes.NormalizeTitle(n.Title),
		Content:      n.Content,
		Tags:         pq.StringArray(tags),
		CategoryID:   categoryID,
		IsFavorite:   n.IsFavorite,
		IsArchived:   n.IsArchived,
		IsProtected:  n.IsProtected,
		PasswordHash: n.Password,
		UserID:       userID,
		CreatedAt:    createdAt,
		UpdatedAt:    now,
	}
	if err := s.DB.Create(&row).Error; err != nil {
		return notes.Note{}, classify(err)
	}

	created, err := s.getNoteRow(userID, id)
	if err != nil {
		return notes.Note{}, classify(err)
	}

	return created.toClient(), nil
}

// UpdateNote issues a partial update restricted to the fields present in
// the given params and returns the full joined row
func (s *Store) UpdateNote(id string, p notes.NoteParams) (notes.Note, error) {
	userID, err := s.userID()
	if err != nil {
		return notes.Note{}, err
	}
	s.throttle()

	updates := map[string]interface{}{
		"updated_at": s.Clock.Now(),
	}
	if p.Title != nil {
		updates["title"] = notes.NormalizeTitle(*p.Title)
	}
	if p.Content != nil {
		updates["content"] = *p.Content
	}
	if p.Tags != nil {
		updates["tags"] = pq.StringArray(*p.Tags)
	}
	if p.IsFavorite != nil {
		updates["is_favorite"] = *p.IsFavorite
	}
	if p.IsArchived != nil {
		updates["is_archived"] = *p.IsArchived
	}
	if p.IsProtected != nil {
		updates["is_protected"] = *p.IsProtected
	}
	if p.Password != nil {
		updates["password_hash"] = *p.Password
	}
	if p.Category != nil {
		categoryID, err := s.resolveCategoryID(userID, *p.Category)
		if err != nil {
			return notes.Note{}, err
		}
		// an unresolvable name leaves the existing link untouched
		if categoryID.Valid {
			updates["category_id"] = categoryID
		}
	}

	res := s.DB.Model(&Note{}).Where("id = ? AND user_id = ?", id, userID).Updates(updates)
	if res.Error != nil {
		return notes.Note{}, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return notes.Note{}, errors.Wrapf(ErrNotFound, "note %s", id)
	}

	updated, err := s.getNoteRow(userID, id)
	if err != nil {
		return notes.Note{}, classify(err)
	}

	return updated.toClient(), nil
}

// DeleteNote removes the note and its attachment metadata
func (s *Store) DeleteNote(id string) error {
	userID, err := s.userID()
	if err != nil {
		return err
	}
	s.throttle()

	tx := s.DB.Begin()

	if err := tx.Where("note_id = ? AND user_id = ?", id, userID).Delete(&Attachment{}).Error; err != nil {
		tx.Rollback()
		return classify(err)
	}

	res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&Note{})
	if res.Error != nil {
		tx.Rollback()
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return errors.Wrapf(ErrNotFound, "note %s", id)
	}

	tx.Commit()

	return nil
}

// SearchNotes performs a case-insensitive substring match against the title
// and content fields at the store level
func (s *Store) SearchNotes(query string) ([]notes.Note, error) {
	userID, err := s.userID()
	if err != nil {
		return nil, err
	}
	s.throttle()

	pattern := fmt.Sprintf("%%%s%%", strings.ToLower(query))

	var rows []Note
	conn := s.DB.Where("notes.user_id = ?", userID).
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	conn = preloadNote(conn).Order("updated_at DESC")
	if err := conn.Find(&rows).Error; err != nil {
		return nil, classify(err)
	}

	ret := make([]notes.Note, 0, len(rows))
	for _, row := range rows {
		ret = append(ret, row.toClient())
	}

	return ret, nil
}
