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
	"time"

	"github.com/lib/pq"

	"github.com/plumenote/plume/pkg/notes"
)

// Category is a row in the categories table
type Category struct {
	ID        string `gorm:"primaryKey;type:text"`
	Name      string `gorm:"index"`
	Color     string
	ParentID  sql.NullString `gorm:"index;type:text"`
	UserID    string         `gorm:"index;type:text"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

// Note is a row in the notes table. The category link is a nullable foreign
// key; the client-facing shape carries the category name instead.
type Note struct {
	ID           string `gorm:"primaryKey;type:text"`
	Title        string
	Content      string
	Tags         pq.StringArray `gorm:"type:text[]"`
	CategoryID   sql.NullString `gorm:"index;type:text"`
	Category     *Category      `gorm:"foreignKey:CategoryID"`
	IsFavorite   bool           `gorm:"default:false"`
	IsArchived   bool           `gorm:"default:false"`
	IsProtected  bool           `gorm:"default:false"`
	PasswordHash string
	UserID       string       `gorm:"index;type:text"`
	CreatedAt    time.Time    `gorm:"autoCreateTime"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime"`
	Attachments  []Attachment `gorm:"foreignKey:NoteID"`
}

// Attachment is a row in the attachments table. It holds metadata only;
// the binary content is addressed by the url.
type Attachment struct {
	ID        string `gorm:"primaryKey;type:text"`
	NoteID    string `gorm:"index;type:text"`
	Name      string
	Type      string
	Size      int64
	URL       string
	UserID    string    `gorm:"index;type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// toClient converts a joined note row to the client-facing shape. A note
// whose category link does not resolve falls back to the default category.
func (n Note) toClient() notes.Note {
	category := notes.DefaultCategoryName
	if n.Category != nil {
		category = n.Category.Name
	}

	attachments := make([]notes.Attachment, 0, len(n.Attachments))
	for _, a := range n.Attachments {
		attachments = append(attachments, a.toClient())
	}

	return notes.Note{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		Tags:        append([]string{}, n.Tags...),
		Category:    category,
		IsFavorite:  n.IsFavorite,
		IsArchived:  n.IsArchived,
		IsProtected: n.IsProtected,
		Password:    n.PasswordHash,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
		Attachments: attachments,
	}
}

func (c Category) toClient() notes.Category {
	return notes.Category{
		ID:       c.ID,
		Name:     c.Name,
		Color:    c.Color,
		ParentID: c.ParentID.String,
	}
}

func (a Attachment) toClient() notes.Attachment {
	return notes.Attachment{
		ID:   a.ID,
		Name: a.Name,
		Type: a.Type,
		Size: a.Size,
		URL:  a.URL,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}

	return sql.NullString{String: s, Valid: true}
}
