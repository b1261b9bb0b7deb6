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

// Package migrate implements the one-shot transfer of a legacy local
// snapshot of notes and categories into the remote store. Categories are
// de-duplicated by name, notes by identifier, so a rerun against an
// already-migrated store creates nothing. One bad record never aborts the
// batch; it is logged and skipped.
package migrate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/plumenote/plume/pkg/notes"
)

// Store is the remote surface the agent migrates into
type Store interface {
	ListCategories() ([]notes.Category, error)
	CreateCategory(c notes.Category) (notes.Category, error)
	GetNote(id string) (*notes.Note, error)
	CreateNote(n notes.Note) (notes.Note, error)
}

// Snapshot is the legacy locally-persisted state. Both collections are
// independently optional.
type Snapshot struct {
	Notes      []notes.Note     `json:"notes,omitempty"`
	Categories []notes.Category `json:"categories,omitempty"`
}

// Result summarizes a migration run
type Result struct {
	Success            bool
	CategoriesMigrated int
	NotesMigrated      int
	Message            string
}

const (
	msgNothingToMigrate = "Aucune donnée à migrer"
	msgMigrationFailed  = "Erreur lors de la migration des données"
)

// Agent performs the migration. Logf, when set, receives one line per
// skipped record.
type Agent struct {
	store Store
	path  string
	Logf  func(format string, a ...interface{})
}

// New returns an agent reading the legacy snapshot from the given path
func New(store Store, path string) *Agent {
	return &Agent{store: store, path: path}
}

func (a *Agent) logf(format string, args ...interface{}) {
	if a.Logf == nil {
		return
	}

	a.Logf(format, args...)
}

// Run migrates the legacy snapshot into the remote store. The snapshot
// file is removed only on overall success; a structural failure leaves it
// intact so the run can be retried.
func (a *Agent) Run() (Result, error) {
	data, err := os.ReadFile(a.path)
	if os.IsNotExist(err) {
		return Result{Success: true, Message: msgNothingToMigrate}, nil
	}
	if err != nil {
		return Result{Message: msgMigrationFailed}, errors.Wrap(err, "reading snapshot")
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Result{Message: msgMigrationFailed}, errors.Wrap(err, "parsing snapshot")
	}

	if len(snapshot.Notes) == 0 && len(snapshot.Categories) == 0 {
		if err := a.clear(); err != nil {
			return Result{Success: true, Message: msgNothingToMigrate}, err
		}

		return Result{Success: true, Message: msgNothingToMigrate}, nil
	}

	categoriesMigrated, err := a.migrateCategories(snapshot.Categories)
	if err != nil {
		return Result{Message: msgMigrationFailed}, err
	}

	notesMigrated, err := a.migrateNotes(snapshot.Notes)
	if err != nil {
		return Result{Message: msgMigrationFailed}, err
	}

	ret := Result{
		Success:            true,
		CategoriesMigrated: categoriesMigrated,
		NotesMigrated:      notesMigrated,
		Message:            fmt.Sprintf("Migration réussie: %d catégories et %d notes migrées", categoriesMigrated, notesMigrated),
	}

	if err := a.clear(); err != nil {
		return ret, err
	}

	return ret, nil
}

// migrateCategories creates every legacy category whose name has no remote
// counterpart yet. A failed creation is logged and skipped.
func (a *Agent) migrateCategories(legacy []notes.Category) (int, error) {
	if len(legacy) == 0 {
		return 0, nil
	}

	existing, err := a.store.ListCategories()
	if err != nil {
		return 0, errors.Wrap(err, "listing remote categories")
	}

	names := map[string]bool{}
	for _, c := range existing {
		names[c.Name] = true
	}

	migrated := 0
	for _, c := range legacy {
		if names[c.Name] {
			continue
		}

		if _, err := a.store.CreateCategory(c); err != nil {
			a.logf("skipping category %s: %v", c.Name, err)
			continue
		}

		names[c.Name] = true
		migrated++
	}

	return migrated, nil
}

// migrateNotes creates every legacy note whose identifier has no remote
// counterpart yet. A failed lookup or creation is logged and skipped.
func (a *Agent) migrateNotes(legacy []notes.Note) (int, error) {
	migrated := 0
	for _, n := range legacy {
		existing, err := a.store.GetNote(n.ID)
		if err != nil {
			a.logf("skipping note %s: %v", n.ID, err)
			continue
		}
		if existing != nil {
			continue
		}

		if _, err := a.store.CreateNote(n); err != nil {
			a.logf("skipping note %s: %v", n.ID, err)
			continue
		}

		migrated++
	}

	return migrated, nil
}

// clear removes the snapshot file
func (a *Agent) clear() error {
	if err := os.Remove(a.path); err != nil {
		return errors.Wrap(err, "clearing snapshot")
	}

	return nil
}
