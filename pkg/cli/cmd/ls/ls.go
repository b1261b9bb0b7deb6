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

package ls

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/plumenote/plume/pkg/cli/context"
	"github.com/plumenote/plume/pkg/cli/infra"
	"github.com/plumenote/plume/pkg/cli/output"
	"github.com/plumenote/plume/pkg/notes"
	"github.com/plumenote/plume/pkg/views"
)

var (
	categoryFlag   string
	tagFlags       []string
	favoritesFlag  bool
	archivedFlag   bool
	sortFlag       string
	orderFlag      string
	categoriesFlag bool
)

var example = `
 * List the notes, most recently updated first
 plume ls

 * List the notes in a category
 plume ls --category Work

 * List favorite notes carrying all the given tags
 plume ls --favorites --tag go --tag testing

 * List the notes by title
 plume ls --sort title --order asc

 * List the categories with their note counts
 plume ls --categories`

// NewCmd returns a new ls command
func NewCmd(ctx context.PlumeCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Short:   "List notes",
		Aliases: []string{"l", "list"},
		Example: example,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVar(&categoryFlag, "category", "", "only notes in the given category")
	f.StringSliceVar(&tagFlags, "tag", nil, "only notes carrying the given tag; repeatable")
	f.BoolVar(&favoritesFlag, "favorites", false, "only favorite notes")
	f.BoolVar(&archivedFlag, "archived", false, "only archived notes")
	f.StringVar(&sortFlag, "sort", string(notes.SortByUpdatedAt), "sort field: title, category, createdAt, updatedAt")
	f.StringVar(&orderFlag, "order", string(notes.OrderDesc), "sort order: asc, desc")
	f.BoolVar(&categoriesFlag, "categories", false, "list categories with their note counts")

	return cmd
}

func listCategories(ctx context.PlumeCtx) {
	categories := ctx.Session.Categories()
	counts := views.CategoryCounts(ctx.Session.Notes())

	for _, c := range categories {
		count := counts[c.Name]

		// nested categories display their full path, root first
		if chain := views.ParentChain(categories, c.ID); len(chain) > 1 {
			parts := make([]string, len(chain))
			for i, ancestor := range chain {
				parts[len(chain)-1-i] = ancestor.Name
			}
			c.Name = strings.Join(parts, " / ")
		}

		output.CategoryInfo(c, count)
	}
}

func parseSorting() (notes.SortBy, notes.SortOrder, error) {
	by := notes.SortBy(sortFlag)
	switch by {
	case notes.SortByTitle, notes.SortByCategory, notes.SortByCreatedAt, notes.SortByUpdatedAt:
	default:
		return "", "", errors.Errorf("unknown sort field %s", sortFlag)
	}

	order := notes.SortOrder(orderFlag)
	switch order {
	case notes.OrderAsc, notes.OrderDesc:
	default:
		return "", "", errors.Errorf("unknown sort order %s", orderFlag)
	}

	return by, order, nil
}

func newRun(ctx context.PlumeCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if categoriesFlag {
			listCategories(ctx)
			return nil
		}

		by, order, err := parseSorting()
		if err != nil {
			return err
		}
		ctx.Session.SetSorting(by, order)

		filters := views.Filters{
			Category: categoryFlag,
			Tags:     tagFlags,
		}
		if favoritesFlag {
			filters.IsFavorite = notes.BoolPtr(true)
		}
		if archivedFlag {
			filters.IsArchived = notes.BoolPtr(true)
		}

		output.NoteList(ctx.Session.FilteredNotes(filters))

		return nil
	}
}
