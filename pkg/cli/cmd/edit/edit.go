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

package edit

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/plumenote/plume/pkg/cli/context"
	"github.com/plumenote/plume/pkg/cli/infra"
	"github.com/plumenote/plume/pkg/cli/log"
	"github.com/plumenote/plume/pkg/cli/ui"
	"github.com/plumenote/plume/pkg/cli/utils/diff"
	"github.com/plumenote/plume/pkg/notes"
)

var (
	titleFlag     string
	contentFlag   string
	categoryFlag  string
	tagFlags      []string
	favoriteFlag  bool
	archiveFlag   bool
	protectFlag   bool
	unprotectFlag bool
)

var example = `
 * Edit a note's content in an editor
 plume edit 3c0d3c9f

 * Edit a note without launching an editor
 plume edit 3c0d3c9f -c "new content"

 * Move a note to another category
 plume edit 3c0d3c9f --category Work

 * Toggle the favorite flag
 plume edit 3c0d3c9f --favorite

 * Protect a note with a password
 plume edit 3c0d3c9f --protect`

func preRun(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("Incorrect number of argument")
	}
	if protectFlag && unprotectFlag {
		return errors.New("cannot both protect and unprotect")
	}

	return nil
}

// NewCmd returns a new edit command
func NewCmd(ctx context.PlumeCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit <note id>",
		Short:   "Edit a note",
		Aliases: []string{"e"},
		Example: example,
		PreRunE: preRun,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&titleFlag, "title", "t", "", "a new title for the note")
	f.StringVarP(&contentFlag, "content", "c", "", "a new content for the note")
	f.StringVar(&categoryFlag, "category", "", "the category to move the note to")
	f.StringSliceVar(&tagFlags, "tag", nil, "replace the note's tags; repeatable")
	f.BoolVar(&favoriteFlag, "favorite", false, "toggle the favorite flag")
	f.BoolVar(&archiveFlag, "archive", false, "toggle the archived flag")
	f.BoolVar(&protectFlag, "protect", false, "protect the note with a password")
	f.BoolVar(&unprotectFlag, "unprotect", false, "remove the note's password protection")

	return cmd
}

// printDiff prints a line-by-line diff between the old and new content
func printDiff(old, new string) {
	for _, d := range diff.Do(old, new) {
		switch d.Type {
		case diff.DiffInsert:
			fmt.Print(log.ColorGreen.Sprintf("+%s", d.Text))
		case diff.DiffDelete:
			fmt.Print(log.ColorRed.Sprintf("-%s", d.Text))
		default:
			fmt.Print(d.Text)
		}
	}
}

// editContent launches an editor seeded with the note's content, shows the
// resulting diff and asks for confirmation
func editContent(ctx context.PlumeCtx, n notes.Note) (string, bool, error) {
	fpath, err := ui.GetTmpContentPath(ctx)
	if err != nil {
		return "", false, errors.Wrap(err, "getting temporarily content file path")
	}

	content, err := ui.GetEditorInput(ctx, fpath, n.Content)
	if err != nil {
		return "", false, errors.Wrap(err, "getting editor input")
	}

	if content == n.Content {
		return "", false, nil
	}

	printDiff(n.Content, content)

	ok, err := ui.Confirm("save this change?", true)
	if err != nil {
		return "", false, errors.Wrap(err, "getting confirmation")
	}

	return content, ok, nil
}

func editProtection(ctx context.PlumeCtx, n notes.Note) error {
	if protectFlag {
		var password string
		if err := ui.PromptPassword("password", &password); err != nil {
			return errors.Wrap(err, "getting password")
		}

		if err := ctx.Session.ProtectNote(n.ID, password); err != nil {
			return errors.Wrap(err, "protecting note")
		}

		log.Successf("protected %s\n", n.Title)
		return nil
	}

	var password string
	if err := ui.PromptPassword("password", &password); err != nil {
		return errors.Wrap(err, "getting password")
	}

	if err := ctx.Session.UnprotectNote(n.ID, password); err != nil {
		return errors.Wrap(err, "unprotecting note")
	}

	log.Successf("unprotected %s\n", n.Title)
	return nil
}

func newRun(ctx context.PlumeCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		n, err := ctx.Session.FindNote(args[0])
		if err != nil {
			return errors.Wrap(err, "finding note")
		}

		if protectFlag || unprotectFlag {
			return editProtection(ctx, n)
		}

		if favoriteFlag {
			if err := ctx.Session.ToggleFavorite(n.ID); err != nil {
				return errors.Wrap(err, ctx.Session.Err())
			}
			log.Successf("toggled favorite for %s\n", n.Title)
			return nil
		}
		if archiveFlag {
			if err := ctx.Session.ToggleArchive(n.ID); err != nil {
				return errors.Wrap(err, ctx.Session.Err())
			}
			log.Successf("toggled archive for %s\n", n.Title)
			return nil
		}

		params := notes.NoteParams{}
		if titleFlag != "" {
			params.Title = notes.StringPtr(titleFlag)
		}
		if categoryFlag != "" {
			params.Category = notes.StringPtr(categoryFlag)
		}
		if len(tagFlags) > 0 {
			params.Tags = notes.TagsPtr(tagFlags)
		}

		if contentFlag != "" {
			params.Content = notes.StringPtr(contentFlag)
		} else if params.Title == nil && params.Category == nil && params.Tags == nil {
			content, ok, err := editContent(ctx, n)
			if err != nil {
				return err
			}
			if !ok {
				log.Plain("nothing to save\n")
				return nil
			}
			params.Content = notes.StringPtr(content)
		}

		saved, err := ctx.Session.UpdateNote(n.ID, params)
		if err != nil {
			return errors.Wrap(err, ctx.Session.Err())
		}

		log.Successf("updated %s\n", saved.Title)

		return nil
	}
}
