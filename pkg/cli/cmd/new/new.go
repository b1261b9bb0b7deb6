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

package new

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/plumenote/plume/pkg/cli/context"
	"github.com/plumenote/plume/pkg/cli/infra"
	"github.com/plumenote/plume/pkg/cli/log"
	"github.com/plumenote/plume/pkg/cli/output"
	"github.com/plumenote/plume/pkg/cli/ui"
	"github.com/plumenote/plume/pkg/notes"
)

var (
	contentFlag  string
	categoryFlag string
	tagFlags     []string
)

var example = `
 * Open an editor to write content
 plume new "array methods"

 * Skip the editor by providing content directly
 plume new "array methods" -c "slice does not mutate the receiver"

 * Send stdin content to a note
 echo "pull is fetch with a merge" | plume new git

 * File a note under a category with tags
 plume new standup -c "demo friday" --category Work --tag meeting`

func preRun(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.New("Incorrect number of argument")
	}

	return nil
}

// NewCmd returns a new new command
func NewCmd(ctx context.PlumeCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "new [title]",
		Short:   "Create a new note",
		Aliases: []string{"n", "add"},
		Example: example,
		PreRunE: preRun,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&contentFlag, "content", "c", "", "the content for the note")
	f.StringVar(&categoryFlag, "category", "", "the category to file the note under")
	f.StringSliceVar(&tagFlags, "tag", nil, "a tag for the note; repeatable")

	return cmd
}

func getContent(ctx context.PlumeCtx) (string, error) {
	if contentFlag != "" {
		return contentFlag, nil
	}

	// check for piped content
	fInfo, _ := os.Stdin.Stat()
	if fInfo.Mode()&os.ModeCharDevice == 0 {
		c, err := ui.ReadStdInput()
		if err != nil {
			return "", errors.Wrap(err, "getting piped input")
		}
		return c, nil
	}

	fpath, err := ui.GetTmpContentPath(ctx)
	if err != nil {
		return "", errors.Wrap(err, "getting temporarily content file path")
	}

	c, err := ui.GetEditorInput(ctx, fpath, "")
	if err != nil {
		return "", errors.Wrap(err, "getting editor input")
	}

	return c, nil
}

func newRun(ctx context.PlumeCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		content, err := getContent(ctx)
		if err != nil {
			return errors.Wrap(err, "getting content")
		}

		created, err := ctx.Session.CreateNote()
		if err != nil {
			return errors.Wrap(err, ctx.Session.Err())
		}

		params := notes.NoteParams{Content: notes.StringPtr(content)}
		if len(args) == 1 {
			params.Title = notes.StringPtr(args[0])
		}
		if categoryFlag != "" {
			params.Category = notes.StringPtr(categoryFlag)
		}
		if len(tagFlags) > 0 {
			params.Tags = notes.TagsPtr(tagFlags)
		}

		saved, err := ctx.Session.UpdateNote(created.ID, params)
		if err != nil {
			return errors.Wrap(err, ctx.Session.Err())
		}

		log.Successf("created %s\n", saved.Title)
		output.NoteInfo(saved)

		return nil
	}
}
