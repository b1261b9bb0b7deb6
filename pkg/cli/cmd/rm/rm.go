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

package rm

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/plumenote/plume/pkg/cli/context"
	"github.com/plumenote/plume/pkg/cli/infra"
	"github.com/plumenote/plume/pkg/cli/log"
	"github.com/plumenote/plume/pkg/cli/ui"
)

var categoryFlag string

var example = `
 * Remove a note
 plume rm 3c0d3c9f

 * Remove a category; its notes move to the default category
 plume rm --category Work`

func preRun(cmd *cobra.Command, args []string) error {
	if categoryFlag == "" && len(args) != 1 {
		return errors.New("Incorrect number of argument")
	}

	return nil
}

// NewCmd returns a new rm command
func NewCmd(ctx context.PlumeCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <note id>",
		Short:   "Remove a note or a category",
		Aliases: []string{"d", "remove"},
		Example: example,
		PreRunE: preRun,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVar(&categoryFlag, "category", "", "the name of the category to remove")

	return cmd
}

func removeCategory(ctx context.PlumeCtx, name string) error {
	var target string
	for _, c := range ctx.Session.Categories() {
		if c.Name == name {
			target = c.ID
			break
		}
	}
	if target == "" {
		return errors.Errorf("category %s not found", name)
	}

	ok, err := ui.Confirm(fmt.Sprintf("remove category %s?", name), false)
	if err != nil {
		return errors.Wrap(err, "getting confirmation")
	}
	if !ok {
		log.Plain("aborted\n")
		return nil
	}

	if err := ctx.Session.DeleteCategory(target); err != nil {
		return errors.Wrap(err, ctx.Session.Err())
	}

	log.Successf("removed category %s\n", name)

	return nil
}

func newRun(ctx context.PlumeCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if categoryFlag != "" {
			return removeCategory(ctx, categoryFlag)
		}

		n, err := ctx.Session.FindNote(args[0])
		if err != nil {
			return errors.Wrap(err, "finding note")
		}

		ok, err := ui.Confirm(fmt.Sprintf("remove note %s?", n.Title), false)
		if err != nil {
			return errors.Wrap(err, "getting confirmation")
		}
		if !ok {
			log.Plain("aborted\n")
			return nil
		}

		if err := ctx.Session.DeleteNote(n.ID); err != nil {
			return errors.Wrap(err, ctx.Session.Err())
		}

		log.Successf("removed %s\n", n.Title)

		return nil
	}
}
