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

package find

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/plumenote/plume/pkg/cli/context"
	"github.com/plumenote/plume/pkg/cli/infra"
	"github.com/plumenote/plume/pkg/cli/log"
	"github.com/plumenote/plume/pkg/cli/output"
)

var example = `
 * Find notes by keyword
 plume find rsa

 * Find notes by multiple keywords
 plume find "building a heap"`

func preRun(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errors.New("Incorrect number of argument")
	}

	return nil
}

// NewCmd returns a new find command
func NewCmd(ctx context.PlumeCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "find <keyword>",
		Short:   "Find notes by keyword",
		Aliases: []string{"f", "search"},
		Example: example,
		PreRunE: preRun,
		RunE:    newRun(ctx),
	}

	return cmd
}

func newRun(ctx context.PlumeCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		results, err := ctx.Session.SearchNotes(query)
		if err != nil {
			return errors.Wrap(err, "searching notes")
		}

		if len(results) == 0 {
			log.Plain("no results\n")
			return nil
		}

		output.NoteList(results)

		return nil
	}
}
