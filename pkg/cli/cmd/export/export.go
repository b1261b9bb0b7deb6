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

package export

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/plumenote/plume/pkg/cli/context"
	"github.com/plumenote/plume/pkg/cli/infra"
	"github.com/plumenote/plume/pkg/cli/log"
	"github.com/plumenote/plume/pkg/cli/ui"
)

var (
	formatFlag string
	outputFlag string
)

var example = `
 * Export a note as plain text
 plume export 3c0d3c9f

 * Export a note as markdown to a specific location
 plume export 3c0d3c9f -f md -o ./notes/array-methods.md

 * Print the payload to stdout
 plume export 3c0d3c9f -o -`

func preRun(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("Incorrect number of argument")
	}

	return nil
}

// NewCmd returns a new export command
func NewCmd(ctx context.PlumeCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "export <note id>",
		Short:   "Export a note",
		Example: example,
		PreRunE: preRun,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&formatFlag, "format", "f", "txt", "the export format: txt, md")
	f.StringVarP(&outputFlag, "output", "o", "", "the output path; - for stdout")

	return cmd
}

func newRun(ctx context.PlumeCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		n, err := ctx.Session.FindNote(args[0])
		if err != nil {
			return errors.Wrap(err, "finding note")
		}

		if n.IsProtected {
			var password string
			if err := ui.PromptPassword("password", &password); err != nil {
				return errors.Wrap(err, "getting password")
			}
			if !ctx.Session.VerifyNotePassword(n.ID, password) {
				return errors.New("wrong password")
			}
		}

		payload, err := ctx.Session.ExportNote(n.ID, formatFlag)
		if err != nil {
			return errors.Wrap(err, "exporting note")
		}

		if outputFlag == "-" {
			fmt.Print(payload.Content)
			return nil
		}

		path := outputFlag
		if path == "" {
			path = payload.Filename
		}

		if err := os.WriteFile(path, []byte(payload.Content), 0644); err != nil {
			return errors.Wrapf(err, "writing export to %s", path)
		}

		log.Successf("exported to %s\n", path)

		return nil
	}
}
