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

package migrate

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/plumenote/plume/pkg/cli/context"
	"github.com/plumenote/plume/pkg/cli/infra"
	"github.com/plumenote/plume/pkg/cli/log"
	"github.com/plumenote/plume/pkg/migrate"
)

var snapshotFlag string

var example = `
 * Transfer the legacy local snapshot into the remote store
 plume migrate

 * Migrate a snapshot at a specific location
 plume migrate --snapshot ./plume-legacy.json`

// NewCmd returns a new migrate command
func NewCmd(ctx context.PlumeCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "migrate",
		Short:   "Transfer legacy local notes into the remote store",
		Example: example,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVar(&snapshotFlag, "snapshot", "", "the path to the legacy snapshot file")

	return cmd
}

func newRun(ctx context.PlumeCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		path := snapshotFlag
		if path == "" {
			path = ctx.SnapshotPath
		}

		agent := migrate.New(ctx.Store, path)
		agent.Logf = func(format string, v ...interface{}) {
			log.Warnf(format+"\n", v...)
		}

		result, err := agent.Run()
		if err != nil {
			return errors.Wrap(err, result.Message)
		}

		log.Successf("%s\n", result.Message)

		// surface the migrated notes right away
		if err := ctx.Session.Load(); err != nil {
			return errors.Wrap(err, ctx.Session.Err())
		}

		return nil
	}
}
