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

package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/plumenote/plume/pkg/cli/infra"
	"github.com/plumenote/plume/pkg/cli/log"

	// commands
	"github.com/plumenote/plume/pkg/cli/cmd/edit"
	"github.com/plumenote/plume/pkg/cli/cmd/export"
	"github.com/plumenote/plume/pkg/cli/cmd/find"
	"github.com/plumenote/plume/pkg/cli/cmd/imprt"
	"github.com/plumenote/plume/pkg/cli/cmd/ls"
	"github.com/plumenote/plume/pkg/cli/cmd/migrate"
	"github.com/plumenote/plume/pkg/cli/cmd/new"
	"github.com/plumenote/plume/pkg/cli/cmd/rm"
	"github.com/plumenote/plume/pkg/cli/cmd/root"
	"github.com/plumenote/plume/pkg/cli/cmd/version"
)

// versionTag is populated during link time
var versionTag = "master"

func main() {
	ctx, err := infra.Init(versionTag)
	if err != nil {
		panic(errors.Wrap(err, "initializing context"))
	}

	root.Register(ls.NewCmd(*ctx))
	root.Register(new.NewCmd(*ctx))
	root.Register(edit.NewCmd(*ctx))
	root.Register(rm.NewCmd(*ctx))
	root.Register(find.NewCmd(*ctx))
	root.Register(export.NewCmd(*ctx))
	root.Register(imprt.NewCmd(*ctx))
	root.Register(migrate.NewCmd(*ctx))
	root.Register(version.NewCmd(*ctx))

	if err := root.Execute(); err != nil {
		log.Errorf("%s\n", err.Error())
		os.Exit(1)
	}
}
