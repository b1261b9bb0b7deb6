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

// Package imprt implements the import command. The package name avoids the
// import keyword.
package imprt

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/radovskyb/watcher"
	"github.com/robfig/cron"
	"github.com/spf13/cobra"

	"github.com/plumenote/plume/pkg/cli/context"
	"github.com/plumenote/plume/pkg/cli/infra"
	"github.com/plumenote/plume/pkg/cli/log"
	"github.com/plumenote/plume/pkg/core"
)

var watchFlag string

// reloadSchedule refreshes the canonical collections periodically while
// watching, so notes created elsewhere stay visible
const reloadSchedule = "@every 5m"

// watchPollInterval is how often the watched directory is scanned
const watchPollInterval = time.Second

var example = `
 * Import notes from text files
 plume import meeting-notes.txt ideas.md

 * Watch a directory and import files dropped into it
 plume import --watch ./inbox`

func preRun(cmd *cobra.Command, args []string) error {
	if watchFlag == "" && len(args) < 1 {
		return errors.New("Incorrect number of argument")
	}

	return nil
}

// NewCmd returns a new import command
func NewCmd(ctx context.PlumeCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "import <file>...",
		Short:   "Import notes from files",
		Example: example,
		PreRunE: preRun,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVar(&watchFlag, "watch", "", "watch the given directory and import files dropped into it")

	return cmd
}

// readFiles loads the given paths into import files
func readFiles(paths []string) ([]core.ImportFile, error) {
	ret := make([]core.ImportFile, 0, len(paths))
	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}

		ret = append(ret, core.ImportFile{Name: path, Content: string(b)})
	}

	return ret, nil
}

func importFiles(ctx context.PlumeCtx, paths []string) error {
	files, err := readFiles(paths)
	if err != nil {
		return err
	}

	imported, err := ctx.Session.ImportNotes(files)
	if err != nil {
		return errors.Wrap(err, "importing notes")
	}

	for _, n := range imported {
		log.Successf("imported %s\n", n.Title)
	}

	return nil
}

// isImportable reports whether the file at the given path should be picked
// up by the watch mode
func isImportable(path string) bool {
	switch filepath.Ext(path) {
	case ".txt", ".md":
		return true
	}

	return false
}

func watch(ctx context.PlumeCtx, dir string) error {
	w := watcher.New()
	w.FilterOps(watcher.Create)

	if err := w.Add(dir); err != nil {
		return errors.Wrapf(err, "watching %s", dir)
	}

	c := cron.New()
	if err := c.AddFunc(reloadSchedule, func() {
		if err := ctx.Session.Load(); err != nil {
			log.Warnf("%s\n", ctx.Session.Err())
		}
	}); err != nil {
		return errors.Wrap(err, "scheduling reload")
	}
	c.Start()
	defer c.Stop()

	go func() {
		for {
			select {
			case event := <-w.Event:
				if event.IsDir() || !isImportable(event.Path) {
					continue
				}
				if err := importFiles(ctx, []string{event.Path}); err != nil {
					log.Errorf("%s\n", err.Error())
				}
			case err := <-w.Error:
				log.Errorf("%s\n", err.Error())
			case <-w.Closed:
				return
			}
		}
	}()

	log.Infof("watching %s\n", dir)

	if err := w.Start(watchPollInterval); err != nil {
		return errors.Wrap(err, "starting watcher")
	}

	return nil
}

func newRun(ctx context.PlumeCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if watchFlag != "" {
			return watch(ctx, watchFlag)
		}

		return importFiles(ctx, args)
	}
}
