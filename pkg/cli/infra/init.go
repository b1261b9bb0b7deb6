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

// Package infra provides operations and definitions for the
// local infrastructure for Plume
package infra

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/plumenote/plume/pkg/auth"
	"github.com/plumenote/plume/pkg/cli/config"
	"github.com/plumenote/plume/pkg/cli/consts"
	"github.com/plumenote/plume/pkg/cli/context"
	"github.com/plumenote/plume/pkg/cli/log"
	"github.com/plumenote/plume/pkg/cli/utils"
	"github.com/plumenote/plume/pkg/clock"
	"github.com/plumenote/plume/pkg/core"
	"github.com/plumenote/plume/pkg/dirs"
	"github.com/plumenote/plume/pkg/migrate"
	"github.com/plumenote/plume/pkg/store"
)

// DefaultEditor is the editor used when none is configured
const DefaultEditor = "vi"

// RunEFunc is a function type of plume commands
type RunEFunc func(*cobra.Command, []string) error

func newBaseCtx(versionTag string) context.PlumeCtx {
	return context.PlumeCtx{
		Paths: context.Paths{
			Home:   dirs.Home,
			Config: dirs.ConfigHome,
			Data:   dirs.DataHome,
			Cache:  dirs.CacheHome,
		},
		Version: versionTag,
	}
}

// initFiles creates the plume directories and a default config file if
// none exists yet
func initFiles(ctx context.PlumeCtx) error {
	for _, dir := range []string{
		fmt.Sprintf("%s/%s", ctx.Paths.Config, consts.PlumeDirName),
		fmt.Sprintf("%s/%s", ctx.Paths.Data, consts.PlumeDirName),
		ctx.Paths.Cache,
	} {
		if err := utils.EnsureDir(dir); err != nil {
			return errors.Wrapf(err, "ensuring dir at %s", dir)
		}
	}

	configPath := config.GetPath(ctx)
	ok, err := utils.FileExists(configPath)
	if err != nil {
		return errors.Wrapf(err, "checking config at %s", configPath)
	}
	if ok {
		return nil
	}

	cf := config.Config{Editor: DefaultEditor}
	if err := config.Write(ctx, cf); err != nil {
		return errors.Wrap(err, "writing initial config")
	}

	return nil
}

// applyEnv overlays environment variables on top of the config file values
func applyEnv(cf *config.Config) {
	if v := os.Getenv(consts.EnvDatabaseURL); v != "" {
		cf.DatabaseURL = v
	}
	if v := os.Getenv(consts.EnvAccessToken); v != "" {
		cf.AccessToken = v
	}
	if v := os.Getenv(consts.EnvJWTSecret); v != "" {
		cf.JWTSecret = v
	}
}

// newAuthProvider derives the identity provider from the configured access
// token. An absent token yields a signed-out provider.
func newAuthProvider(cf config.Config, c clock.Clock) (auth.Provider, error) {
	if cf.AccessToken == "" {
		return auth.NewStatic(nil), nil
	}

	provider, err := auth.NewTokenProvider(cf.AccessToken, cf.JWTSecret, c)
	if err != nil {
		return nil, errors.Wrap(err, "verifying access token")
	}

	return provider, nil
}

// snapshotPath resolves the legacy snapshot location. An explicitly
// configured path wins over the default location under the data directory.
func snapshotPath(ctx context.PlumeCtx, cf config.Config) string {
	if cf.LegacySnapshot != "" {
		return cf.LegacySnapshot
	}

	return fmt.Sprintf("%s/%s/%s", ctx.Paths.Data, consts.PlumeDirName, consts.LegacySnapshotFilename)
}

// runMigration transfers the legacy snapshot, if any, into the remote
// store. It runs before the session's first load.
func runMigration(st *store.Store, path string) {
	agent := migrate.New(st, path)
	agent.Logf = func(format string, v ...interface{}) {
		log.Warnf(format+"\n", v...)
	}

	result, err := agent.Run()
	if err != nil {
		log.Warnf("%s: %s\n", result.Message, err.Error())
		return
	}

	if result.CategoriesMigrated > 0 || result.NotesMigrated > 0 {
		log.Infof("%s\n", result.Message)
	}
}

// Init initializes the Plume environment and returns a new plume context
func Init(versionTag string) (*context.PlumeCtx, error) {
	// a .env file fills in for missing environment variables in development
	_ = godotenv.Load()

	ctx := newBaseCtx(versionTag)

	if err := initFiles(ctx); err != nil {
		return nil, errors.Wrap(err, "initializing files")
	}

	cf, err := config.Read(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	applyEnv(&cf)

	if cf.DatabaseURL == "" {
		return nil, errors.New("no database url configured")
	}

	db, err := store.Open(cf.DatabaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to the remote store")
	}
	if err := store.InitSchema(db); err != nil {
		return nil, errors.Wrap(err, "initializing schema")
	}

	c := clock.New()
	provider, err := newAuthProvider(cf, c)
	if err != nil {
		return nil, err
	}

	st := store.New(db, provider, c)
	session := core.NewSession(st, c, core.Options{
		AutoPersistImports: cf.AutoPersistImports,
	})
	session.Bind(provider)

	path := snapshotPath(ctx, cf)

	if provider.CurrentUser() != nil {
		runMigration(st, path)

		if err := session.Load(); err != nil {
			log.Warnf("%s\n", session.Err())
			log.Debug("load: %v\n", err)
		}
	}

	editor := cf.Editor
	if editor == "" {
		editor = DefaultEditor
	}

	ctx.Store = st
	ctx.Session = session
	ctx.Auth = provider
	ctx.Clock = c
	ctx.Editor = editor
	ctx.AccessToken = cf.AccessToken
	ctx.SnapshotPath = path

	log.Debug("context: %+v\n", context.Redact(ctx))

	return &ctx, nil
}
