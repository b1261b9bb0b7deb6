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

// Package context defines plume context
package context

import (
	"github.com/plumenote/plume/pkg/auth"
	"github.com/plumenote/plume/pkg/clock"
	"github.com/plumenote/plume/pkg/core"
	"github.com/plumenote/plume/pkg/store"
)

// Paths contain directory definitions
type Paths struct {
	Home   string
	Config string
	Data   string
	Cache  string
}

// PlumeCtx is a context holding the information of the current runtime
type PlumeCtx struct {
	Paths        Paths
	Version      string
	Store        *store.Store
	Session      *core.Session
	Auth         auth.Provider
	Clock        clock.Clock
	Editor       string
	AccessToken  string
	SnapshotPath string
}

// Redact replaces private information from the context with a set of
// placeholder values.
func Redact(ctx PlumeCtx) PlumeCtx {
	var accessToken string
	if ctx.AccessToken != "" {
		accessToken = "1"
	} else {
		accessToken = "0"
	}
	ctx.AccessToken = accessToken

	return ctx
}
