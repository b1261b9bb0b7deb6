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

// Package consts provides definitions of constants
package consts

var (
	// PlumeDirName is the name of the directory containing plume files
	PlumeDirName = "plume"
	// ConfigFilename is the name of the config file
	ConfigFilename = "plumerc"
	// LegacySnapshotFilename is the name of the legacy local snapshot file
	// consumed once by the migration agent
	LegacySnapshotFilename = "legacy.json"
	// TmpContentFileBase is the base for the filename for a temporary content
	TmpContentFileBase = "PLUME_TMPCONTENT"
	// TmpContentFileExt is the extension for the temporary content file
	TmpContentFileExt = "md"

	// EnvDatabaseURL overrides the configured remote store DSN
	EnvDatabaseURL = "PLUME_DATABASE_URL"
	// EnvAccessToken overrides the configured access token
	EnvAccessToken = "PLUME_ACCESS_TOKEN"
	// EnvJWTSecret overrides the configured token signing secret
	EnvJWTSecret = "PLUME_JWT_SECRET"
)
