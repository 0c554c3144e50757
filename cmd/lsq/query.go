// Copyright 2026 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"encoding/json"

	"github.com/kraklabs/lsq/internal/errors"
	"github.com/kraklabs/lsq/internal/output"
)

// runQuery executes a raw DataScript query against the graph database.
func runQuery(args []string, configPath string, globals GlobalFlags) {
	if len(args) == 0 {
		errors.FatalError(errors.NewInputError(
			"Missing DataScript query",
			"The query command requires a query argument",
			"Run: lsq query \"[:find ?n :where [?p :block/name ?n]]\"",
		), globals.JSON)
	}
	query := args[0]

	cfg, err := loadConfigOrEnv(configPath)
	if err != nil {
		errors.FatalError(errors.NewConfigError(
			"Cannot load lsq configuration",
			err.Error(),
			"Run 'lsq init' or export LOGSEQ_API_TOKEN",
			err,
		), globals.JSON)
	}

	client := cfg.NewGraphClient()

	result, err := client.DatascriptQuery(context.Background(), query)
	if err != nil {
		errors.FatalError(errors.NewNetworkError(
			"DataScript query failed",
			err.Error(),
			"Check the query syntax and verify the Logseq API is reachable",
			err,
		), globals.JSON)
	}

	// The raw result is already JSON; pretty-print it either way.
	if err := output.JSON(json.RawMessage(result)); err != nil {
		errors.FatalError(err, globals.JSON)
	}
}
