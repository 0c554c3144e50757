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
	"fmt"

	"github.com/kraklabs/lsq/internal/errors"
	"github.com/kraklabs/lsq/internal/output"
	"github.com/kraklabs/lsq/pkg/tools"
)

// runTodos lists incomplete todos across all pages, grouped by marker.
func runTodos(_ []string, configPath string, globals GlobalFlags) {
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

	todos, err := client.FindIncompleteTodos(context.Background())
	if err != nil {
		errors.FatalError(errors.NewNetworkError(
			"Cannot query todos",
			err.Error(),
			"Enable the HTTP APIs server in Logseq settings and verify the token",
			err,
		), globals.JSON)
	}

	if globals.JSON {
		if err := output.JSON(todos); err != nil {
			errors.FatalError(err, true)
		}
		return
	}

	fmt.Print(tools.FormatTodos(todos))
}
