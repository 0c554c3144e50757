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
	"fmt"

	"github.com/kraklabs/lsq/internal/errors"
	"github.com/kraklabs/lsq/internal/output"
	"github.com/kraklabs/lsq/internal/ui"
)

// statusResult is the machine-readable form of `lsq status --json`.
type statusResult struct {
	Connected bool            `json:"connected"`
	BaseURL   string          `json:"base_url"`
	Graph     json.RawMessage `json:"graph,omitempty"`
}

// runStatus checks connectivity to the Logseq HTTP API.
func runStatus(_ []string, configPath string, globals GlobalFlags) {
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

	graph, err := client.GetCurrentGraph(context.Background())
	if err != nil {
		errors.FatalError(errors.NewNetworkError(
			"Cannot reach the Logseq API",
			err.Error(),
			"Enable the HTTP APIs server in Logseq settings and verify the token",
			err,
		), globals.JSON)
	}

	if globals.JSON {
		if err := output.JSON(statusResult{
			Connected: true,
			BaseURL:   cfg.API.BaseURL,
			Graph:     graph,
		}); err != nil {
			errors.FatalError(err, true)
		}
		return
	}

	ui.Header("Logseq Connection Status")
	ui.Success("Connected")
	fmt.Printf("%s %s\n", ui.Label("API:"), cfg.API.BaseURL)

	var info struct {
		Name string `json:"name"`
		Path string `json:"path"`
	}
	if err := json.Unmarshal(graph, &info); err == nil && info.Name != "" {
		fmt.Printf("%s %s\n", ui.Label("Graph:"), info.Name)
		if info.Path != "" {
			fmt.Printf("%s %s\n", ui.Label("Path:"), ui.DimText(info.Path))
		}
	}
}
