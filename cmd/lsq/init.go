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
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/lsq/internal/errors"
	"github.com/kraklabs/lsq/internal/ui"
)

// runInit creates the .lsq/config.yaml configuration file.
func runInit(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	force := fs.Bool("force", false, "Overwrite existing configuration")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsq init [--force]

Creates .lsq/config.yaml in the current directory with default
settings for a local Logseq instance. Set your API token in the
generated file or export LOGSEQ_API_TOKEN.

Options:
  --force    Overwrite an existing configuration file
`)
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(errors.ExitInput)
	}

	configPath := ConfigPath(".")

	if _, err := os.Stat(configPath); err == nil && !*force {
		errors.FatalError(errors.NewConfigError(
			"Configuration already exists",
			fmt.Sprintf("%s already exists", configPath),
			"Use 'lsq init --force' to overwrite it",
			nil,
		), globals.JSON)
	}

	cfg := DefaultConfig()

	// An exported token gets baked into the file so the user does not
	// have to keep the environment variable around.
	if token := os.Getenv("LOGSEQ_API_TOKEN"); token != "" {
		cfg.API.Token = token
	}

	if err := SaveConfig(cfg, configPath); err != nil {
		errors.FatalError(errors.NewConfigError(
			"Cannot write configuration",
			err.Error(),
			"Check directory permissions and retry",
			err,
		), globals.JSON)
	}

	if !globals.Quiet {
		ui.Successf("Created %s", configPath)
		if cfg.API.Token == "" {
			ui.Warning("No API token set; edit api.token in the config or export LOGSEQ_API_TOKEN")
		}
		fmt.Println()
		fmt.Println("Next steps:")
		fmt.Println("  1. Enable the HTTP APIs server in Logseq (Settings > Features)")
		fmt.Println("  2. Run 'lsq status' to verify the connection")
		fmt.Println("  3. Configure your AI client to run 'lsq --mcp'")
	}
}
