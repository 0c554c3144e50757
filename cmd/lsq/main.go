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

// Package main implements the lsq CLI for working with a local Logseq graph.
//
// Usage:
//
//	lsq --mcp                     Start as MCP server (JSON-RPC over stdio)
//	lsq init                      Create .lsq/config.yaml configuration
//	lsq status [--json]           Check the Logseq API connection
//	lsq pages [--json]            List all pages in the graph
//	lsq search <query>            Search block content
//	lsq query <datascript>        Execute a raw DataScript query
//	lsq todos                     List incomplete todos grouped by marker
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/lsq/internal/errors"
	"github.com/kraklabs/lsq/internal/ui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// GlobalFlags holds the global CLI flags that apply to all commands.
type GlobalFlags struct {
	JSON  bool
	Quiet bool
}

func main() {
	var (
		showVersion = flag.BoolP("version", "V", false, "Show version and exit")
		mcpMode     = flag.Bool("mcp", false, "Start as MCP server (JSON-RPC over stdio)")
		configPath  = flag.StringP("config", "c", "", "Path to .lsq/config.yaml")
		jsonOutput  = flag.Bool("json", false, "Output in JSON format")
		quiet       = flag.BoolP("quiet", "q", false, "Suppress non-essential output")
		noColor     = flag.Bool("no-color", false, "Disable colored output")
		metricsAddr = flag.String("metrics-addr", "", "Serve Prometheus /metrics on this address in MCP mode (e.g. :9090)")
	)

	flag.SetInterspersed(false)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `lsq - Logseq MCP server and CLI

lsq exposes a local Logseq graph to AI agents via MCP
(Model Context Protocol) and offers a small CLI for
inspecting the graph directly.

Usage:
  lsq <command> [options]

Commands:
  init          Create .lsq/config.yaml configuration
  status        Check the Logseq API connection
  pages         List all pages in the graph
  search        Search block content
  query         Execute a raw DataScript query (debugging)
  todos         List incomplete todos grouped by marker

Global Options:
  --json            Output in JSON format
  -q, --quiet       Suppress non-essential output
  --no-color        Disable colored output
  --mcp             Start as MCP server (JSON-RPC over stdio)
  --metrics-addr    Serve Prometheus /metrics in MCP mode (e.g. :9090)
  -c, --config      Path to .lsq/config.yaml
  -V, --version     Show version and exit

Examples:
  lsq init                         Create configuration
  lsq --mcp                        Start MCP server
  lsq status                       Check API connection
  lsq pages --json                 List pages as JSON
  lsq search "project kickoff"     Find blocks by content
  lsq todos                        Show outstanding tasks
  lsq query "[:find ?n :where [?p :block/name ?n]]"

Getting Started:
  1. Enable the HTTP APIs server in Logseq (Settings > Features)
  2. Create an API token in Logseq and run:  lsq init
  3. Configure your AI client to run:        lsq --mcp

Environment Variables:
  LSQ_CONFIG_PATH    Path to config file
  LOGSEQ_API_URL     Logseq API URL (default: http://localhost:12315)
  LOGSEQ_API_TOKEN   Logseq API bearer token

`)
	}

	flag.Parse()

	ui.InitColors(*noColor)

	if *showVersion {
		fmt.Printf("lsq version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		os.Exit(errors.ExitSuccess)
	}

	if *jsonOutput {
		*quiet = true
	}

	globals := GlobalFlags{
		JSON:  *jsonOutput,
		Quiet: *quiet,
	}

	if *mcpMode {
		runMCPServer(*configPath, *metricsAddr)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(errors.ExitInput)
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "init":
		runInit(cmdArgs, globals)
	case "status":
		runStatus(cmdArgs, *configPath, globals)
	case "pages":
		runPages(cmdArgs, *configPath, globals)
	case "search":
		runSearch(cmdArgs, *configPath, globals)
	case "query":
		runQuery(cmdArgs, *configPath, globals)
	case "todos":
		runTodos(cmdArgs, *configPath, globals)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(errors.ExitInput)
	}
}
