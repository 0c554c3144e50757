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

// Package tools provides MCP tool implementations over the Logseq API.
//
// Each tool is a plain function taking a Graph (the subset of
// *logseq.Client the tools need, mockable for tests) and the raw
// arguments map from the MCP tools/call request, and returning a
// ToolResult. Argument validation failures and remote errors are
// reported as error results, never as Go errors: a failed tool call
// must not take down the server.
//
// # Available tools
//
// Page tools:
//   - ListPages: list all page names
//   - GetPageContent: render a page's block tree as markdown
//   - CreatePage: create a page with optional properties
//   - GetPage, GetCurrentPage: page details as JSON
//   - DeletePage: delete a page and its blocks
//
// Block tools:
//   - CreateBlock: insert a block under a parent or next to a sibling
//   - GetBlock, GetCurrentBlock: block details as JSON
//   - UpdateBlock: replace a block's content and properties
//   - DeleteBlock: remove a block and its children
//
// Query tools:
//   - Search: substring search across all block content
//   - FindIncompleteTodos: todos grouped by marker
//   - DatascriptQuery: raw DataScript passthrough
//   - GetCurrentGraph, GetStateFromStore, GetUserConfigs: app state
//
// The formatters (FormatBlocksAsMarkdown, FormatSearchResults,
// FormatTodos) are pure functions and deterministic given their input.
package tools
