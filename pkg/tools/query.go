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

package tools

import "context"

// Search finds blocks whose content contains the query text and renders
// them as numbered results.
func Search(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	query := GetStringArg(args, "query", "")
	if query == "" {
		return NewError("Missing query parameter"), nil
	}

	results, err := client.Search(ctx, query)
	if err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(FormatSearchResults(results)), nil
}

// FindIncompleteTodos reports all incomplete todos grouped by marker.
func FindIncompleteTodos(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	todos, err := client.FindIncompleteTodos(ctx)
	if err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(FormatTodos(todos)), nil
}

// DatascriptQuery runs a caller-supplied DataScript query and returns
// the raw result as pretty-printed JSON.
func DatascriptQuery(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	query := GetStringArg(args, "query", "")
	if query == "" {
		return NewError("Missing query parameter"), nil
	}

	result, err := client.DatascriptQuery(ctx, query)
	if err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(prettyPrintRaw(result)), nil
}

// GetCurrentGraph returns information about the currently open graph.
func GetCurrentGraph(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	graph, err := client.GetCurrentGraph(ctx)
	if err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(prettyPrintRaw(graph)), nil
}

// GetStateFromStore reads a value from the app state store by key, for
// example "route-match" or "sidebar/blocks".
func GetStateFromStore(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	key := GetStringArg(args, "key", "")
	if key == "" {
		return NewError("Missing key parameter"), nil
	}

	state, err := client.GetStateFromStore(ctx, key)
	if err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(prettyPrintRaw(state)), nil
}

// GetUserConfigs returns the user's Logseq configuration.
func GetUserConfigs(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	configs, err := client.GetUserConfigs(ctx)
	if err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(prettyPrintRaw(configs)), nil
}
