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

import (
	"context"
	"fmt"
	"strings"
)

// ListPages returns all page names in the graph, one "- name" line per
// page, in the order the API reports them.
func ListPages(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	pages, err := client.GetAllPages(ctx)
	if err != nil {
		return NewError(err.Error()), nil
	}

	lines := make([]string, 0, len(pages))
	for _, p := range pages {
		lines = append(lines, fmt.Sprintf("- %s", p.Name))
	}
	return NewResult(strings.Join(lines, "\n")), nil
}

// GetPageContent renders a page's block tree as markdown.
func GetPageContent(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	pageName := GetStringArg(args, "page_name", "")
	if pageName == "" {
		return NewError("Missing page_name parameter"), nil
	}

	blocks, err := client.GetPageBlocksTree(ctx, pageName)
	if err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(FormatBlocksAsMarkdown(blocks)), nil
}

// CreatePage creates a new page, optionally with properties.
func CreatePage(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	name := GetStringArg(args, "name", "")
	if name == "" {
		return NewError("Missing name parameter"), nil
	}
	properties := GetMapArg(args, "properties")

	page, err := client.CreatePage(ctx, name, properties)
	if err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(fmt.Sprintf("Created page: %s", page.Name)), nil
}

// GetPage returns a page's details as pretty-printed JSON. The page can
// be addressed by name or UUID.
func GetPage(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	nameOrUUID := GetStringArg(args, "name_or_uuid", "")
	if nameOrUUID == "" {
		return NewError("Missing name_or_uuid parameter"), nil
	}

	page, err := client.GetPage(ctx, nameOrUUID)
	if err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(prettyPrint(page)), nil
}

// GetCurrentPage returns the page currently focused in the Logseq UI.
func GetCurrentPage(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	page, err := client.GetCurrentPage(ctx)
	if err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(prettyPrint(page)), nil
}

// DeletePage deletes a page and all of its blocks.
func DeletePage(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	pageName := GetStringArg(args, "page_name", "")
	if pageName == "" {
		return NewError("Missing page_name parameter"), nil
	}

	if err := client.DeletePage(ctx, pageName); err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(fmt.Sprintf("Successfully deleted page: %s", pageName)), nil
}
