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
	"fmt"
	"strings"

	"github.com/kraklabs/lsq/pkg/logseq"
)

// markerOrder is the display priority for todo markers. Markers outside
// this vocabulary are never emitted; the todo query already filters to
// these five, so such items cannot currently reach the formatter.
var markerOrder = []string{"NOW", "DOING", "TODO", "LATER", "WAITING"}

// FormatBlocksAsMarkdown renders a block tree as a markdown bullet
// list, one line per block, indented two spaces per nesting level.
// Traversal is preorder and child order is preserved.
func FormatBlocksAsMarkdown(blocks []logseq.Block) string {
	var sb strings.Builder
	for i := range blocks {
		formatBlockRecursive(&sb, &blocks[i], 0)
	}
	return sb.String()
}

func formatBlockRecursive(sb *strings.Builder, block *logseq.Block, indentLevel int) {
	sb.WriteString(strings.Repeat("  ", indentLevel))
	sb.WriteString("* ")
	sb.WriteString(block.Content)
	sb.WriteString("\n")

	for i := range block.Children {
		formatBlockRecursive(sb, &block.Children[i], indentLevel+1)
	}
}

// FormatSearchResults renders search results as numbered text entries.
func FormatSearchResults(results []logseq.SearchResult) string {
	if len(results) == 0 {
		return "No results found."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d results:\n\n", len(results))

	for i, result := range results {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, result.Block.Content)
		if result.Block.Page != nil {
			fmt.Fprintf(&sb, "   Page ID: %d\n", result.Block.Page.ID)
		}
		if result.Score != nil {
			fmt.Fprintf(&sb, "   Score: %.2f\n", *result.Score)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatTodos renders todos grouped by marker in priority order
// (NOW, DOING, TODO, LATER, WAITING), followed by per-marker counts.
// Within a group, items keep their original relative order.
func FormatTodos(todos []logseq.TodoItem) string {
	if len(todos) == 0 {
		return "No incomplete todos found."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d incomplete todos:\n\n", len(todos))

	byMarker := make(map[string][]logseq.TodoItem)
	for _, todo := range todos {
		byMarker[todo.Marker] = append(byMarker[todo.Marker], todo)
	}

	for _, marker := range markerOrder {
		markerTodos, ok := byMarker[marker]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "## %s (%d items)\n", marker, len(markerTodos))
		for i, todo := range markerTodos {
			fmt.Fprintf(&sb, "%d. **%s** %s\n", i+1, todo.Marker, todo.Content)
			fmt.Fprintf(&sb, "   📄 Page: %s\n", todo.PageName)
			fmt.Fprintf(&sb, "   🆔 UUID: %s\n", todo.UUID)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("---\n")
	sb.WriteString("**Summary by Status:**\n")
	for _, marker := range markerOrder {
		if markerTodos, ok := byMarker[marker]; ok {
			fmt.Fprintf(&sb, "- %s: %d todos\n", marker, len(markerTodos))
		}
	}

	return sb.String()
}
