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

	"github.com/kraklabs/lsq/pkg/logseq"
)

// CreateBlock inserts a new block, under a parent page/block or next to
// a sibling block.
func CreateBlock(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	content := GetStringArg(args, "content", "")
	if content == "" {
		return NewError("Missing content parameter"), nil
	}

	opts := logseq.InsertBlockOptions{
		Parent:  GetStringArg(args, "parent", ""),
		Sibling: GetStringArg(args, "sibling", ""),
	}

	block, err := client.InsertBlock(ctx, content, opts)
	if err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(fmt.Sprintf("Created block with UUID: %s", block.UUID)), nil
}

// GetBlock returns a block's details as pretty-printed JSON.
func GetBlock(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	uuid := GetStringArg(args, "uuid", "")
	if uuid == "" {
		return NewError("Missing uuid parameter"), nil
	}

	block, err := client.GetBlock(ctx, uuid)
	if err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(prettyPrint(block)), nil
}

// GetCurrentBlock returns the block currently focused in the Logseq UI.
func GetCurrentBlock(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	block, err := client.GetCurrentBlock(ctx)
	if err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(prettyPrint(block)), nil
}

// UpdateBlock replaces a block's content, optionally updating its
// properties too.
func UpdateBlock(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	uuid := GetStringArg(args, "uuid", "")
	if uuid == "" {
		return NewError("Missing uuid parameter"), nil
	}
	content := GetStringArg(args, "content", "")
	if content == "" {
		return NewError("Missing content parameter"), nil
	}
	properties := GetMapArg(args, "properties")

	block, err := client.UpdateBlock(ctx, uuid, content, properties)
	if err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(fmt.Sprintf("Updated block with UUID: %s", block.UUID)), nil
}

// DeleteBlock removes a block and its children.
func DeleteBlock(ctx context.Context, client Graph, args map[string]any) (*ToolResult, error) {
	uuid := GetStringArg(args, "uuid", "")
	if uuid == "" {
		return NewError("Missing uuid parameter"), nil
	}

	if err := client.RemoveBlock(ctx, uuid); err != nil {
		return NewError(err.Error()), nil
	}
	return NewResult(fmt.Sprintf("Successfully deleted block with UUID: %s", uuid)), nil
}
