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

package logseq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// GetAllPages returns every page in the current graph.
func (c *Client) GetAllPages(ctx context.Context) ([]Page, error) {
	raw, err := c.Invoke(ctx, "logseq.Editor.getAllPages")
	if err != nil {
		return nil, err
	}
	var pages []Page
	if err := json.Unmarshal(raw, &pages); err != nil {
		return nil, fmt.Errorf("decode getAllPages response: %w", err)
	}
	return pages, nil
}

// GetPage fetches a page by name or uuid. Logseq answers null when no
// such page exists; that surfaces as an error, never as an empty page.
func (c *Client) GetPage(ctx context.Context, nameOrUUID string) (*Page, error) {
	raw, err := c.Invoke(ctx, "logseq.Editor.getPage", nameOrUUID)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, fmt.Errorf("page %q not found", nameOrUUID)
	}
	var page Page
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decode getPage response: %w", err)
	}
	return &page, nil
}

// CreatePage creates a new page. Properties may be nil; the argument is
// still sent (as null) so the positional argument list stays fixed.
func (c *Client) CreatePage(ctx context.Context, name string, properties map[string]any) (*Page, error) {
	raw, err := c.Invoke(ctx, "logseq.Editor.createPage", name, properties)
	if err != nil {
		return nil, err
	}
	var page Page
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decode createPage response: %w", err)
	}
	return &page, nil
}

// GetPageBlocksTree returns the full block tree of a page, in document
// order. Child order is significant and preserved.
func (c *Client) GetPageBlocksTree(ctx context.Context, pageNameOrUUID string) ([]Block, error) {
	raw, err := c.Invoke(ctx, "logseq.Editor.getPageBlocksTree", pageNameOrUUID)
	if err != nil {
		return nil, err
	}
	var blocks []Block
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil, fmt.Errorf("decode getPageBlocksTree response: %w", err)
	}
	return blocks, nil
}

// GetBlock fetches a block by uuid. A null response means the uuid does
// not resolve to a block.
func (c *Client) GetBlock(ctx context.Context, uuid string) (*Block, error) {
	raw, err := c.Invoke(ctx, "logseq.Editor.getBlock", uuid)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, fmt.Errorf("block %q not found", uuid)
	}
	var block Block
	if err := json.Unmarshal(raw, &block); err != nil {
		return nil, fmt.Errorf("decode getBlock response: %w", err)
	}
	return &block, nil
}

// GetCurrentPage returns the page currently focused in the Logseq UI.
// Logseq answers null when no page has focus.
func (c *Client) GetCurrentPage(ctx context.Context) (*Page, error) {
	raw, err := c.Invoke(ctx, "logseq.Editor.getCurrentPage")
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, errors.New("no page is currently active")
	}
	var page Page
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decode getCurrentPage response: %w", err)
	}
	return &page, nil
}

// GetCurrentBlock returns the block currently focused in the Logseq UI.
// Logseq answers null when no block has focus.
func (c *Client) GetCurrentBlock(ctx context.Context) (*Block, error) {
	raw, err := c.Invoke(ctx, "logseq.Editor.getCurrentBlock")
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, errors.New("no block is currently active")
	}
	var block Block
	if err := json.Unmarshal(raw, &block); err != nil {
		return nil, fmt.Errorf("decode getCurrentBlock response: %w", err)
	}
	return &block, nil
}

// InsertBlock creates a new block and normalizes the API's inconsistent
// response shapes into one *Block:
//
//   - null: fatal, the insert has no recoverable identifier.
//   - object with uuid, or bare uuid string: a follow-up GetBlock
//     fetches the full block. If that follow-up fails, a minimal block
//     is synthesized from the locally-known content and uuid instead of
//     propagating the failure.
//   - complete block object: returned directly, no follow-up.
//   - anything else: fatal, with the payload dumped for diagnosis.
func (c *Client) InsertBlock(ctx context.Context, content string, opts InsertBlockOptions) (*Block, error) {
	raw, err := c.Invoke(ctx, "logseq.Editor.insertBlock", content, opts)
	if err != nil {
		return nil, err
	}

	shape, uuid, block := classifyInsertResponse(raw)
	switch shape {
	case shapeNull:
		return nil, errors.New("insertBlock returned null - block creation may have failed")

	case shapeFullBlock:
		return block, nil

	case shapeUUIDObject, shapeBareString:
		recordFollowUpFetch()
		full, err := c.GetBlock(ctx, uuid)
		if err != nil {
			// Identifier is known even though the fetch failed; a
			// reduced-fidelity block beats failing the whole insert.
			return &Block{
				UUID:       uuid,
				Content:    content,
				Properties: opts.Properties,
			}, nil
		}
		return full, nil

	default:
		return nil, fmt.Errorf("unexpected insertBlock response format: %s", prettyJSON(raw))
	}
}

// UpdateBlock replaces a block's content (and optionally properties).
// Logseq answers null on success, so a null response triggers a
// follow-up GetBlock for the current state. Unlike insert, null is not
// fatal here: the target identifier is already known.
func (c *Client) UpdateBlock(ctx context.Context, uuid, content string, properties map[string]any) (*Block, error) {
	args := []any{uuid, content}
	if properties != nil {
		args = append(args, properties)
	}
	raw, err := c.Invoke(ctx, "logseq.Editor.updateBlock", args...)
	if err != nil {
		return nil, err
	}

	if isNull(raw) {
		recordFollowUpFetch()
		return c.GetBlock(ctx, uuid)
	}

	var block Block
	if err := json.Unmarshal(raw, &block); err != nil {
		return nil, fmt.Errorf("decode updateBlock response: %w", err)
	}
	return &block, nil
}

// RemoveBlock deletes a block and its children.
func (c *Client) RemoveBlock(ctx context.Context, uuid string) error {
	raw, err := c.Invoke(ctx, "logseq.Editor.removeBlock", uuid)
	if err != nil {
		return err
	}
	return checkVoidResponse(raw, "remove block")
}

// DeletePage deletes a page and all its blocks.
func (c *Client) DeletePage(ctx context.Context, pageName string) error {
	raw, err := c.Invoke(ctx, "logseq.Editor.deletePage", pageName)
	if err != nil {
		return err
	}
	return checkVoidResponse(raw, "delete page")
}

// checkVoidResponse interprets the response of operations that answer
// null on success. A non-null object is only a failure when it carries
// an explicit error field.
func checkVoidResponse(raw json.RawMessage, op string) error {
	if isNull(raw) {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	if errRaw, ok := obj["error"]; ok {
		var detail any
		_ = json.Unmarshal(errRaw, &detail)
		return fmt.Errorf("failed to %s: %v", op, detail)
	}
	return nil
}
