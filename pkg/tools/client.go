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
	"encoding/json"

	"github.com/kraklabs/lsq/pkg/logseq"
)

// Graph is the interface the tools use to talk to Logseq. *logseq.Client
// implements it; tests use MockGraph instead of a live HTTP endpoint.
type Graph interface {
	// Pages
	GetAllPages(ctx context.Context) ([]logseq.Page, error)
	GetPage(ctx context.Context, nameOrUUID string) (*logseq.Page, error)
	CreatePage(ctx context.Context, name string, properties map[string]any) (*logseq.Page, error)
	GetPageBlocksTree(ctx context.Context, pageNameOrUUID string) ([]logseq.Block, error)
	GetCurrentPage(ctx context.Context) (*logseq.Page, error)
	DeletePage(ctx context.Context, pageName string) error

	// Blocks
	GetBlock(ctx context.Context, uuid string) (*logseq.Block, error)
	GetCurrentBlock(ctx context.Context) (*logseq.Block, error)
	InsertBlock(ctx context.Context, content string, opts logseq.InsertBlockOptions) (*logseq.Block, error)
	UpdateBlock(ctx context.Context, uuid, content string, properties map[string]any) (*logseq.Block, error)
	RemoveBlock(ctx context.Context, uuid string) error

	// Queries and app state
	Search(ctx context.Context, query string) ([]logseq.SearchResult, error)
	FindIncompleteTodos(ctx context.Context) ([]logseq.TodoItem, error)
	DatascriptQuery(ctx context.Context, query string) (json.RawMessage, error)
	GetCurrentGraph(ctx context.Context) (json.RawMessage, error)
	GetStateFromStore(ctx context.Context, key string) (json.RawMessage, error)
	GetUserConfigs(ctx context.Context) (json.RawMessage, error)
}

var _ Graph = (*logseq.Client)(nil)
