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
	"errors"

	"github.com/kraklabs/lsq/pkg/logseq"
)

// errNotConfigured is returned by MockGraph methods whose func field was
// left nil, so a tool accidentally calling an unconfigured method fails
// loudly instead of silently succeeding.
var errNotConfigured = errors.New("mock method not configured")

// MockGraph is a configurable implementation of the Graph interface for
// unit testing. Only the methods a test exercises need a func field set.
//
// Usage:
//
//	client := &MockGraph{
//	    GetAllPagesFunc: func(ctx context.Context) ([]logseq.Page, error) {
//	        return []logseq.Page{{Name: "journal"}}, nil
//	    },
//	}
//	result, err := ListPages(ctx, client, nil)
type MockGraph struct {
	GetAllPagesFunc       func(ctx context.Context) ([]logseq.Page, error)
	GetPageFunc           func(ctx context.Context, nameOrUUID string) (*logseq.Page, error)
	CreatePageFunc        func(ctx context.Context, name string, properties map[string]any) (*logseq.Page, error)
	GetPageBlocksTreeFunc func(ctx context.Context, pageNameOrUUID string) ([]logseq.Block, error)
	GetCurrentPageFunc    func(ctx context.Context) (*logseq.Page, error)
	DeletePageFunc        func(ctx context.Context, pageName string) error

	GetBlockFunc        func(ctx context.Context, uuid string) (*logseq.Block, error)
	GetCurrentBlockFunc func(ctx context.Context) (*logseq.Block, error)
	InsertBlockFunc     func(ctx context.Context, content string, opts logseq.InsertBlockOptions) (*logseq.Block, error)
	UpdateBlockFunc     func(ctx context.Context, uuid, content string, properties map[string]any) (*logseq.Block, error)
	RemoveBlockFunc     func(ctx context.Context, uuid string) error

	SearchFunc              func(ctx context.Context, query string) ([]logseq.SearchResult, error)
	FindIncompleteTodosFunc func(ctx context.Context) ([]logseq.TodoItem, error)
	DatascriptQueryFunc     func(ctx context.Context, query string) (json.RawMessage, error)
	GetCurrentGraphFunc     func(ctx context.Context) (json.RawMessage, error)
	GetStateFromStoreFunc   func(ctx context.Context, key string) (json.RawMessage, error)
	GetUserConfigsFunc      func(ctx context.Context) (json.RawMessage, error)
}

var _ Graph = (*MockGraph)(nil)

func (m *MockGraph) GetAllPages(ctx context.Context) ([]logseq.Page, error) {
	if m.GetAllPagesFunc != nil {
		return m.GetAllPagesFunc(ctx)
	}
	return nil, errNotConfigured
}

func (m *MockGraph) GetPage(ctx context.Context, nameOrUUID string) (*logseq.Page, error) {
	if m.GetPageFunc != nil {
		return m.GetPageFunc(ctx, nameOrUUID)
	}
	return nil, errNotConfigured
}

func (m *MockGraph) CreatePage(ctx context.Context, name string, properties map[string]any) (*logseq.Page, error) {
	if m.CreatePageFunc != nil {
		return m.CreatePageFunc(ctx, name, properties)
	}
	return nil, errNotConfigured
}

func (m *MockGraph) GetPageBlocksTree(ctx context.Context, pageNameOrUUID string) ([]logseq.Block, error) {
	if m.GetPageBlocksTreeFunc != nil {
		return m.GetPageBlocksTreeFunc(ctx, pageNameOrUUID)
	}
	return nil, errNotConfigured
}

func (m *MockGraph) GetCurrentPage(ctx context.Context) (*logseq.Page, error) {
	if m.GetCurrentPageFunc != nil {
		return m.GetCurrentPageFunc(ctx)
	}
	return nil, errNotConfigured
}

func (m *MockGraph) DeletePage(ctx context.Context, pageName string) error {
	if m.DeletePageFunc != nil {
		return m.DeletePageFunc(ctx, pageName)
	}
	return errNotConfigured
}

func (m *MockGraph) GetBlock(ctx context.Context, uuid string) (*logseq.Block, error) {
	if m.GetBlockFunc != nil {
		return m.GetBlockFunc(ctx, uuid)
	}
	return nil, errNotConfigured
}

func (m *MockGraph) GetCurrentBlock(ctx context.Context) (*logseq.Block, error) {
	if m.GetCurrentBlockFunc != nil {
		return m.GetCurrentBlockFunc(ctx)
	}
	return nil, errNotConfigured
}

func (m *MockGraph) InsertBlock(ctx context.Context, content string, opts logseq.InsertBlockOptions) (*logseq.Block, error) {
	if m.InsertBlockFunc != nil {
		return m.InsertBlockFunc(ctx, content, opts)
	}
	return nil, errNotConfigured
}

func (m *MockGraph) UpdateBlock(ctx context.Context, uuid, content string, properties map[string]any) (*logseq.Block, error) {
	if m.UpdateBlockFunc != nil {
		return m.UpdateBlockFunc(ctx, uuid, content, properties)
	}
	return nil, errNotConfigured
}

func (m *MockGraph) RemoveBlock(ctx context.Context, uuid string) error {
	if m.RemoveBlockFunc != nil {
		return m.RemoveBlockFunc(ctx, uuid)
	}
	return errNotConfigured
}

func (m *MockGraph) Search(ctx context.Context, query string) ([]logseq.SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil, errNotConfigured
}

func (m *MockGraph) FindIncompleteTodos(ctx context.Context) ([]logseq.TodoItem, error) {
	if m.FindIncompleteTodosFunc != nil {
		return m.FindIncompleteTodosFunc(ctx)
	}
	return nil, errNotConfigured
}

func (m *MockGraph) DatascriptQuery(ctx context.Context, query string) (json.RawMessage, error) {
	if m.DatascriptQueryFunc != nil {
		return m.DatascriptQueryFunc(ctx, query)
	}
	return nil, errNotConfigured
}

func (m *MockGraph) GetCurrentGraph(ctx context.Context) (json.RawMessage, error) {
	if m.GetCurrentGraphFunc != nil {
		return m.GetCurrentGraphFunc(ctx)
	}
	return nil, errNotConfigured
}

func (m *MockGraph) GetStateFromStore(ctx context.Context, key string) (json.RawMessage, error) {
	if m.GetStateFromStoreFunc != nil {
		return m.GetStateFromStoreFunc(ctx, key)
	}
	return nil, errNotConfigured
}

func (m *MockGraph) GetUserConfigs(ctx context.Context) (json.RawMessage, error) {
	if m.GetUserConfigsFunc != nil {
		return m.GetUserConfigsFunc(ctx)
	}
	return nil, errNotConfigured
}
