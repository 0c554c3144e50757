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

// Page is a page in the Logseq graph. Page names are unique within a
// graph; the UUID is the stable identifier assigned by Logseq.
type Page struct {
	Name         string         `json:"name"`
	UUID         string         `json:"uuid"`
	OriginalName string         `json:"original-name,omitempty"`
	Properties   map[string]any `json:"properties,omitempty"`
}

// PageRef is the numeric page reference Logseq attaches to blocks.
type PageRef struct {
	ID uint64 `json:"id"`
}

// Block is a node in a page's content tree. Children are owned by their
// parent; the tree is rebuilt from Logseq on every fetch, so no cycles
// are possible.
type Block struct {
	UUID       string         `json:"uuid"`
	Content    string         `json:"content"`
	Page       *PageRef       `json:"page,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
	Children   []Block        `json:"children,omitempty"`
	Level      *int           `json:"level,omitempty"`
	Format     string         `json:"format,omitempty"`
}

// SearchResult wraps a matching block. Score is nil when the search
// mechanism provides no ranking (DataScript queries never do).
type SearchResult struct {
	Block Block    `json:"block"`
	Score *float64 `json:"score,omitempty"`
}

// TodoItem is a todo-like block found by FindIncompleteTodos. Marker is
// one of TODO, DOING, LATER, NOW, WAITING.
type TodoItem struct {
	UUID     string `json:"uuid"`
	Content  string `json:"content"`
	Marker   string `json:"marker"`
	PageName string `json:"page_name"`
	Priority string `json:"priority,omitempty"`
}

// InsertBlockOptions configures InsertBlock. The zero value carries no
// constraints: it serializes to an empty object and Logseq inserts the
// block at the current editing position.
type InsertBlockOptions struct {
	Parent     string         `json:"parent,omitempty"`
	Sibling    string         `json:"sibling,omitempty"`
	Before     *bool          `json:"before,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}
