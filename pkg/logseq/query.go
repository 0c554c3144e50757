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
	"fmt"
	"strings"
)

// incompleteTodoQuery finds every block carrying an incomplete todo
// marker, joined with its page name. Rows come back as positional
// [uuid, content, marker, page-name].
const incompleteTodoQuery = `[:find ?uuid ?content ?marker ?page-name
	:where
	[?b :block/uuid ?uuid]
	[?b :block/content ?content]
	[?b :block/marker ?marker]
	[?b :block/page ?p]
	[?p :block/name ?page-name]
	[(contains? #{"TODO" "DOING" "LATER" "NOW" "WAITING"} ?marker)]]`

// escapeQueryText escapes double quotes in caller-supplied text before
// it is interpolated into a DataScript string literal. Minimal defense:
// nothing else in the query syntax is escaped here.
func escapeQueryText(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Search finds blocks whose content contains the query text. It issues
// one substring-match DataScript query; the mechanism provides no
// ranking, so Score is always nil.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	script := fmt.Sprintf(
		`[:find ?uuid ?content :where [?b :block/uuid ?uuid] [?b :block/content ?content] [(clojure.string/includes? ?content "%s")]]`,
		escapeQueryText(query),
	)

	raw, err := c.DatascriptQuery(ctx, script)
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	for _, row := range decodeRows(raw) {
		fields, ok := stringFields(row, 2)
		if !ok {
			continue
		}
		results = append(results, SearchResult{
			Block: Block{
				UUID:    fields[0],
				Content: fields[1],
			},
		})
	}
	return results, nil
}

// FindIncompleteTodos returns every todo-like block in the graph with a
// marker of TODO, DOING, LATER, NOW or WAITING.
func (c *Client) FindIncompleteTodos(ctx context.Context) ([]TodoItem, error) {
	raw, err := c.DatascriptQuery(ctx, incompleteTodoQuery)
	if err != nil {
		return nil, err
	}

	var todos []TodoItem
	for _, row := range decodeRows(raw) {
		fields, ok := stringFields(row, 4)
		if !ok {
			continue
		}
		todos = append(todos, TodoItem{
			UUID:     fields[0],
			Content:  fields[1],
			Marker:   fields[2],
			PageName: fields[3],
		})
	}
	return todos, nil
}

// decodeRows extracts the row array from a DataScript result. A result
// that is not an array yields no rows rather than an error.
func decodeRows(raw json.RawMessage) []json.RawMessage {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil
	}
	return rows
}

// stringFields decodes a row and checks that it has at least n fields,
// all strings. Malformed or short rows are skipped by callers rather
// than failing the whole query.
func stringFields(row json.RawMessage, n int) ([]string, bool) {
	var fields []any
	if err := json.Unmarshal(row, &fields); err != nil {
		return nil, false
	}
	if len(fields) < n {
		return nil, false
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		s, ok := fields[i].(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}
