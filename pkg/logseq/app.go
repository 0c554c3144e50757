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
)

// DatascriptQuery runs an ad-hoc DataScript query against the graph
// database and returns the raw result. The query string is passed
// through unmodified; callers interpolating user input are responsible
// for escaping it.
func (c *Client) DatascriptQuery(ctx context.Context, query string) (json.RawMessage, error) {
	return c.Invoke(ctx, "logseq.DB.datascriptQuery", query)
}

// GetCurrentGraph returns name, path and configuration of the graph
// currently open in Logseq.
func (c *Client) GetCurrentGraph(ctx context.Context) (json.RawMessage, error) {
	return c.Invoke(ctx, "logseq.App.getCurrentGraph")
}

// GetStateFromStore reads a value from Logseq's application state store
// by key path, e.g. "ui/theme".
func (c *Client) GetStateFromStore(ctx context.Context, key string) (json.RawMessage, error) {
	return c.Invoke(ctx, "logseq.App.getStateFromStore", key)
}

// GetUserConfigs returns the user's Logseq configuration.
func (c *Client) GetUserConfigs(ctx context.Context) (json.RawMessage, error) {
	return c.Invoke(ctx, "logseq.App.getUserConfigs")
}
