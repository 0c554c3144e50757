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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is where the Logseq HTTP APIs server listens by default.
const DefaultBaseURL = "http://localhost:12315"

// Client provides access to the Logseq HTTP API.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a Logseq client. An empty baseURL falls back to
// DefaultBaseURL. Timeouts and cancellation are the HTTP transport's
// responsibility; the client itself never retries.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// apiRequest is the wire format of a Logseq API call.
type apiRequest struct {
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// Invoke performs one named API call with positional arguments and
// returns the raw JSON response. It is schema-agnostic: the typed
// wrappers layer their own decoding on top. A non-2xx status fails with
// the status code and response body; the body of a 2xx response must be
// valid JSON.
func (c *Client) Invoke(ctx context.Context, method string, args ...any) (json.RawMessage, error) {
	if args == nil {
		args = []any{}
	}
	reqBody, err := json.Marshal(apiRequest{Method: method, Args: args})
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/api", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		recordAPIError(method)
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		recordAPIError(method)
		text := string(body)
		if readErr != nil {
			text = "unknown error"
		}
		return nil, fmt.Errorf("%s failed (status %d): %s", method, resp.StatusCode, text)
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		recordAPIError(method)
		return nil, fmt.Errorf("parse %s response: %w", method, err)
	}

	recordAPICall(method, time.Since(start))
	return raw, nil
}

// isNull reports whether a raw response is JSON null or absent.
func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
