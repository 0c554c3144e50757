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

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kraklabs/lsq/internal/errors"
	"github.com/kraklabs/lsq/pkg/tools"
)

const (
	mcpVersion    = "0.1.0"
	mcpServerName = "lsq"
)

// lsqInstructions is the MCP instructions text sent to agents on initialize.
const lsqInstructions = `lsq gives you read/write access to the user's Logseq knowledge graph via the local Logseq HTTP API.

## Reading the graph

Use list_pages to discover pages, get_page_content to read a page as markdown, and search to find blocks by content. get_current_page and get_current_block tell you what the user is looking at right now.

## Writing to the graph

create_page, create_block, and update_block modify the graph. Block content is markdown and may use Logseq syntax ([[links]], #tags, TODO markers). delete_block and delete_page are permanent; use them only when the user asks.

## Tasks

find_incomplete_todos returns every outstanding task (TODO, DOING, NOW, LATER, WAITING) across all pages, grouped by marker.

## Advanced queries

datascript_query runs raw DataScript against the graph database. Use it only when the other tools cannot express the query; it requires knowledge of Logseq's data schema.`

// JSON-RPC 2.0 types for MCP protocol.

type jsonRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type jsonRPCResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id,omitempty"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type mcpServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type mcpCapabilities struct {
	Tools map[string]any `json:"tools,omitempty"`
}

type mcpInitializeResult struct {
	ProtocolVersion string          `json:"protocolVersion"`
	Capabilities    mcpCapabilities `json:"capabilities"`
	ServerInfo      mcpServerInfo   `json:"serverInfo"`
	Instructions    string          `json:"instructions,omitempty"`
}

type mcpTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type mcpToolsListResult struct {
	Tools []mcpTool `json:"tools"`
}

type mcpToolCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

type mcpToolResult struct {
	Content []mcpContent `json:"content"`
	IsError bool         `json:"isError,omitempty"`
}

type mcpContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// mcpServer maintains state for the running MCP server instance.
type mcpServer struct {
	client tools.Graph
	config *Config
}

// toolHandler is the signature for MCP tool handlers.
type toolHandler func(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error)

// toolHandlers maps tool names to their handler functions.
var toolHandlers = map[string]toolHandler{
	"list_pages":            handleListPages,
	"get_page_content":      handleGetPageContent,
	"create_page":           handleCreatePage,
	"search":                handleSearch,
	"create_block":          handleCreateBlock,
	"get_page":              handleGetPage,
	"get_block":             handleGetBlock,
	"get_current_page":      handleGetCurrentPage,
	"get_current_block":     handleGetCurrentBlock,
	"datascript_query":      handleDatascriptQuery,
	"get_current_graph":     handleGetCurrentGraph,
	"get_state_from_store":  handleGetStateFromStore,
	"get_user_configs":      handleGetUserConfigs,
	"update_block":          handleUpdateBlock,
	"delete_block":          handleDeleteBlock,
	"delete_page":           handleDeletePage,
	"find_incomplete_todos": handleFindIncompleteTodos,
}

// runMCPServer starts the lsq MCP server on stdin/stdout.
func runMCPServer(configPath, metricsAddr string) {
	cfg, err := loadConfigOrEnv(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitConfig)
	}

	server := &mcpServer{
		client: cfg.NewGraphClient(),
		config: cfg,
	}

	fmt.Fprintf(os.Stderr, "lsq MCP Server v%s starting...\n", mcpVersion)
	fmt.Fprintf(os.Stderr, "  Logseq API: %s\n", cfg.API.BaseURL)

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			fmt.Fprintf(os.Stderr, "  Metrics: http://%s/metrics\n", metricsAddr)
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: metrics server stopped: %v\n", err)
			}
		}()
	}

	if err := server.serve(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: stdin read error: %v\n", err)
		os.Exit(errors.ExitInternal)
	}
}

// serve runs the JSON-RPC read loop, reading requests from r and writing responses to w.
func (s *mcpServer) serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 10*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var req jsonRPCRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: invalid JSON-RPC request: %v\n", err)
			continue
		}

		fmt.Fprintf(os.Stderr, "-> %s\n", req.Method)

		ctx := context.Background()
		resp := s.handleRequest(ctx, req)

		// Notifications get no response.
		if resp.ID == nil && resp.Result == nil && resp.Error == nil {
			continue
		}

		respBytes, err := json.Marshal(resp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot encode response: %v\n", err)
			continue
		}

		_, _ = fmt.Fprintf(w, "%s\n", respBytes)

		fmt.Fprintf(os.Stderr, "<- response sent for %s\n", req.Method)
	}

	return scanner.Err()
}

// handleRequest dispatches a JSON-RPC request to the appropriate handler.
func (s *mcpServer) handleRequest(ctx context.Context, req jsonRPCRequest) jsonRPCResponse {
	switch req.Method {
	case "initialize":
		return jsonRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result: mcpInitializeResult{
				ProtocolVersion: "2024-11-05",
				Capabilities: mcpCapabilities{
					Tools: map[string]any{"listChanged": false},
				},
				ServerInfo: mcpServerInfo{
					Name:    mcpServerName,
					Version: mcpVersion,
				},
				Instructions: lsqInstructions,
			},
		}

	case "notifications/initialized":
		return jsonRPCResponse{}

	case "tools/list":
		return jsonRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result: mcpToolsListResult{
				Tools: s.getTools(),
			},
		}

	case "tools/call":
		var params mcpToolCallParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return jsonRPCResponse{
				JSONRPC: "2.0",
				ID:      req.ID,
				Error: &rpcError{
					Code:    -32602,
					Message: "Invalid params",
					Data:    err.Error(),
				},
			}
		}

		result, err := s.handleToolCall(ctx, params)
		if err != nil {
			return jsonRPCResponse{
				JSONRPC: "2.0",
				ID:      req.ID,
				Error: &rpcError{
					Code:    -32603,
					Message: "Internal error",
					Data:    err.Error(),
				},
			}
		}

		return jsonRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  result,
		}

	default:
		return jsonRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &rpcError{
				Code:    -32601,
				Message: "Method not found",
				Data:    req.Method,
			},
		}
	}
}

// handleToolCall dispatches a tool call to the registered handler.
func (s *mcpServer) handleToolCall(ctx context.Context, params mcpToolCallParams) (*mcpToolResult, error) {
	handler, ok := toolHandlers[params.Name]
	if !ok {
		return &mcpToolResult{
			Content: []mcpContent{{Type: "text", Text: fmt.Sprintf("Unknown tool: %s", params.Name)}},
			IsError: true,
		}, nil
	}

	result, err := handler(ctx, s, params.Arguments)
	if err != nil {
		return &mcpToolResult{
			Content: []mcpContent{{Type: "text", Text: fmt.Sprintf("Error in %s: %v", params.Name, err)}},
			IsError: true,
		}, nil
	}

	return &mcpToolResult{
		Content: []mcpContent{{Type: "text", Text: result.Text}},
		IsError: result.IsError,
	}, nil
}

// getTools returns the list of all lsq MCP tool definitions.
func (s *mcpServer) getTools() []mcpTool {
	return []mcpTool{
		{
			Name:        "list_pages",
			Description: "List all pages in the current LogSeq graph. Returns a list of page names that can be used with other page-related tools.",
			InputSchema: map[string]any{
				"type":                 "object",
				"properties":           map[string]any{},
				"additionalProperties": false,
			},
		},
		{
			Name:        "get_page_content",
			Description: "Get the content of a specific page formatted as markdown. Use this to read and understand the structure of a page's blocks and content.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"page_name": map[string]any{
						"type":        "string",
						"description": "The name or UUID of the page. Page names are case-sensitive and should match exactly as they appear in LogSeq.",
					},
				},
				"required":             []string{"page_name"},
				"additionalProperties": false,
			},
		},
		{
			Name:        "create_page",
			Description: "Create a new page in LogSeq. You can optionally specify page properties like tags, template, aliases, and custom properties.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{
						"type":        "string",
						"description": "The name of the new page",
					},
					"properties": map[string]any{
						"type":        "object",
						"description": "Optional page properties. Common properties include: 'tags' (array of strings), 'template' (string), 'alias' (array of strings), 'public' (boolean), and any custom properties you want to associate with the page.",
						"properties": map[string]any{
							"tags": map[string]any{
								"type":        "array",
								"items":       map[string]any{"type": "string"},
								"description": "Tags to apply to the page",
							},
							"template": map[string]any{
								"type":        "string",
								"description": "Template to use for the page",
							},
							"alias": map[string]any{
								"type":        "array",
								"items":       map[string]any{"type": "string"},
								"description": "Alternative names for the page",
							},
							"public": map[string]any{
								"type":        "boolean",
								"description": "Whether the page should be public",
							},
						},
						"additionalProperties": true,
					},
				},
				"required":             []string{"name"},
				"additionalProperties": false,
			},
		},
		{
			Name:        "search",
			Description: "Search for content across all pages and blocks in the LogSeq graph. Returns matching blocks with their content and context.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Search query string. Supports text search across block content. Use keywords or phrases to find relevant blocks.",
					},
				},
				"required":             []string{"query"},
				"additionalProperties": false,
			},
		},
		{
			Name:        "create_block",
			Description: "Insert a new block into LogSeq. You can specify a parent page/block or insert relative to a sibling block. Returns the created block's UUID.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"content": map[string]any{
						"type":        "string",
						"description": "Block content in markdown format. Can include text, links, formatting, and LogSeq-specific syntax.",
					},
					"parent": map[string]any{
						"type":        "string",
						"description": "Parent page name or block UUID where this block should be created. If not specified, block will be created on the current page.",
					},
					"sibling": map[string]any{
						"type":        "string",
						"description": "Block UUID of an existing block. The new block will be inserted as a sibling at the same level.",
					},
				},
				"required":             []string{"content"},
				"additionalProperties": false,
			},
		},
		{
			Name:        "get_page",
			Description: "Get detailed information about a specific page by name or UUID. Returns page metadata including properties, UUID, and structure.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name_or_uuid": map[string]any{
						"type":        "string",
						"description": "The page name (case-sensitive) or UUID. Use page names as they appear in LogSeq, or the UUID from other API calls.",
					},
				},
				"required":             []string{"name_or_uuid"},
				"additionalProperties": false,
			},
		},
		{
			Name:        "get_block",
			Description: "Get detailed information about a specific block by UUID. Returns block content, properties, children, and metadata.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"uuid": map[string]any{
						"type":        "string",
						"description": "The UUID of the block to retrieve. UUIDs can be obtained from other API calls like create_block, search, or datascript_query.",
					},
				},
				"required":             []string{"uuid"},
				"additionalProperties": false,
			},
		},
		{
			Name:        "get_current_page",
			Description: "Get information about the currently active/focused page in the LogSeq interface. Useful for context-aware operations.",
			InputSchema: map[string]any{
				"type":                 "object",
				"properties":           map[string]any{},
				"additionalProperties": false,
			},
		},
		{
			Name:        "get_current_block",
			Description: "Get information about the currently active/focused block in the LogSeq interface. Useful for context-aware operations.",
			InputSchema: map[string]any{
				"type":                 "object",
				"properties":           map[string]any{},
				"additionalProperties": false,
			},
		},
		{
			Name:        "datascript_query",
			Description: "Execute a Datascript query against the LogSeq database for advanced data retrieval. Use this for complex queries that other tools cannot handle. Requires knowledge of Datascript syntax and LogSeq's data model.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Datascript query string. Example: '[:find ?uuid ?content :where [?b :block/uuid ?uuid] [?b :block/content ?content] :limit 10]'. Requires knowledge of LogSeq's data schema.",
					},
				},
				"required":             []string{"query"},
				"additionalProperties": false,
			},
		},
		{
			Name:        "get_current_graph",
			Description: "Get information about the current LogSeq graph including name, path, and configuration details.",
			InputSchema: map[string]any{
				"type":                 "object",
				"properties":           map[string]any{},
				"additionalProperties": false,
			},
		},
		{
			Name:        "get_state_from_store",
			Description: "Get application state from the LogSeq store using a key path (e.g., 'ui/theme', 'ui/sidebar-open'). Useful for accessing LogSeq's internal application state.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"key": map[string]any{
						"type":        "string",
						"description": "State key path to retrieve from LogSeq's application store. Examples: 'ui/theme', 'ui/sidebar-open', 'config/preferred-format'.",
					},
				},
				"required":             []string{"key"},
				"additionalProperties": false,
			},
		},
		{
			Name:        "get_user_configs",
			Description: "Get user configuration settings for the LogSeq application. Returns the current user preferences and configuration options.",
			InputSchema: map[string]any{
				"type":                 "object",
				"properties":           map[string]any{},
				"additionalProperties": false,
			},
		},
		{
			Name:        "update_block",
			Description: "Update the content of an existing block by UUID. Can also update block properties. Use this to modify existing content in LogSeq.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"uuid": map[string]any{
						"type":        "string",
						"description": "The UUID of the block to update. Must be an existing block UUID.",
					},
					"content": map[string]any{
						"type":        "string",
						"description": "The new content for the block in markdown format. This will replace the existing block content.",
					},
					"properties": map[string]any{
						"type":                 "object",
						"description":          "Optional block properties to update. These are key-value pairs that define metadata for the block (e.g., {'priority': 'high', 'status': 'todo'}).",
						"additionalProperties": true,
					},
				},
				"required":             []string{"uuid", "content"},
				"additionalProperties": false,
			},
		},
		{
			Name:        "delete_block",
			Description: "Delete an existing block by UUID. Use with caution as this operation cannot be undone. The block and all its children will be permanently removed from LogSeq.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"uuid": map[string]any{
						"type":        "string",
						"description": "The UUID of the block to delete. Must be an existing block UUID. This operation will also delete all child blocks.",
					},
				},
				"required":             []string{"uuid"},
				"additionalProperties": false,
			},
		},
		{
			Name:        "delete_page",
			Description: "Delete an existing page by name. Use with caution as this operation cannot be undone. The page and all its content will be permanently removed from LogSeq.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"page_name": map[string]any{
						"type":        "string",
						"description": "The name of the page to delete. Must be an existing page name as it appears in LogSeq. This operation will delete the entire page and all its blocks.",
					},
				},
				"required":             []string{"page_name"},
				"additionalProperties": false,
			},
		},
		{
			Name:        "find_incomplete_todos",
			Description: "Search for all incomplete todos across all pages in LogSeq. Returns todos with markers like TODO, DOING, LATER, NOW, and WAITING. Useful for getting an overview of all outstanding tasks and their current status.",
			InputSchema: map[string]any{
				"type":                 "object",
				"properties":           map[string]any{},
				"additionalProperties": false,
			},
		},
	}
}

// Tool handler implementations. Each delegates to the corresponding
// pkg/tools function, passing the Graph client and the raw arguments map.

func handleListPages(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.ListPages(ctx, s.client, args)
}

func handleGetPageContent(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.GetPageContent(ctx, s.client, args)
}

func handleCreatePage(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.CreatePage(ctx, s.client, args)
}

func handleSearch(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.Search(ctx, s.client, args)
}

func handleCreateBlock(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.CreateBlock(ctx, s.client, args)
}

func handleGetPage(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.GetPage(ctx, s.client, args)
}

func handleGetBlock(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.GetBlock(ctx, s.client, args)
}

func handleGetCurrentPage(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.GetCurrentPage(ctx, s.client, args)
}

func handleGetCurrentBlock(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.GetCurrentBlock(ctx, s.client, args)
}

func handleDatascriptQuery(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.DatascriptQuery(ctx, s.client, args)
}

func handleGetCurrentGraph(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.GetCurrentGraph(ctx, s.client, args)
}

func handleGetStateFromStore(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.GetStateFromStore(ctx, s.client, args)
}

func handleGetUserConfigs(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.GetUserConfigs(ctx, s.client, args)
}

func handleUpdateBlock(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.UpdateBlock(ctx, s.client, args)
}

func handleDeleteBlock(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.DeleteBlock(ctx, s.client, args)
}

func handleDeletePage(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.DeletePage(ctx, s.client, args)
}

func handleFindIncompleteTodos(ctx context.Context, s *mcpServer, args map[string]any) (*tools.ToolResult, error) {
	return tools.FindIncompleteTodos(ctx, s.client, args)
}
