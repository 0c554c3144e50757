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
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestGetAllPages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"journal","uuid":"p-1"},{"name":"projects","uuid":"p-2","original-name":"Projects"}]`))
	})

	pages, err := client.GetAllPages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if pages[0].Name != "journal" || pages[1].OriginalName != "Projects" {
		t.Errorf("wrong pages: %+v", pages)
	}
}

func TestGetPageNullMeansNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})

	page, err := client.GetPage(context.Background(), "ghost")
	if err == nil {
		t.Fatalf("expected error for null response, got page %+v", page)
	}
	if !strings.Contains(err.Error(), `page "ghost" not found`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetBlockNullMeansNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})

	block, err := client.GetBlock(context.Background(), "b-404")
	if err == nil {
		t.Fatalf("expected error for null response, got block %+v", block)
	}
	if !strings.Contains(err.Error(), `block "b-404" not found`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetCurrentPageNullMeansNoFocus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})

	page, err := client.GetCurrentPage(context.Background())
	if err == nil {
		t.Fatalf("expected error for null response, got page %+v", page)
	}
	if !strings.Contains(err.Error(), "no page is currently active") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetCurrentBlockNullMeansNoFocus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})

	block, err := client.GetCurrentBlock(context.Background())
	if err == nil {
		t.Fatalf("expected error for null response, got block %+v", block)
	}
	if !strings.Contains(err.Error(), "no block is currently active") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreatePageSendsNullProperties(t *testing.T) {
	var bodyText string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodyText = string(body)
		w.Write([]byte(`{"name":"plain","uuid":"p-9"}`))
	})

	_, err := client.CreatePage(context.Background(), "plain", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Positional argument list stays fixed even with no properties.
	if !strings.Contains(bodyText, `"args":["plain",null]`) {
		t.Errorf("expected null properties argument, got body: %s", bodyText)
	}
}

func TestGetPageBlocksTreePreservesNesting(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"uuid":"a","content":"parent","children":[{"uuid":"b","content":"child","children":[]}]}]`))
	})

	blocks, err := client.GetPageBlocksTree(context.Background(), "journal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 1 || len(blocks[0].Children) != 1 {
		t.Fatalf("wrong tree shape: %+v", blocks)
	}
	if blocks[0].Children[0].Content != "child" {
		t.Errorf("wrong child: %+v", blocks[0].Children[0])
	}
}

func TestUpdateBlock(t *testing.T) {
	ctx := context.Background()

	t.Run("null response triggers follow-up fetch", func(t *testing.T) {
		calls := 0
		var methods []string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			var req apiRequest
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &req)
			methods = append(methods, req.Method)
			if calls == 1 {
				w.Write([]byte("null"))
				return
			}
			w.Write([]byte(`{"uuid":"b-1","content":"revised"}`))
		})

		block, err := client.UpdateBlock(ctx, "b-1", "revised", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 2 {
			t.Fatalf("expected 2 API calls, got %d", calls)
		}
		if methods[1] != "logseq.Editor.getBlock" {
			t.Errorf("expected getBlock follow-up, got %q", methods[1])
		}
		if block.Content != "revised" {
			t.Errorf("wrong block: %+v", block)
		}
	})

	t.Run("null follow-up response is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("null"))
		})

		block, err := client.UpdateBlock(ctx, "b-404", "revised", nil)
		if err == nil {
			t.Fatalf("expected error when follow-up fetch finds no block, got %+v", block)
		}
		if !strings.Contains(err.Error(), `block "b-404" not found`) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("properties argument only sent when non-nil", func(t *testing.T) {
		var bodyText string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			if strings.Contains(string(body), "updateBlock") {
				bodyText = string(body)
			}
			w.Write([]byte(`{"uuid":"b-1","content":"x"}`))
		})

		_, err := client.UpdateBlock(ctx, "b-1", "x", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(bodyText, `"args":["b-1","x"]`) {
			t.Errorf("expected two-element args, got body: %s", bodyText)
		}

		_, err = client.UpdateBlock(ctx, "b-1", "x", map[string]any{"k": "v"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(bodyText, `{"k":"v"}`) {
			t.Errorf("expected properties in args, got body: %s", bodyText)
		}
	})

	t.Run("non-null response decodes directly", func(t *testing.T) {
		calls := 0
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte(`{"uuid":"b-1","content":"direct"}`))
		})

		block, err := client.UpdateBlock(ctx, "b-1", "direct", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Errorf("expected no follow-up, got %d calls", calls)
		}
		if block.Content != "direct" {
			t.Errorf("wrong block: %+v", block)
		}
	})
}

func TestRemoveBlock(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"null is success", "null", ""},
		{"plain object is success", `{"ok":true}`, ""},
		{"non-object is success", `"gone"`, ""},
		{"error field fails", `{"error":"block not found"}`, "failed to remove block: block not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})
			err := client.RemoveBlock(ctx, "b-1")
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDeletePage(t *testing.T) {
	ctx := context.Background()

	t.Run("null is success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("null"))
		})
		if err := client.DeletePage(ctx, "scratch"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("error field fails", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":"no such page"}`))
		})
		err := client.DeletePage(ctx, "ghost")
		if err == nil || !strings.Contains(err.Error(), "failed to delete page: no such page") {
			t.Fatalf("expected delete error, got %v", err)
		}
	})
}
