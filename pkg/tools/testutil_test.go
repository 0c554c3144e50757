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
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/kraklabs/lsq/pkg/logseq"
)

// Assertion Helpers
// These helpers reduce boilerplate in test code and provide clear error messages.

// assertNoError fails the test if err is not nil.
// It uses t.Helper() to ensure the error is reported at the call site.
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// assertEqual fails the test if got != want.
// It provides a detailed error message showing both values.
func assertEqual(t *testing.T, got, want any, msgAndArgs ...any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		msg := ""
		if len(msgAndArgs) > 0 {
			if format, ok := msgAndArgs[0].(string); ok {
				msg = fmt.Sprintf(format, msgAndArgs[1:]...)
			}
		}
		if msg != "" {
			msg = ": " + msg
		}
		t.Fatalf("assertion failed%s\ngot:  %#v\nwant: %#v", msg, got, want)
	}
}

// assertContains fails the test if haystack does not contain needle.
func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected string to contain %q, got:\n%s", needle, haystack)
	}
}

// assertNotContains fails the test if haystack contains needle.
func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Fatalf("expected string to NOT contain %q, got:\n%s", needle, haystack)
	}
}

// assertSuccess fails the test if the tool call errored or returned an
// error result.
func assertSuccess(t *testing.T, result *ToolResult, err error) {
	t.Helper()
	assertNoError(t, err)
	if result == nil {
		t.Fatal("expected a tool result, got nil")
	}
	if result.IsError {
		t.Fatalf("expected success result, got error: %s", result.Text)
	}
}

// assertErrorResult fails the test unless the tool call returned an
// error result mentioning wantText. Tool failures are reported through
// the result, not as Go errors.
func assertErrorResult(t *testing.T, result *ToolResult, err error, wantText string) {
	t.Helper()
	assertNoError(t, err)
	if result == nil {
		t.Fatal("expected a tool result, got nil")
	}
	if !result.IsError {
		t.Fatalf("expected error result, got success: %s", result.Text)
	}
	assertContains(t, result.Text, wantText)
}

// Fixture Builders

// createTestBlock creates a Block fixture with the given children.
func createTestBlock(uuid, content string, children ...logseq.Block) logseq.Block {
	return logseq.Block{
		UUID:     uuid,
		Content:  content,
		Children: children,
	}
}

// createTestTodo creates a TodoItem fixture.
func createTestTodo(marker, content, pageName string) logseq.TodoItem {
	return logseq.TodoItem{
		UUID:     fmt.Sprintf("todo-%s-%s", strings.ToLower(marker), pageName),
		Content:  content,
		Marker:   marker,
		PageName: pageName,
	}
}
