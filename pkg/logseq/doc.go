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

// Package logseq is a client for the Logseq HTTP API.
//
// Logseq exposes its plugin API over a local HTTP endpoint when the
// "HTTP APIs server" feature is enabled. Every operation is a single
// POST to {base}/api with a bearer token and a body of the form
//
//	{"method": "logseq.Editor.getPage", "args": ["My Page"]}
//
// The low-level entry point is Client.Invoke, which performs exactly one
// such call and returns the raw JSON response. The typed methods
// (GetPage, InsertBlock, Search, ...) layer decoding and response
// normalization on top of it.
//
// # Response normalization
//
// The Logseq API is not consistent about response shapes. insertBlock in
// particular may answer with a full block object, an object holding only
// a uuid, a bare uuid string, or null. InsertBlock reconciles all of
// these into a single *Block result; see the method documentation for
// the exact precedence. updateBlock, removeBlock and deletePage answer
// null on success, which the corresponding methods treat accordingly.
//
// # Concurrency
//
// A Client holds no mutable state beyond its connection configuration
// and may be shared between goroutines. The client never retries and
// never caches: every read is a fresh snapshot, and every identifier
// comes from Logseq itself.
package logseq
