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
	"encoding/json"
)

// insertShape classifies the possible insertBlock response formats.
// Keeping the classification separate from InsertBlock makes the
// precedence order explicit and testable in isolation.
type insertShape int

const (
	// shapeNull: null or empty response. Insert has no known identifier
	// to recover, so this is fatal.
	shapeNull insertShape = iota

	// shapeUUIDObject: an object carrying a uuid field but not a
	// complete block. The uuid is used for a follow-up fetch.
	shapeUUIDObject

	// shapeBareString: the response is the new block's uuid as a bare
	// JSON string. Same follow-up as shapeUUIDObject.
	shapeBareString

	// shapeFullBlock: the response already decodes as a complete block
	// (both uuid and content present). Returned as-is.
	shapeFullBlock

	// shapeUnrecognized: none of the above.
	shapeUnrecognized
)

// classifyInsertResponse determines which shape the raw insertBlock
// response has. It returns the uuid for shapeUUIDObject/shapeBareString
// and the decoded block for shapeFullBlock.
func classifyInsertResponse(raw json.RawMessage) (insertShape, string, *Block) {
	if isNull(raw) {
		return shapeNull, "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return shapeBareString, s, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return shapeUnrecognized, "", nil
	}

	uuidRaw, hasUUID := obj["uuid"]
	if !hasUUID {
		return shapeUnrecognized, "", nil
	}

	var uuid string
	if err := json.Unmarshal(uuidRaw, &uuid); err != nil {
		return shapeUnrecognized, "", nil
	}

	if _, hasContent := obj["content"]; hasContent {
		var block Block
		if err := json.Unmarshal(raw, &block); err == nil {
			return shapeFullBlock, uuid, &block
		}
	}

	return shapeUUIDObject, uuid, nil
}

// prettyJSON renders a raw payload indented for error messages. Falls
// back to the raw bytes when indentation fails.
func prettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
