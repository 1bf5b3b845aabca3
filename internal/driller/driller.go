// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package driller

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Driller resolves a dotted path against a JSON document and returns the
// gjson result. Paths support explicit array indexes (`resources[0].type`),
// and single-element arrays collapse automatically so `items.id` works on
// `{"items": [{"id": ...}]}` without an index.
func Driller(json, path string) gjson.Result {
	current := gjson.Parse(json)

	for _, segment := range strings.Split(path, ".") {
		key, index, hasIndex := splitIndex(segment)

		if key != "" {
			current = drillThrough(current).Get(key)
		}
		if hasIndex {
			current = current.Get(strconv.Itoa(index))
		}
		if !current.Exists() {
			return current
		}
	}

	// A trailing single-element array collapses to its element.
	if current.IsArray() {
		if arr := current.Array(); len(arr) == 1 {
			return arr[0]
		}
	}

	return current
}

// drillThrough descends into single-element arrays so the next key applies
// to the lone element.
func drillThrough(r gjson.Result) gjson.Result {
	if r.IsArray() {
		if arr := r.Array(); len(arr) == 1 {
			return arr[0]
		}
	}
	return r
}

// splitIndex splits a path segment of the form key[idx] into its parts.
func splitIndex(segment string) (key string, index int, ok bool) {
	open := strings.IndexByte(segment, '[')
	if open < 0 || !strings.HasSuffix(segment, "]") {
		return segment, 0, false
	}

	idx, err := strconv.Atoi(segment[open+1 : len(segment)-1])
	if err != nil {
		return segment, 0, false
	}

	return segment[:open], idx, true
}
