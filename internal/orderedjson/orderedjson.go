/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package orderedjson writes JSON documents built from ordered maps without
// HTML escaping at any depth.
package orderedjson

import (
	"bytes"
	"encoding/json"

	"github.com/keboola/go-utils/pkg/orderedmap"
)

// MarshalIndent encodes v with two-space indentation and a trailing newline.
// Ordered maps keep their key order; strings keep <, > and & as written.
func MarshalIndent(v any) ([]byte, error) {
	var compact bytes.Buffer
	if err := write(&compact, v); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func write(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case *orderedmap.OrderedMap:
		if x == nil {
			buf.WriteString("null")
			return nil
		}
		return writeMap(buf, x)
	case orderedmap.OrderedMap:
		return writeMap(buf, &x)
	case []any:
		buf.WriteByte('[')
		for i, item := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := write(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		return encode(buf, x)
	}
}

func writeMap(buf *bytes.Buffer, m *orderedmap.OrderedMap) error {
	buf.WriteByte('{')
	for i, key := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encode(buf, key); err != nil {
			return err
		}
		buf.WriteByte(':')
		value, _ := m.Get(key)
		if err := write(buf, value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// encode writes one value through a non-escaping encoder, dropping the
// newline Encode appends.
func encode(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
