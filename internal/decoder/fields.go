package decoder

import (
	"encoding/json"
	"strconv"
)

// payloadShape is the closed set of historical field encodings this decoder
// accepts. Selection is structural; nothing is ever assumed from the type
// string alone.
type payloadShape int

const (
	// shapeMissing: no usable field payload at all.
	shapeMissing payloadShape = iota
	// shapeFlat: fields as a plain JSON object.
	shapeFlat
	// shapePairList: fields as an array of {key, value} pairs.
	shapePairList
	// shapeWrapped: a nested {"fields": {...}} wrapper around either of the
	// above.
	shapeWrapped
)

// keyValuePair is one entry of the pair-list encoding.
type keyValuePair struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// fieldMap is a normalized view over any payload shape. A zero fieldMap is
// valid and answers every lookup with its fallback.
type fieldMap struct {
	values map[string]json.RawMessage
	shape  payloadShape
}

// normalizeFields inspects a raw content payload and flattens it into a
// fieldMap. The content of a move object usually looks like
// {"dataType": "moveObject", "type": "...", "fields": {...}} but older
// payloads have been observed with a pair-list fields array, an extra
// fields wrapper, or the field object inlined at the top level.
func normalizeFields(content json.RawMessage) fieldMap {
	if len(content) == 0 {
		return fieldMap{shape: shapeMissing}
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(content, &top); err != nil {
		// Not an object at all; maybe a bare pair list.
		if pairs, ok := decodePairList(content); ok {
			return fieldMap{values: pairs, shape: shapePairList}
		}
		return fieldMap{shape: shapeMissing}
	}

	body, hasFields := top["fields"]
	if !hasFields {
		// Legacy payloads inline the fields at the top level.
		return fieldMap{values: top, shape: shapeFlat}
	}

	wrapped := false
	for {
		if pairs, ok := decodePairList(body); ok {
			shape := shapePairList
			if wrapped {
				shape = shapeWrapped
			}
			return fieldMap{values: pairs, shape: shape}
		}

		var obj map[string]json.RawMessage
		if err := json.Unmarshal(body, &obj); err != nil {
			return fieldMap{shape: shapeMissing}
		}

		// Descend through a pure {"fields": ...} wrapper, at most once per
		// level and only when the wrapper carries nothing else.
		if inner, ok := obj["fields"]; ok && len(obj) == 1 {
			body = inner
			wrapped = true
			continue
		}

		shape := shapeFlat
		if wrapped {
			shape = shapeWrapped
		}
		return fieldMap{values: obj, shape: shape}
	}
}

func decodePairList(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	var pairs []keyValuePair
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, false
	}
	values := make(map[string]json.RawMessage, len(pairs))
	for _, p := range pairs {
		if p.Key == "" {
			continue
		}
		values[p.Key] = p.Value
	}
	return values, true
}

// str returns the named field as a string, or fallback when absent or
// malformed. Non-string scalars are rendered with their JSON text.
func (m fieldMap) str(key, fallback string) string {
	raw, ok := m.values[key]
	if !ok {
		return fallback
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	// Sui renders some strings as {"fields": {"url": ...}} style wrappers
	// or as typed objects; fall back to a nested lookup before giving up.
	if nested := normalizeFields(raw); nested.shape != shapeMissing {
		for _, k := range []string{"url", "name", "value"} {
			if v := nested.str(k, ""); v != "" {
				return v
			}
		}
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return fallback
}

// uint returns the named field as a uint64, accepting both JSON numbers and
// the string encoding the node uses for u64 values. Malformed values
// decode to 0.
func (m fieldMap) uint(key string) uint64 {
	raw, ok := m.values[key]
	if !ok {
		return 0
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0
		}
		return v
	}
	var v uint64
	if err := json.Unmarshal(raw, &v); err == nil {
		return v
	}
	return 0
}

// id returns the named field as an object id, unwrapping the UID encodings
// "0x..", {"id": "0x.."} and {"id": {"id": "0x.."}}.
func (m fieldMap) id(key string) string {
	raw, ok := m.values[key]
	if !ok {
		return ""
	}
	return unwrapID(raw, 0)
}

func unwrapID(raw json.RawMessage, depth int) string {
	if depth > 2 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}
	if inner, ok := obj["id"]; ok {
		return unwrapID(inner, depth+1)
	}
	return ""
}

// optUint decodes an Option<u64> field: absent, null and {"vec": []} all
// mean none.
func (m fieldMap) optUint(key string) (uint64, bool) {
	raw, ok := m.values[key]
	if !ok || string(raw) == "null" {
		return 0, false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	var v uint64
	if err := json.Unmarshal(raw, &v); err == nil {
		return v, true
	}
	var opt struct {
		Vec []json.Number `json:"vec"`
	}
	if err := json.Unmarshal(raw, &opt); err == nil && len(opt.Vec) > 0 {
		v, err := strconv.ParseUint(opt.Vec[0].String(), 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// nested returns the named field re-normalized as its own fieldMap, for
// struct-valued fields like the wrapped asset inside a listing.
func (m fieldMap) nested(key string) fieldMap {
	raw, ok := m.values[key]
	if !ok {
		return fieldMap{shape: shapeMissing}
	}
	return normalizeFields(raw)
}
