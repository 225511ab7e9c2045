// Package cms adapts raw CMS recipe payloads into the canonical catalog
// model. Every reference field in the payload may arrive either as a bare
// id string or as a populated sub-document; Reference is the tagged union
// covering both shapes, with one resolver per entity type.
package cms

import (
	"bytes"
	"encoding/json"
)

// objectObjectLiteral is the string a sloppy upstream serializer produces
// when it coerces a plain object to a string. It carries no id information
// and is treated as empty.
const objectObjectLiteral = "[object Object]"

// Reference is either a bare id or a populated document. After decoding,
// ID holds the extracted id (possibly empty) and Raw holds the original
// document when the field was populated, for typed resolution.
type Reference struct {
	ID  string
	Raw json.RawMessage
}

// IsPopulated reports whether the field carried a populated document.
func (r Reference) IsPopulated() bool {
	return len(r.Raw) > 0
}

// UnmarshalJSON accepts every reference shape the backend emits:
//
//	"abc123"                      bare id string
//	{"$oid": "abc123"}            Mongo extended JSON id
//	{"_id": "abc123", ...}        populated document, string id
//	{"_id": {"$oid": "..."}, ...} populated document, extended id
//
// Anything else falls back to string coercion of the literal token, with
// the "[object Object]" artifact rejected as empty. Decoding never fails
// for a shape mismatch; unresolvable input degrades to an empty id.
func (r *Reference) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Reference{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		r.ID = cleanID(s)
		return nil
	case '{':
		r.Raw = append(json.RawMessage(nil), data...)
		r.ID = extractObjectID(data)
		return nil
	default:
		// Numbers and booleans coerce to their literal token.
		r.ID = cleanID(string(data))
		return nil
	}
}

// MarshalJSON writes the populated document back when present, otherwise
// the bare id.
func (r Reference) MarshalJSON() ([]byte, error) {
	if r.IsPopulated() {
		return r.Raw, nil
	}
	return json.Marshal(r.ID)
}

// extractObjectID pulls an id out of a populated document: a top-level
// $oid, or a nested _id that is itself a string or $oid document.
func extractObjectID(data []byte) string {
	var probe struct {
		OID string          `json:"$oid"`
		ID  json.RawMessage `json:"_id"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return ""
	}
	if probe.OID != "" {
		return cleanID(probe.OID)
	}
	if len(probe.ID) > 0 {
		var nested Reference
		if err := nested.UnmarshalJSON(probe.ID); err == nil {
			return nested.ID
		}
	}
	return ""
}

func cleanID(s string) string {
	if s == objectObjectLiteral {
		return ""
	}
	return s
}
