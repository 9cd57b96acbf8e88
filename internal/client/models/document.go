// Package models defines the storefront client's domain types and the
// document shapes exchanged with the remote collaborator.
package models

import "encoding/json"

// Document is one record from the remote document store. System fields
// ($id, $createdAt) arrive alongside user fields in a flat JSON object;
// UnmarshalJSON splits them apart.
type Document struct {
	ID        string
	CreatedAt string
	Fields    map[string]any
}

func (d *Document) UnmarshalJSON(b []byte) error {
	raw := map[string]any{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if v, ok := raw["$id"].(string); ok {
		d.ID = v
		delete(raw, "$id")
	}
	if v, ok := raw["$createdAt"].(string); ok {
		d.CreatedAt = v
		delete(raw, "$createdAt")
	}
	d.Fields = raw
	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	raw := make(map[string]any, len(d.Fields)+2)
	for k, v := range d.Fields {
		raw[k] = v
	}
	if d.ID != "" {
		raw["$id"] = d.ID
	}
	if d.CreatedAt != "" {
		raw["$createdAt"] = d.CreatedAt
	}
	return json.Marshal(raw)
}

// String returns the named field as a string, or "" when absent or of a
// different type.
func (d Document) String(field string) string {
	v, _ := d.Fields[field].(string)
	return v
}

// Float returns the named field as a float64, or 0 when absent. JSON numbers
// always decode as float64.
func (d Document) Float(field string) float64 {
	v, _ := d.Fields[field].(float64)
	return v
}
