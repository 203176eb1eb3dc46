package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// TextVariant holds a JSONB column the AI workflow writes in whatever shape it likes: a list of
// strings, a freeform string, an object wrapping a list, or plain text. Every shape is normalized
// to a list at scan time.
type TextVariant []string

// Scan implements sql.Scanner.
func (v *TextVariant) Scan(src interface{}) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return err
	}
	items, ok := decodeLooseList(raw)
	if !ok {
		// Not JSON at all: keep the text as a single freeform entry.
		items = []string{string(raw)}
	}
	*v = compact(items)
	return nil
}

// Value implements driver.Valuer. Values are always stored as a JSON list.
func (v TextVariant) Value() (driver.Value, error) {
	if v == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(v))
}

// String joins the values for display.
func (v TextVariant) String() string {
	return strings.Join(v, ", ")
}

// Platforms is the JSONB list of target social networks for a campaign. Entries are trimmed,
// lower-cased and de-duplicated at scan time; order is preserved. A string value is read as a
// comma-separated list.
type Platforms []string

// Scan implements sql.Scanner.
func (p *Platforms) Scan(src interface{}) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return err
	}
	items, ok := decodeLooseList(raw)
	if !ok {
		items = []string{string(raw)}
	}

	var split []string
	for _, item := range items {
		split = append(split, strings.Split(item, ",")...)
	}
	*p = NormalizePlatforms(split)
	return nil
}

// Value implements driver.Valuer.
func (p Platforms) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(p))
}

// NormalizePlatforms trims, lower-cases and de-duplicates platform names, dropping blanks.
func NormalizePlatforms(in []string) Platforms {
	out := make(Platforms, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, p := range in {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// decodeLooseList reads a JSON string, array, or object into a flat list of strings. Objects
// contribute their string and string-array values in key order. ok is false when raw is not JSON.
func decodeLooseList(raw []byte) (items []string, ok bool) {
	if raw == nil {
		return nil, true
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, false
	}

	switch v := value.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			items = append(items, flatten(v[k])...)
		}
	default:
		items = flatten(v)
	}
	return items, true
}

func flatten(value interface{}) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []interface{}:
		var out []string
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func jsonBytes(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		if len(v) == 0 || string(v) == "null" {
			return nil, nil
		}
		return v, nil
	case string:
		if v == "" || v == "null" {
			return nil, nil
		}
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported JSON source type %T", src)
	}
}
