package blueprint

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseJSON reads blueprints from a JSON array, or from an object carrying a
// "blueprints" array. Each element has the shape
//
//	{"id": 1, "ore": 4, "clay": 2, "obsidian": {"ore": 3, "clay": 14}, "geode": {"ore": 2, "obsidian": 7}}
//
// A missing "id" defaults to the element's 1-based position.
func ParseJSON(data []byte) ([]Blueprint, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedBlueprint)
	}
	root := gjson.ParseBytes(data)
	if root.IsObject() {
		root = root.Get("blueprints")
	}
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected a JSON array of blueprints", ErrMalformedBlueprint)
	}

	elems := root.Array()
	if len(elems) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]Blueprint, 0, len(elems))
	for i, el := range elems {
		bp, err := FromJSON(el, i+1)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		out = append(out, bp)
	}

	return out, nil
}

// FromJSON converts one parsed JSON element; pos is used when "id" is absent.
func FromJSON(el gjson.Result, pos int) (Blueprint, error) {
	if !el.IsObject() {
		return Blueprint{}, fmt.Errorf("%w: expected an object", ErrMalformedBlueprint)
	}

	id := pos
	if v := el.Get("id"); v.Exists() {
		n, err := jsonInt(v, "id")
		if err != nil {
			return Blueprint{}, err
		}
		id = n
	}

	paths := [...]string{"ore", "clay", "obsidian.ore", "obsidian.clay", "geode.ore", "geode.obsidian"}
	var q [len(paths)]Quantity
	for i, p := range paths {
		v := el.Get(p)
		if !v.Exists() {
			return Blueprint{}, fmt.Errorf("%w: blueprint %d: missing %q", ErrMalformedBlueprint, id, p)
		}
		n, err := jsonInt(v, p)
		if err != nil {
			return Blueprint{}, err
		}
		q[i] = n
	}

	return New(id, q[0], q[1], q[2], q[3], q[4], q[5])
}

func jsonInt(v gjson.Result, field string) (int, error) {
	if v.Type != gjson.Number || v.Float() != float64(v.Int()) {
		return 0, fmt.Errorf("%w: %s: %s is not an integer", ErrMalformedBlueprint, field, v.Raw)
	}

	return int(v.Int()), nil
}

// Load reads blueprints from path. Files ending in .json, or whose first
// non-blank byte is '[' or '{', are parsed as JSON; anything else as text.
func Load(path string) ([]Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(data, strings.EqualFold(filepath.Ext(path), ".json"))
}

// Decode parses data as JSON when asJSON is set or the payload looks like
// JSON, and as text otherwise.
func Decode(data []byte, asJSON bool) ([]Blueprint, error) {
	trimmed := bytes.TrimSpace(data)
	if asJSON || (len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{')) {
		return ParseJSON(trimmed)
	}

	return ParseText(bytes.NewReader(data))
}
