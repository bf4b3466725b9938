package catalog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"item-matcher/core/utils"
)

// rawItem is the wire shape of an item before its identifier is normalized.
type rawItem struct {
	ID          any    `json:"id"`
	Description string `json:"description"`
}

// Decode parses a catalog from r. It accepts a JSON array or newline-delimited JSON objects.
func Decode(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", ErrLoadFailure, err)
	}

	trimmed := bytes.TrimSpace(data)
	var raws []rawItem
	switch {
	case len(trimmed) == 0:
		raws = nil
	case trimmed[0] == '[':
		raws, err = decodeArray(trimmed)
	default:
		raws, err = decodeLines(trimmed)
	}
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(raws))
	for i, raw := range raws {
		id, err := utils.NormalizeID(raw.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrLoadFailure, i, err)
		}
		items = append(items, Item{ID: id, Description: raw.Description})
	}

	c, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}
	return c, nil
}

func decodeArray(data []byte) ([]rawItem, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raws []rawItem
	if err := dec.Decode(&raws); err != nil {
		return nil, fmt.Errorf("%w: parse JSON array: %v", ErrLoadFailure, err)
	}
	return raws, nil
}

func decodeLines(data []byte) ([]rawItem, error) {
	var raws []rawItem
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(text))
		dec.UseNumber()
		var raw rawItem
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: parse line %d: %v", ErrLoadFailure, line, err)
		}
		raws = append(raws, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan: %v", ErrLoadFailure, err)
	}
	return raws, nil
}
