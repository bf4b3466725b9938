package reconcile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"item-matcher/core/utils"
)

// EncodeRecords writes records as a pretty-printed JSON object {"sourceId": candidateId | null}.
// Keys are written in record order; numeric candidate identifiers are written as numbers.
func EncodeRecords(w io.Writer, records []Record) error {
	var buf bytes.Buffer
	if len(records) == 0 {
		buf.WriteString("{}")
	} else {
		buf.WriteString("{\n")
		for i, r := range records {
			key, err := json.Marshal(r.SourceID.String())
			if err != nil {
				return fmt.Errorf("failed to encode source id %s: %w", r.SourceID, err)
			}
			value := []byte("null")
			if r.CandidateID != nil {
				if value, err = json.Marshal(*r.CandidateID); err != nil {
					return fmt.Errorf("failed to encode candidate id %s: %w", *r.CandidateID, err)
				}
			}

			buf.WriteString("  ")
			buf.Write(key)
			buf.WriteString(": ")
			buf.Write(value)
			if i < len(records)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteByte('}')
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// MarshalLedger encodes the ledger in the exchange format.
func MarshalLedger(l *Ledger) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeRecords(&buf, l.Records()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeRecords parses the exchange format. null is the no-match sentinel, numbers and strings
// are candidate identifiers, and an empty string marks an undecided entry which is skipped.
// Anything else fails with ErrImportParse.
func DecodeRecords(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportParse, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrImportParse)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON object", ErrImportParse)
	}

	ledger := NewLedger()
	for key, value := range raw {
		sourceID, err := utils.NormalizeID(key)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", ErrImportParse, key, err)
		}

		switch v := value.(type) {
		case nil:
			ledger.Set(sourceID, NoMatch())
		case string:
			if v == "" {
				continue
			}
			candidate, err := utils.NormalizeID(v)
			if err != nil {
				return nil, fmt.Errorf("%w: value of %q: %v", ErrImportParse, key, err)
			}
			ledger.Set(sourceID, MatchedTo(candidate))
		case json.Number:
			candidate, err := utils.NormalizeID(v)
			if err != nil {
				return nil, fmt.Errorf("%w: value of %q: %v", ErrImportParse, key, err)
			}
			ledger.Set(sourceID, MatchedTo(candidate))
		default:
			return nil, fmt.Errorf("%w: value of %q has unsupported type %T", ErrImportParse, key, value)
		}
	}

	return ledger.Records(), nil
}

// UnmarshalLedger decodes a ledger from the exchange format.
func UnmarshalLedger(data []byte) (*Ledger, error) {
	records, err := DecodeRecords(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	l := NewLedger()
	l.ReplaceAll(records)
	return l, nil
}
