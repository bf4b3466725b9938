package reconcile

import (
	"encoding/csv"
	"fmt"
	"io"

	"item-matcher/core/catalog"
)

// CSVLayout selects the CSV export columns.
type CSVLayout string

const (
	// CSVLayoutFull writes identifiers and descriptions of both sides.
	CSVLayoutFull CSVLayout = "full"
	// CSVLayoutReduced writes identifiers only.
	CSVLayoutReduced CSVLayout = "reduced"
)

var (
	fullHeader    = []string{"ShamrockID", "ShamrockDescription", "USFoodsID", "USFoodsDescription"}
	reducedHeader = []string{"shamrock_id", "usfoods_id"}
)

// ParseCSVLayout validates a layout name. Empty means full.
func ParseCSVLayout(s string) (CSVLayout, error) {
	switch CSVLayout(s) {
	case "", CSVLayoutFull:
		return CSVLayoutFull, nil
	case CSVLayoutReduced:
		return CSVLayoutReduced, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLayout, s)
	}
}

// WriteCSV writes one row per source item in catalog order. Pending and rejected items have
// empty candidate fields; stale references keep the raw identifier with an empty description.
func WriteCSV(w io.Writer, layout CSVLayout, source, candidates *catalog.Catalog, ledger *Ledger) error {
	header := fullHeader
	if layout == CSVLayoutReduced {
		header = reducedHeader
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := 0; i < source.Len(); i++ {
		item := source.At(i)

		var candidateID, candidateDesc string
		if d, ok := ledger.Get(item.ID); ok {
			if id, matched := d.Candidate(); matched {
				candidateID = id.String()
				if c, found := candidates.Get(id); found {
					candidateDesc = c.Description
				}
			}
		}

		row := []string{item.ID.String(), candidateID}
		if layout != CSVLayoutReduced {
			row = []string{item.ID.String(), item.Description, candidateID, candidateDesc}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", item.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
