package reconcile

import (
	"bytes"
	"strings"
	"testing"

	"item-matcher/core/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRecords(t *testing.T) {
	t.Run("PrettyPrintedObject", func(t *testing.T) {
		l := NewLedger()
		l.Set("1", MatchedTo("9"))
		l.Set("2", NoMatch())
		l.Set("3", MatchedTo("sku-7"))

		data, err := MarshalLedger(l)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"1\": 9,\n  \"2\": null,\n  \"3\": \"sku-7\"\n}", string(data))
	})

	t.Run("Empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeRecords(&buf, nil))
		assert.Equal(t, "{}", buf.String())
	})
}

func TestDecodeRecords(t *testing.T) {
	t.Run("AllValueKinds", func(t *testing.T) {
		records, err := DecodeRecords(strings.NewReader(`{"1": 9, "2": null, "3": "sku-7", "4": "", "5": 12.0}`))
		require.NoError(t, err)

		l := NewLedger()
		l.ReplaceAll(records)
		assert.Equal(t, 4, l.Len())
		assert.Equal(t, StatusMatched, l.Status("1"))
		assert.Equal(t, StatusNoMatch, l.Status("2"))
		assert.Equal(t, StatusPending, l.Status("4"))

		d, _ := l.Get("3")
		candidate, _ := d.Candidate()
		assert.Equal(t, utils.ID("sku-7"), candidate)

		d, _ = l.Get("5")
		candidate, _ = d.Candidate()
		assert.Equal(t, utils.ID("12"), candidate)
	})

	tests := []struct {
		name  string
		input string
	}{
		{"NotJSON", `not json`},
		{"Array", `[1, 2]`},
		{"Null", `null`},
		{"BooleanValue", `{"1": true}`},
		{"ObjectValue", `{"1": {"id": 9}}`},
		{"BlankKey", `{" ": 9}`},
		{"TrailingData", `{"1": 9} {"2": 3}`},
		{"Truncated", `{"1": 9,`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRecords(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrImportParse)
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	ledgers := map[string]func() *Ledger{
		"Empty": NewLedger,
		"Mixed": func() *Ledger {
			l := NewLedger()
			l.Set("1", MatchedTo("9"))
			l.Set("2", NoMatch())
			l.Set("abc", MatchedTo("007"))
			l.Set("10", MatchedTo("x y"))
			return l
		},
		"Stale": func() *Ledger {
			l := NewLedger()
			l.Set("1", MatchedTo("does-not-exist"))
			return l
		},
	}

	for name, build := range ledgers {
		t.Run(name, func(t *testing.T) {
			l := build()
			data, err := MarshalLedger(l)
			require.NoError(t, err)

			back, err := UnmarshalLedger(data)
			require.NoError(t, err)
			assert.True(t, l.Equal(back))
		})
	}
}
