package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kilianp07/batterycf/core/model"
	"github.com/kilianp07/batterycf/core/replacement"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Formats lists the accepted values of Write's format argument.
var Formats = []string{FormatJSON, FormatCSV}

// Write encodes res to w in the given format.
func Write(w io.Writer, format string, res replacement.Result) error {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		return WriteJSON(w, res)
	case FormatCSV:
		return WriteCSV(w, res.CashFlow)
	default:
		return fmt.Errorf("unknown export format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// WriteJSON writes the full evaluation result to w as indented JSON.
func WriteJSON(w io.Writer, res replacement.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteCSV writes one line per period with every cash-flow term.
func WriteCSV(w io.Writer, cf model.CashFlowSeries) error {
	cw := csv.NewWriter(w)
	header := []string{"period"}
	for _, f := range (model.CashFlowRow{}).Fields() {
		header = append(header, f.Name)
	}
	header = append(header, "cashflow")
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := 0; i < cf.Len(); i++ {
		row := cf.Row(i)
		rec := []string{strconv.Itoa(row.Period)}
		for _, f := range row.Fields() {
			rec = append(rec, formatFloat(f.Value))
		}
		rec = append(rec, formatFloat(cf.Cashflow[i]))
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
