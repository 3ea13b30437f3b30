package textable

import (
	"encoding/csv"
	"io"
	"strings"
)

// writeCSV writes pairs as comma-separated records under a lower-cased
// header.
func writeCSV(w io.Writer, header []string, pairs []KeyValue) error {
	cw := csv.NewWriter(w)
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.ToLower(h)
	}
	if err := cw.Write(names); err != nil {
		return err
	}
	for _, row := range pairRows(pairs) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
