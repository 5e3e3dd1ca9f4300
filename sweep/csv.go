package sweep

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the fixed column order of exported result tables.
var csvHeader = []string{
	"size", "power", "samples",
	"estimate", "truth", "abs_error", "variance",
	"estimate_ns", "truth_ns", "status",
}

// WriteCSV renders rows as delimited text in the csvHeader column order.
// Float columns use 'g' formatting, so NaN cells round-trip as "NaN" and
// stay distinguishable in downstream tooling.
//
// Errors: any write error from the underlying io.Writer.
// Complexity: O(len(rows)).
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	rec := make([]string, len(csvHeader))
	for i := range rows {
		r := &rows[i]
		rec[0] = strconv.Itoa(r.Size)
		rec[1] = strconv.Itoa(r.Power)
		rec[2] = strconv.Itoa(r.Samples)
		rec[3] = strconv.FormatFloat(r.Estimate, 'g', -1, 64)
		rec[4] = strconv.FormatFloat(r.Truth, 'g', -1, 64)
		rec[5] = strconv.FormatFloat(r.AbsError, 'g', -1, 64)
		rec[6] = strconv.FormatFloat(r.Variance, 'g', -1, 64)
		rec[7] = strconv.FormatInt(r.EstimateTime.Nanoseconds(), 10)
		rec[8] = strconv.FormatInt(r.TruthTime.Nanoseconds(), 10)
		rec[9] = r.Status
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}
