package dataset

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/cwbudde/algo-spiro/blow"
)

// csvRecord is the tabular form of one blow. The series column holds the raw
// cumulative samples separated by spaces, padding zeros included.
type csvRecord struct {
	EID       int64  `csv:"eid"`
	VisitID   int    `csv:"visit_id"`
	BlowOrder int    `csv:"blow_order"`
	BlowIndex int    `csv:"blow_index"`
	NumPoints int    `csv:"num_points"`
	Series    string `csv:"series"`
}

// LoadRecords reads blow records from a CSV file with columns eid, visit_id,
// blow_order, blow_index, num_points, and series (space-separated raw
// samples). Records are validated before being returned.
func LoadRecords(path string) ([]blow.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []*csvRecord
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	records := make([]blow.Record, 0, len(rows))
	for i, row := range rows {
		series, err := parseSeries(row.Series)
		if err != nil {
			return nil, fmt.Errorf("dataset: %s row %d: %w", path, i+1, err)
		}

		rec := blow.Record{
			SubjectID: row.EID,
			VisitID:   row.VisitID,
			BlowOrder: row.BlowOrder,
			BlowIndex: row.BlowIndex,
			NumPoints: row.NumPoints,
			Series:    series,
		}

		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("dataset: %s row %d: %w", path, i+1, err)
		}

		records = append(records, rec)
	}

	return records, nil
}

func parseSeries(s string) ([]int, error) {
	fields := strings.Fields(s)

	series := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("series sample %d: %w", i, err)
		}
		series[i] = v
	}

	return series, nil
}
