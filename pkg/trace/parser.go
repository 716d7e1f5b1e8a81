/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/Yessminech/Bachelor-Thesis/pkg/common"
)

var ErrNoSampleColumn = errors.New("no " + common.SampleColumn + " column in offset history")

// ParseError reports a malformed offset history file. Line is 1-based and
// counts the header.
type ParseError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s:%d: column %q: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadDataset reads an offset history CSV. Empty offset cells are kept as
// missing samples since the monitor pads cameras with shorter histories.
// Infinite values cannot be plotted and are treated the same way.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening offset history")
	}
	defer f.Close()

	return parseDataset(path, f)
}

func parseDataset(path string, in io.Reader) (*Dataset, error) {
	reader := gocsv.DefaultCSVReader(in)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ParseError{Path: path, Line: 1, Err: errors.New("missing header row")}
	} else if err != nil {
		return nil, csvError(path, 1, err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	ds := &Dataset{Path: path, Header: header}
	sampleIdx := ds.ColumnIndex(common.SampleColumn)
	if sampleIdx < 0 {
		return nil, errors.Wrapf(ErrNoSampleColumn, "%s", path)
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, csvError(path, line, err)
		}

		row, sample, perr := parseRecord(header, sampleIdx, record)
		if perr != nil {
			perr.Path, perr.Line = path, line
			return nil, perr
		}

		ds.Samples = append(ds.Samples, sample)
		ds.rows = append(ds.rows, row)
	}

	log.Debugf("Loaded %d samples across %d columns from %s", ds.NumRows(), len(header), path)

	return ds, nil
}

func parseRecord(header []string, sampleIdx int, record []string) ([]float64, int, *ParseError) {
	sample, err := strconv.Atoi(strings.TrimSpace(record[sampleIdx]))
	if err != nil {
		return nil, 0, &ParseError{Column: header[sampleIdx], Err: err}
	}

	row := make([]float64, len(record))
	for i, field := range record {
		field = strings.TrimSpace(field)
		if i == sampleIdx {
			row[i] = float64(sample)
			continue
		}
		if field == "" {
			row[i] = math.NaN()
			continue
		}

		row[i], err = strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, 0, &ParseError{Column: header[i], Err: err}
		}
		if math.IsInf(row[i], 0) {
			row[i] = math.NaN()
		}
	}

	return row, sample, nil
}

func csvError(path string, line int, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		line = pe.Line
	}
	return &ParseError{Path: path, Line: line, Err: err}
}

// SelectSeries extracts the series to plot. Suffix selection keeps columns
// ending with suffix and strips it from the label; positional selection keeps
// every column except the first under its own name.
func (d *Dataset) SelectSeries(selection common.ColumnSelection, suffix string) ([]Series, error) {
	var result []Series

	for col, name := range d.Header {
		var label string
		switch selection {
		case common.SuffixSelection:
			if !strings.HasSuffix(name, suffix) {
				continue
			}
			label = strings.TrimSuffix(name, suffix)
		case common.PositionalSelection:
			if col == 0 {
				continue
			}
			label = name
		default:
			return nil, errors.Errorf("unsupported column selection %q", selection)
		}

		result = append(result, d.series(col, name, label))
	}

	if len(result) == 0 {
		log.Warnf("No offset columns selected from %s (selection=%s)", d.Path, selection)
	}

	return result, nil
}

func (d *Dataset) series(col int, name, label string) Series {
	s := Series{Column: name, Label: label, Points: make([]Point, 0, len(d.rows))}
	for i, row := range d.rows {
		if math.IsNaN(row[col]) {
			continue
		}
		s.Points = append(s.Points, Point{Sample: d.Samples[i], OffsetNs: row[col]})
	}
	return s
}
