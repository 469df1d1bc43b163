package compare

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/exkmeans/blobstore"
	"github.com/hupe1980/exkmeans/internal/literal"
	"github.com/hupe1980/exkmeans/result"
)

// Columns lists the required columns in the order their values are compared.
var Columns = []string{
	result.ColumnInitialization,
	result.ColumnDistortion,
	result.ColumnClusters,
	result.ColumnCentroids,
}

// Row is one parsed solution.
type Row struct {
	Line int
	// Raw holds the fields as written, keyed by column.
	Raw            map[string]string
	Initialization literal.Value
	Distortion     int64
	Clusters       literal.Value
	Centroids      literal.Value
}

func (r *Row) value(column string) string {
	switch column {
	case result.ColumnDistortion:
		return strconv.FormatInt(r.Distortion, 10)
	case result.ColumnClusters:
		return r.Clusters.String()
	case result.ColumnCentroids:
		return r.Centroids.String()
	default:
		return r.Initialization.String()
	}
}

// Table holds the rows of one file in file order.
type Table struct {
	Name  string
	Rows  []Row
	index map[string]int
}

// Lookup returns the row whose initialization centroids equal key as a set.
func (t *Table) Lookup(key literal.Value) (*Row, bool) {
	i, ok := t.index[key.String()]
	if !ok {
		return nil, false
	}
	return &t.Rows[i], true
}

// Load reads a result CSV. name identifies the file in error messages.
func Load(name string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	positions, err := readHeader(name, cr)
	if err != nil {
		return nil, err
	}

	t := &Table{Name: name, index: make(map[string]int)}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		line, _ := cr.FieldPos(0)
		row, err := parseRow(name, line, record, positions)
		if err != nil {
			return nil, err
		}

		key := row.Initialization.String()
		if _, dup := t.index[key]; dup {
			return nil, &MismatchError{Kind: DuplicateKey, File: name, Key: row.Raw[result.ColumnInitialization]}
		}
		t.index[key] = len(t.Rows)
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// Header returns the column names on the first line of r, or nil for an
// empty input. Rows are not read.
func Header(name string, r io.Reader) ([]string, error) {
	header, err := csv.NewReader(r).Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return header, nil
}

func readHeader(name string, cr *csv.Reader) (map[string]int, error) {
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &MismatchError{Kind: MissingColumn, File: name, Field: Columns[0]}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return columnPositions(name, header)
}

func columnPositions(name string, header []string) (map[string]int, error) {
	positions := make(map[string]int, len(Columns))
	for i, col := range header {
		if _, seen := positions[col]; !seen {
			positions[col] = i
		}
	}
	for _, col := range Columns {
		if _, ok := positions[col]; !ok {
			return nil, &MismatchError{Kind: MissingColumn, File: name, Field: col}
		}
	}
	return positions, nil
}

func parseRow(name string, line int, record []string, positions map[string]int) (Row, error) {
	row := Row{Line: line, Raw: make(map[string]string, len(Columns))}
	for _, col := range Columns {
		row.Raw[col] = record[positions[col]]
	}

	fail := func(col string, err error) (Row, error) {
		return Row{}, &ParseError{File: name, Line: line, Column: col, Err: err}
	}

	var err error
	if row.Initialization, err = parseSet(row.Raw[result.ColumnInitialization]); err != nil {
		return fail(result.ColumnInitialization, err)
	}
	if row.Distortion, err = strconv.ParseInt(strings.TrimSpace(row.Raw[result.ColumnDistortion]), 10, 64); err != nil {
		return fail(result.ColumnDistortion, err)
	}
	if row.Centroids, err = parseSet(row.Raw[result.ColumnCentroids]); err != nil {
		return fail(result.ColumnCentroids, err)
	}
	if row.Clusters, err = parseClusters(row.Raw[result.ColumnClusters]); err != nil {
		return fail(result.ColumnClusters, err)
	}
	return row, nil
}

func parseSet(s string) (literal.Value, error) {
	v, err := literal.Parse(s)
	if err != nil {
		return literal.Value{}, err
	}
	set, ok := v.AsSet()
	if !ok {
		return literal.Value{}, fmt.Errorf("expected a collection, got %s", v.Kind)
	}
	return set, nil
}

func parseClusters(s string) (literal.Value, error) {
	v, err := literal.Parse(s)
	if err != nil {
		return literal.Value{}, err
	}
	if v.Kind == literal.KindInt {
		return literal.Value{}, fmt.Errorf("expected a collection of clusters, got %s", v.Kind)
	}

	clusters := make([]literal.Value, len(v.Items))
	for i, c := range v.Items {
		set, ok := c.AsSet()
		if !ok {
			return literal.Value{}, fmt.Errorf("cluster %d: expected a collection, got %s", i, c.Kind)
		}
		clusters[i] = set
	}
	return literal.Set(clusters...), nil
}

// Compare reports the first difference between a and b, or nil if both
// tables hold the same solutions.
func Compare(a, b *Table) error {
	used := make(map[string]struct{}, len(a.Rows))

	for i := range b.Rows {
		rb := &b.Rows[i]
		ra, ok := a.Lookup(rb.Initialization)
		if !ok {
			return &MismatchError{Kind: MissingRow, File: b.Name, Other: a.Name, Key: rb.Raw[result.ColumnInitialization]}
		}
		used[rb.Initialization.String()] = struct{}{}

		for _, col := range Columns[1:] {
			if !fieldEqual(ra, rb, col) {
				return &MismatchError{
					Kind:  FieldMismatch,
					File:  b.Name,
					Other: a.Name,
					Key:   rb.Raw[result.ColumnInitialization],
					Field: col,
					Want:  ra.value(col),
					Got:   rb.value(col),
				}
			}
		}
	}

	for i := range a.Rows {
		if _, ok := used[a.Rows[i].Initialization.String()]; !ok {
			return &MismatchError{Kind: MissingRow, File: a.Name, Other: b.Name, Key: a.Rows[i].Raw[result.ColumnInitialization]}
		}
	}
	return nil
}

func fieldEqual(a, b *Row, column string) bool {
	switch column {
	case result.ColumnDistortion:
		return a.Distortion == b.Distortion
	case result.ColumnClusters:
		return a.Clusters.Equal(b.Clusters)
	case result.ColumnCentroids:
		return a.Centroids.Equal(b.Centroids)
	default:
		return a.Initialization.Equal(b.Initialization)
	}
}

// Files reads nameA and nameB from store concurrently and compares them.
// The required columns of both files are checked, column by column, before
// any row is parsed. Errors are reported for nameA before nameB regardless of
// which goroutine finished first.
func Files(ctx context.Context, store blobstore.Store, nameA, nameB string) error {
	names := [2]string{nameA, nameB}
	var (
		data [2][]byte
		errs [2]error
	)

	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			data[i], errs[i] = blobstore.ReadAll(ctx, store, name)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	var headers [2][]string
	for i, name := range names {
		header, err := Header(name, bytes.NewReader(data[i]))
		if err != nil {
			return err
		}
		headers[i] = header
	}
	for _, col := range Columns {
		for i, name := range names {
			if !slices.Contains(headers[i], col) {
				return &MismatchError{Kind: MissingColumn, File: name, Field: col}
			}
		}
	}

	var tables [2]*Table
	for i, name := range names {
		t, err := Load(name, bytes.NewReader(data[i]))
		if err != nil {
			return err
		}
		tables[i] = t
	}
	return Compare(tables[0], tables[1])
}
