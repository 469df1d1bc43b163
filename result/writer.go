package result

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/hupe1980/exkmeans/model"
)

// Column names of the CSV output.
const (
	ColumnInitialization = "initialization centroids"
	ColumnDistortion     = "distortion"
	ColumnCentroids      = "centroids"
	ColumnClusters       = "clusters"
)

// Options configures a Writer.
type Options struct {
	// Quiet omits the clusters column.
	Quiet bool
	// UseCRLF terminates rows with \r\n instead of \n.
	UseCRLF bool
}

// DefaultOptions writes every column with \n line endings.
var DefaultOptions = Options{}

// Writer encodes results as CSV.
type Writer struct {
	csv  *csv.Writer
	opts Options
	buf  []byte
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer, optFns ...func(o *Options)) *Writer {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = opts.UseCRLF

	return &Writer{csv: cw, opts: opts}
}

// Header returns the column names written by w.
func (w *Writer) Header() []string {
	header := []string{ColumnInitialization, ColumnDistortion, ColumnCentroids}
	if !w.opts.Quiet {
		header = append(header, ColumnClusters)
	}
	return header
}

// Write writes the header and one row per Solution, then flushes.
func (w *Writer) Write(res *model.Result) error {
	if res == nil {
		return errors.New("result: nil result")
	}

	var vectors []model.Vector
	if res.Dataset != nil {
		vectors = res.Dataset.Vectors
	}

	if err := w.csv.Write(w.Header()); err != nil {
		return err
	}

	record := make([]string, len(w.Header()))
	for i := range res.Solutions {
		w.row(record, vectors, &res.Solutions[i])
		if err := w.csv.Write(record); err != nil {
			return err
		}
	}

	w.csv.Flush()
	return w.csv.Error()
}

func (w *Writer) row(record []string, vectors []model.Vector, sol *model.Solution) {
	w.buf = AppendVectors(w.buf[:0], sol.Initial)
	record[0] = string(w.buf)

	record[1] = strconv.FormatInt(sol.Distortion, 10)

	w.buf = AppendVectors(w.buf[:0], sol.Centroids)
	record[2] = string(w.buf)

	if !w.opts.Quiet {
		w.buf = AppendClusters(w.buf[:0], vectors, sol.Clusters)
		record[3] = string(w.buf)
	}
}
