// Command exkmeans runs exhaustive integer k-means on a binary dataset and
// writes one CSV row per initialization.
//
//	exkmeans -k 3 -p 10 -d euclidean -f solutions.csv points.bin
//
// Inputs and outputs may be local paths, "-" for stdin/stdout, or
// s3://bucket/key and minio://bucket/key URIs.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	flags "github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/exkmeans"
	"github.com/hupe1980/exkmeans/blobstore"
	"github.com/hupe1980/exkmeans/codec"
	"github.com/hupe1980/exkmeans/metric"
	"github.com/hupe1980/exkmeans/model"
	"github.com/hupe1980/exkmeans/result"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "exkmeans"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintf(stderr, "exkmeans: %v\nRun 'exkmeans --help' for usage.\n", err)
		return 1
	}
	if len(rest) > 0 {
		fmt.Fprintf(stderr, "exkmeans: unexpected arguments %q\nRun 'exkmeans --help' for usage.\n", rest)
		return 1
	}

	fc := &fileConfig{}
	if opts.Config != "" {
		if fc, err = loadConfigFile(opts.Config, parser, &opts); err != nil {
			fmt.Fprintf(stderr, "exkmeans: %v\n", err)
			return 1
		}
	}
	if err := checkRequired(parser, fc); err != nil {
		fmt.Fprintf(stderr, "exkmeans: %v\nRun 'exkmeans --help' for usage.\n", err)
		return 1
	}

	logger, err := newLogger(stderr, opts.LogLevel, opts.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "exkmeans: %v\n", err)
		return 1
	}

	if err := execute(ctx, &opts, logger, stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "exkmeans: %v\n", err)
		var ce *exkmeans.ConfigError
		if errors.As(err, &ce) {
			fmt.Fprintln(stderr, "Run 'exkmeans --help' for usage.")
		}
		return 1
	}
	return 0
}

func newLogger(w io.Writer, level, format string) (*exkmeans.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "", "text":
		return exkmeans.NewLogger(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return exkmeans.NewLogger(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func execute(ctx context.Context, opts *Options, logger *exkmeans.Logger, stdin io.Reader, stdout io.Writer) error {
	s, err := opts.settings()
	if err != nil {
		return err
	}

	ds, err := readDataset(ctx, opts, s.inputCompression, stdin)
	if err != nil {
		return err
	}

	if s.search.PickingLimit > ds.Len() {
		logger.WarnContext(ctx, "picking limit exceeds the number of vectors, using all vectors",
			"picking_limit", s.search.PickingLimit,
			"vectors", ds.Len(),
		)
	}
	if err := exkmeans.ValidateDataset(s.search, ds); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	var mc exkmeans.MetricsCollector = exkmeans.NoopMetricsCollector{}
	if opts.MetricsFile != "" {
		mc = metric.NewPrometheusCollector(reg)
	}

	res, searchErr := exkmeans.Search(ctx, ds,
		exkmeans.WithConfig(s.search),
		exkmeans.WithLogger(logger),
		exkmeans.WithMetricsCollector(mc),
	)
	if searchErr == nil {
		if err := writeResult(ctx, opts, s.outputCompression, res, stdout); err != nil {
			return err
		}
	}

	if opts.MetricsFile != "" {
		if err := metric.WriteTextfile(opts.MetricsFile, reg); err != nil {
			return errors.Join(searchErr, fmt.Errorf("metrics file: %w", err))
		}
	}
	return searchErr
}

func isStdio(name string) bool {
	return name == "" || name == "-"
}

func readDataset(ctx context.Context, opts *Options, c codec.Compression, stdin io.Reader) (*model.Dataset, error) {
	decode := func(data []byte) (*model.Dataset, error) {
		raw, err := codec.Decompress(data, c)
		if err != nil {
			return nil, err
		}
		return codec.Decode(raw)
	}

	if isStdio(opts.Args.Input) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		ds, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return ds, nil
	}

	loc, err := blobstore.Locate(opts.Args.Input)
	if err != nil {
		return nil, err
	}
	store, name, err := openStore(ctx, loc, opts.Storage)
	if err != nil {
		return nil, err
	}

	var ds *model.Dataset
	err = blobstore.View(ctx, store, name, func(data []byte) error {
		var err error
		ds, err = decode(data)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", loc, err)
	}
	return ds, nil
}

// writeResult encodes every row before touching the destination, so a
// failed encode never leaves a partial file behind.
func writeResult(ctx context.Context, opts *Options, c codec.Compression, res *model.Result, stdout io.Writer) error {
	target := opts.OutputFile
	if c == codec.CompressionAuto {
		c = codec.CompressionNone
		if !isStdio(target) {
			c = codec.CompressionForName(target)
		}
	}

	var buf bytes.Buffer
	cw, err := codec.NewCompressWriter(&buf, c)
	if err != nil {
		return err
	}
	w := result.NewWriter(cw, func(o *result.Options) { o.Quiet = opts.Quiet })
	if err := w.Write(res); err != nil {
		return err
	}
	if err := cw.Close(); err != nil {
		return err
	}

	if isStdio(target) {
		_, err := stdout.Write(buf.Bytes())
		return err
	}

	loc, err := blobstore.Locate(target)
	if err != nil {
		return err
	}
	store, name, err := openStore(ctx, loc, opts.Storage)
	if err != nil {
		return err
	}
	if err := blobstore.WriteAll(ctx, store, name, buf.Bytes()); err != nil {
		return fmt.Errorf("%s: %w", loc, err)
	}
	return nil
}
