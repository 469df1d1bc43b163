package main

import (
	"bytes"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/exkmeans"
	"github.com/hupe1980/exkmeans/codec"
	"github.com/hupe1980/exkmeans/distance"
)

// Options are the command line options of exkmeans.
type Options struct {
	K                 int    `short:"k" long:"clusters" description:"Number of clusters to compute (required)"`
	PickingLimit      int    `short:"p" long:"picking_limit" description:"Only vectors with an index in [0, picking_limit) serve as initial centroids (required)"`
	Distance          string `short:"d" long:"distance" default:"manhattan" choice:"manhattan" choice:"euclidean" description:"Distance used for assignment and distortion"`
	OutputFile        string `short:"f" long:"output-file" default:"-" description:"CSV output path or URI (- for stdout)"`
	Quiet             bool   `short:"q" long:"quiet" description:"Omit the clusters column"`
	MaxIterations     int    `long:"max-iterations" default:"10000" description:"Lloyd passes allowed per initialization before the run fails"`
	EmptyCluster      string `long:"empty-cluster" default:"keep" choice:"keep" choice:"fail" description:"What to do when a cluster loses all members"`
	InputCompression  string `long:"input-compression" default:"auto" choice:"auto" choice:"none" choice:"zstd" choice:"lz4" description:"Input compression (auto sniffs the frame magic)"`
	OutputCompression string `long:"output-compression" default:"auto" choice:"auto" choice:"none" choice:"zstd" choice:"lz4" description:"Output compression (auto uses the file extension)"`
	MetricsFile       string `long:"metrics-file" description:"Write Prometheus metrics in textfile format to this path"`
	LogLevel          string `long:"log-level" default:"warn" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"Minimum level of log lines written to stderr"`
	LogFormat         string `long:"log-format" default:"text" choice:"text" choice:"json" description:"Log line format"`
	Config            string `short:"c" long:"config" description:"YAML file with defaults for these options; command line flags win"`

	Storage StorageOptions `group:"Storage Options"`

	Args struct {
		Input string `positional-arg-name:"INPUT" description:"Binary input path or URI (- or omitted for stdin)"`
	} `positional-args:"yes"`
}

// StorageOptions configure remote inputs and outputs.
type StorageOptions struct {
	S3Region       string `long:"s3-region" env:"EXKMEANS_S3_REGION" description:"AWS region for s3:// locations"`
	MinioEndpoint  string `long:"minio-endpoint" env:"EXKMEANS_MINIO_ENDPOINT" description:"host:port of the MinIO server for minio:// locations"`
	MinioAccessKey string `long:"minio-access-key" env:"EXKMEANS_MINIO_ACCESS_KEY" description:"MinIO access key"`
	MinioSecretKey string `long:"minio-secret-key" env:"EXKMEANS_MINIO_SECRET_KEY" description:"MinIO secret key"`
	MinioSecure    bool   `long:"minio-secure" env:"EXKMEANS_MINIO_SECURE" description:"Use HTTPS for MinIO"`
}

// fileConfig mirrors Options in the YAML config file. Nil fields are absent.
type fileConfig struct {
	K                 *int    `yaml:"k"`
	PickingLimit      *int    `yaml:"picking_limit"`
	Distance          *string `yaml:"distance"`
	OutputFile        *string `yaml:"output_file"`
	Quiet             *bool   `yaml:"quiet"`
	MaxIterations     *int    `yaml:"max_iterations"`
	EmptyCluster      *string `yaml:"empty_cluster"`
	InputCompression  *string `yaml:"input_compression"`
	OutputCompression *string `yaml:"output_compression"`
	MetricsFile       *string `yaml:"metrics_file"`
	LogLevel          *string `yaml:"log_level"`
	LogFormat         *string `yaml:"log_format"`

	Storage struct {
		S3Region       *string `yaml:"s3_region"`
		MinioEndpoint  *string `yaml:"minio_endpoint"`
		MinioAccessKey *string `yaml:"minio_access_key"`
		MinioSecretKey *string `yaml:"minio_secret_key"`
		MinioSecure    *bool   `yaml:"minio_secure"`
	} `yaml:"storage"`
}

// explicit reports whether the option was given on the command line.
func explicit(parser *flags.Parser, long string) bool {
	o := parser.FindOptionByLongName(long)
	return o != nil && o.IsSet() && !o.IsSetDefault()
}

// checkRequired fails unless -k and -p were given on the command line or in
// the config file.
func checkRequired(parser *flags.Parser, fc *fileConfig) error {
	required := []struct {
		long  string
		given bool
	}{
		{"clusters", fc.K != nil},
		{"picking_limit", fc.PickingLimit != nil},
	}

	for _, r := range required {
		if r.given || explicit(parser, r.long) {
			continue
		}
		o := parser.FindOptionByLongName(r.long)
		return &flags.Error{
			Type:    flags.ErrRequired,
			Message: fmt.Sprintf("the required flag `-%c, --%s' was not specified", o.ShortName, o.LongName),
		}
	}
	return nil
}

// loadConfigFile fills every option that was not given on the command line
// from the YAML file at path.
func loadConfigFile(path string, parser *flags.Parser, opts *Options) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	isSet := func(long string) bool { return explicit(parser, long) }

	override(&opts.K, fc.K, isSet("clusters"))
	override(&opts.PickingLimit, fc.PickingLimit, isSet("picking_limit"))
	override(&opts.Distance, fc.Distance, isSet("distance"))
	override(&opts.OutputFile, fc.OutputFile, isSet("output-file"))
	override(&opts.Quiet, fc.Quiet, isSet("quiet"))
	override(&opts.MaxIterations, fc.MaxIterations, isSet("max-iterations"))
	override(&opts.EmptyCluster, fc.EmptyCluster, isSet("empty-cluster"))
	override(&opts.InputCompression, fc.InputCompression, isSet("input-compression"))
	override(&opts.OutputCompression, fc.OutputCompression, isSet("output-compression"))
	override(&opts.MetricsFile, fc.MetricsFile, isSet("metrics-file"))
	override(&opts.LogLevel, fc.LogLevel, isSet("log-level"))
	override(&opts.LogFormat, fc.LogFormat, isSet("log-format"))
	override(&opts.Storage.S3Region, fc.Storage.S3Region, isSet("s3-region"))
	override(&opts.Storage.MinioEndpoint, fc.Storage.MinioEndpoint, isSet("minio-endpoint"))
	override(&opts.Storage.MinioAccessKey, fc.Storage.MinioAccessKey, isSet("minio-access-key"))
	override(&opts.Storage.MinioSecretKey, fc.Storage.MinioSecretKey, isSet("minio-secret-key"))
	override(&opts.Storage.MinioSecure, fc.Storage.MinioSecure, isSet("minio-secure"))

	return &fc, nil
}

func override[T any](dst *T, v *T, explicit bool) {
	if v != nil && !explicit {
		*dst = *v
	}
}

// settings are the parsed and validated options.
type settings struct {
	search            exkmeans.Config
	inputCompression  codec.Compression
	outputCompression codec.Compression
}

func (o *Options) settings() (settings, error) {
	metric, err := distance.ParseMetric(o.Distance)
	if err != nil {
		return settings{}, err
	}
	policy, err := exkmeans.ParseEmptyClusterPolicy(o.EmptyCluster)
	if err != nil {
		return settings{}, err
	}
	in, err := codec.ParseCompression(o.InputCompression)
	if err != nil {
		return settings{}, fmt.Errorf("input: %w", err)
	}
	out, err := codec.ParseCompression(o.OutputCompression)
	if err != nil {
		return settings{}, fmt.Errorf("output: %w", err)
	}

	cfg := exkmeans.Config{
		K:             o.K,
		PickingLimit:  o.PickingLimit,
		Metric:        metric,
		MaxIterations: o.MaxIterations,
		EmptyCluster:  policy,
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	return settings{search: cfg, inputCompression: in, outputCompression: out}, nil
}
