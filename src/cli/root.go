// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-cert-decoder/src/config"
	"github.com/H0llyW00dzZ/x509-cert-decoder/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-cert-decoder/src/internal/helper/posix"
	x509certs "github.com/H0llyW00dzZ/x509-cert-decoder/src/internal/x509/certs"
	x509decode "github.com/H0llyW00dzZ/x509-cert-decoder/src/internal/x509/decode"
	"github.com/H0llyW00dzZ/x509-cert-decoder/src/logger"
)

var (
	// ErrInputFileRequired indicates that no input file was given.
	ErrInputFileRequired = errors.New("cli: at least one input file is required (use - for stdin)")

	// ErrUnknownFormat indicates an output format other than json, yaml or table.
	ErrUnknownFormat = errors.New("cli: unknown output format")
)

var (
	// OperationPerformed reports whether the last run reached the decoding stage.
	OperationPerformed bool
	// OperationPerformedSuccessfully reports whether every certificate of the last run decoded.
	OperationPerformedSuccessfully bool
)

// options holds the flag values of one command instance.
type options struct {
	configPath string
	format     string
	outputFile string
	logJSON    bool
	quiet      bool
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewCommand(version, log).ExecuteContext(ctx)
}

// NewCommand builds the root command. A nil log writes human-readable
// messages to the command's error stream.
func NewCommand(version string, log logger.Logger) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   posix.GetExecutableName() + " [flags] FILE...",
		Short: "Decode X.509 certificates into structured records",
		Long: `Decode X.509 certificates into structured records.

Each FILE may hold PEM, DER or PKCS#7 encoded certificates; "-" reads stdin.
For every certificate the subject, issuer, version, serial number, validity
window, subject and issuer alternative names, OCSP and CA issuer locations and
CRL distribution points are printed.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrInputFileRequired
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, log)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "configuration file (.json, .yaml, .yml); defaults to $"+config.EnvConfigFile)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json, yaml or table (default from config: json)")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	cmd.Flags().BoolVar(&opts.logJSON, "log-json", false, "emit warnings as JSON lines")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress warnings")

	return cmd
}

// run loads every input, decodes each certificate and writes the records.
// Records are written even when some certificates are unusable; the error
// is reported afterwards.
func run(cmd *cobra.Command, args []string, opts *options, log logger.Logger) error {
	OperationPerformed = false
	OperationPerformedSuccessfully = false

	ctx := cmd.Context()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.logJSON {
		cfg.Logging.Format = config.LogFormatJSON
	}
	if opts.quiet {
		cfg.Logging.Silent = true
	}

	write, err := writerFor(cfg)
	if err != nil {
		return err
	}

	decoder := x509decode.New(
		x509decode.WithLogger(newLogger(cmd.ErrOrStderr(), cfg, log)),
		x509decode.WithNameMaxLength(cfg.Decoder.NameMaxLength),
		x509decode.WithScratchSize(cfg.Decoder.ScratchSize),
	)

	OperationPerformed = true

	loader := x509certs.New()
	var records []*x509decode.Record
	for _, name := range args {
		if err := ctx.Err(); err != nil {
			return err
		}

		certs, err := loadInput(loader, cmd.InOrStdin(), name)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", name, err)
		}

		decoded, err := decoder.DecodeAll(certs)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", name, err)
		}
		records = append(records, decoded...)
	}

	if err := emit(cmd.OutOrStdout(), opts.outputFile, records, write); err != nil {
		return err
	}

	unusable := 0
	for _, rec := range records {
		if rec == nil {
			unusable++
		}
	}
	if unusable > 0 {
		return fmt.Errorf("%w: %d of %d certificates", x509decode.ErrMalformedCertificate, unusable, len(records))
	}

	OperationPerformedSuccessfully = true
	return nil
}

func loadInput(loader *x509certs.Certificate, stdin io.Reader, name string) ([]*x509.Certificate, error) {
	if name == "-" {
		return loader.Load(stdin)
	}
	return loader.LoadFile(name)
}

// newLogger picks the warning sink for the configured logging format.
func newLogger(stderr io.Writer, cfg *config.Config, log logger.Logger) logger.Logger {
	switch {
	case cfg.Logging.Silent:
		return logger.Discard
	case cfg.Logging.Format == config.LogFormatJSON:
		return logger.NewJSONLogger(stderr, false)
	case log != nil:
		return log
	default:
		l := logger.NewCLILogger()
		l.SetOutput(stderr)
		return l
	}
}

type recordWriter func(w io.Writer, records []*x509decode.Record) error

func writerFor(cfg *config.Config) (recordWriter, error) {
	indent := cfg.Output.Indent

	switch cfg.Output.Format {
	case config.FormatJSON:
		return func(w io.Writer, r []*x509decode.Record) error { return x509decode.WriteJSON(w, r, indent) }, nil
	case config.FormatYAML:
		return func(w io.Writer, r []*x509decode.Record) error { return x509decode.WriteYAML(w, r, indent) }, nil
	case config.FormatTable:
		return x509decode.WriteTable, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Output.Format)
	}
}

// emit renders records into a pooled buffer, then writes it to outputFile
// or stdout.
func emit(stdout io.Writer, outputFile string, records []*x509decode.Record, write recordWriter) error {
	return gc.With(nil, func(buf gc.Buffer) error {
		if err := write(buf, records); err != nil {
			return err
		}

		if outputFile == "" {
			_, err := buf.WriteTo(stdout)
			return err
		}

		if err := os.WriteFile(outputFile, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("error writing to output file: %w", err)
		}
		return nil
	})
}
