// Package main provides the CLI entrypoint for csvpaths.
//
// csvpaths converts between nested JSON documents and CSV-with-paths text:
//   - decode: CSV-with-paths → JSON (or YAML)
//   - encode: JSON → CSV-with-paths
//   - check: decode and report diagnostics without writing output
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"csvpaths/csvpath"
	"csvpaths/internal/common"
	"csvpaths/internal/config"
	"csvpaths/internal/diagnostic"
	"csvpaths/internal/fileio"
	"csvpaths/jsonvalue"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const usage = `usage: csvpaths <command> [flags] [input]

Commands:
  decode   convert CSV-with-paths text to JSON or YAML
  encode   convert a JSON document to CSV-with-paths text
  check    decode and report diagnostics

Input defaults to stdin ("-"). Files ending in .zst are zstd-compressed.
Run "csvpaths <command> -h" for command flags.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// command holds the parsed flags shared by all subcommands.
type command struct {
	name   string
	cfg    *config.Config
	input  string
	output string
	logger *slog.Logger
	io     fileio.Streams
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	name, ok := common.First(args)
	if !ok {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	switch name {
	case "decode", "encode", "check":
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", name, usage)
		return exitUsage
	}

	cmd, code := parseCommand(name, args[1:], stderr)
	if cmd == nil {
		return code
	}

	cmd.io = fileio.Streams{Stdin: stdin, Stdout: stdout}

	var err error

	switch name {
	case "decode":
		err = cmd.decode()
	case "encode":
		err = cmd.encode()
	case "check":
		err = cmd.check(stdout)
	}

	if err != nil {
		cmd.logger.Error(name+" failed", slog.String("error", err.Error()))
		return exitFailure
	}

	return exitOK
}

// parseCommand parses flags and loads configuration. Flags set on the command
// line override the configuration file.
func parseCommand(name string, args []string, stderr io.Writer) (*command, int) {
	fs := flag.NewFlagSet("csvpaths "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "configuration file (.yaml, .yml or .toml)")
	strict := fs.Bool("strict", false, "fail on any warning diagnostic")
	output := fs.String("o", "-", "output file (\"-\" for stdout)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")

	var format *string
	var indent *int
	var compact *bool

	if name == "decode" {
		format = fs.String("format", "", "output format: json or yaml")
		indent = fs.Int("indent", config.DefaultIndent, "spaces per nesting level (0 for single-line JSON)")
		compact = fs.Bool("compact", false, "single-line JSON output")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exitOK
		}

		return nil, exitUsage
	}

	if common.IsMultiple(fs.Args()) {
		fmt.Fprintf(stderr, "csvpaths %s: expected at most one input, got %d\n", name, fs.NArg())
		return nil, exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "csvpaths %s: %v\n", name, err)
		return nil, exitUsage
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			cfg.Strict = *strict
		case "log-level":
			cfg.Log.Level = *logLevel
		case "format":
			cfg.Output.Format = *format
		case "indent":
			cfg.Output.Indent = indent
		case "compact":
			cfg.Output.Compact = *compact
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "csvpaths %s: %v\n", name, err)
		return nil, exitUsage
	}

	input, _ := common.First(fs.Args())

	return &command{
		name:   name,
		cfg:    cfg,
		input:  input,
		output: *output,
		logger: cfg.Log.NewLogger(stderr).With(slog.String("cmd", name)),
	}, exitOK
}

func (c *command) converter() *csvpath.Converter {
	return csvpath.NewConverter(csvpath.Options{
		Strict:         c.cfg.Strict,
		Logger:         c.logger,
		MaxSuggestions: c.cfg.MaxSuggestions,
	})
}

func (c *command) decode() error {
	data, err := c.io.ReadAll(c.input)
	if err != nil {
		return err
	}

	res, err := c.converter().Decode(string(data))
	if err != nil {
		return err
	}

	var out []byte

	switch c.cfg.Output.Format {
	case config.FormatYAML:
		out, err = jsonvalue.MarshalYAML(res.Value, c.cfg.Output.IndentWidth())
	default:
		out, err = jsonvalue.MarshalIndent(res.Value, c.cfg.Output.IndentString())
		out = append(out, '\n')
	}

	if err != nil {
		return err
	}

	return c.io.WriteAll(c.output, out)
}

func (c *command) encode() error {
	data, err := c.io.ReadAll(c.input)
	if err != nil {
		return err
	}

	v, err := jsonvalue.Parse(data)
	if err != nil {
		return err
	}

	res, err := c.converter().Encode(v)
	if err != nil {
		return err
	}

	text := res.Text
	if text != "" {
		text += "\n"
	}

	return c.io.WriteAll(c.output, []byte(text))
}

// check decodes leniently, prints every diagnostic, and fails when strict
// mode would have rejected the document.
func (c *command) check(stdout io.Writer) error {
	data, err := c.io.ReadAll(c.input)
	if err != nil {
		return err
	}

	lenient := csvpath.NewConverter(csvpath.Options{MaxSuggestions: c.cfg.MaxSuggestions})

	res, err := lenient.Decode(string(data))
	if err != nil {
		return err
	}

	printDiagnostics(stdout, res.Diagnostics)
	res.Diagnostics.Log(context.Background(), c.logger)

	if c.cfg.Strict && res.Diagnostics.HasWarnings() {
		return &csvpath.StrictError{Op: "check", Diagnostics: res.Diagnostics}
	}

	return nil
}

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	fmt.Fprintf(w, "%d error(s), %d warning(s), %d info(s)\n",
		len(diags.Errors), len(diags.Warnings), len(diags.Infos))
}
