// Command dsvcat reads DSV files (or stdin) and prints their records.
//
// By default it parses the UNIX DSV dialect (separator ':', escape '\\') and
// prints fields joined by tabs, which makes passwd-style files pipeable into
// the usual text tools:
//
//	dsvcat /etc/passwd
//	dsvcat -f 1,7 /etc/passwd
//	dsvcat -s '|' -e '^' orders.dsv
//
// With --schema, records are additionally validated against a YAML column
// schema and violations are reported on stderr.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

var (
	app = kingpin.New("dsvcat", "Concatenate DSV files and print their records.")

	separator = app.Flag("separator", "Field separator byte.").
			Short('s').Default(":").String()
	escape = app.Flag("escape", "Escape byte.").
		Short('e').Default(`\`).String()
	outSep = app.Flag("output-separator", "String printed between fields.").
		Short('o').Default("\t").String()
	fields = app.Flag("fields", "Comma separated list of 1-based field indexes to print (default: all).").
		Short('f').String()
	schemaFile = app.Flag("schema", "YAML schema file to validate records against.").String()
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()
	files      = app.Arg("file", "DSV files to read (default: stdin).").Strings()
)

var errc = color.New(color.FgRed, color.Bold).FprintfFunc()

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if *noColor {
		color.NoColor = true
	}

	opts, err := parseOptions()
	if err != nil {
		app.Fatalf("%v", err)
	}

	selected, err := parseFields(*fields)
	if err != nil {
		app.Fatalf("%v", err)
	}

	var schema *dsv.Schema
	if *schemaFile != "" {
		schema, err = dsv.LoadSchemaFile(*schemaFile)
		if err != nil {
			app.Fatalf("%v", err)
		}
	}

	failed := false
	for _, input := range inputs() {
		if err := catFile(input, opts, selected, schema); err != nil {
			errc(os.Stderr, "dsvcat: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// parseOptions builds the parser configuration from the flag strings. Each
// flag must be a single byte.
func parseOptions() (dsv.Options, error) {
	opts := dsv.Options{}
	var err error
	if opts.Separator, err = singleByte("separator", *separator); err != nil {
		return opts, err
	}
	if opts.Escape, err = singleByte("escape", *escape); err != nil {
		return opts, err
	}
	return opts, opts.Validate()
}

func singleByte(name, value string) (byte, error) {
	if len(value) != 1 {
		return 0, errors.Errorf("--%s must be a single byte, got %q", name, value)
	}
	return value[0], nil
}

// parseFields parses the --fields flag into 0-based indexes.
func parseFields(spec string) ([]int, error) {
	if spec == "" {
		return nil, nil
	}
	var indexes []int
	for _, part := range strings.Split(spec, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			return nil, errors.Errorf("--fields: %q is not a positive field number", part)
		}
		indexes = append(indexes, n-1)
	}
	return indexes, nil
}

func inputs() []string {
	if len(*files) == 0 {
		return []string{"-"}
	}
	return *files
}

func catFile(path string, opts dsv.Options, selected []int, schema *dsv.Schema) error {
	file := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "open %s", path)
		}
		defer f.Close()
		file = f
	}

	if schema != nil {
		return validateAndPrint(path, file, opts, selected, schema)
	}

	// No schema to check against the whole document, so stream: one record
	// in memory at a time, output flowing as the input is read.
	scanner := dsv.NewScannerWithOptions(file, opts)
	for scanner.Scan() {
		printRecord(scanner.Record().Fields(), selected)
	}
	return errors.Wrapf(scanner.Err(), "read %s", path)
}

// validateAndPrint materializes all records so the schema can judge the
// document before anything is printed.
func validateAndPrint(path string, file *os.File, opts dsv.Options, selected []int, schema *dsv.Schema) error {
	sink := &dsv.RecordSink{}
	parser := dsv.NewParserWithOptions(sink, opts)
	if err := parser.ParseAndFinish(dsv.NewFileSource(file)); err != nil {
		return err
	}

	doc := dsv.NewDocument()
	for _, record := range sink.Records() {
		doc.AddRecord(record)
	}
	result := schema.Validate(doc)
	for _, verr := range result.Errors {
		errc(os.Stderr, "%s: %v\n", path, &verr)
	}
	if !result.Valid {
		return errors.Errorf("%d schema violations", len(result.Errors))
	}

	for _, record := range sink.Records() {
		printRecord(record, selected)
	}
	return nil
}

// fieldColors alternate across a record so adjacent fields stay readable.
var fieldColors = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgYellow),
}

func printRecord(record []string, selected []int) {
	for i, field := range selectFields(record, selected) {
		if i > 0 {
			fmt.Print(*outSep)
		}
		fieldColors[i%len(fieldColors)].Print(field)
	}
	fmt.Println()
}

// selectFields applies the --fields selection. Indexes beyond the record
// yield empty fields so output columns stay aligned.
func selectFields(record []string, selected []int) []string {
	if selected == nil {
		return record
	}
	fields := make([]string, 0, len(selected))
	for _, i := range selected {
		if i < len(record) {
			fields = append(fields, record[i])
		} else {
			fields = append(fields, "")
		}
	}
	return fields
}
