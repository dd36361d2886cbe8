// re2rd is a command-line tool that generates the re2_syntax R help page from
// the RE2 syntax reference.
//
// The reference is an HTML file written in a small fixed dialect. The tool
// translates it to Rd markup, prepends the \name, \alias and \title metadata
// and wraps the body in \description{}.
//
// Usage:
//
//	re2rd [options]
//
// Options:
//
//	-input string     Path to the HTML syntax reference (default "RE2Syntax.md")
//	-output string    Path to save the Rd file (default: stdout)
//	-config string    Path to a YAML file overriding the header metadata
//	-overwrite        Overwrite the output file if it already exists
//	-verbose          Log progress to stderr
//
// Configuration:
//
// The optional YAML file may set any of the header fields:
//
//	author: "Girish Palya"
//	name: "re2_syntax"
//	aliases: ["re2_syntax", "re2_regular_expressions_syntax"]
//	title: "RE2 Regular Expression Syntax"
//
// Example:
//
//	re2rd -input RE2Syntax.md -output man/re2_syntax.Rd
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gardar/re2rd/pkg/rdconv"
)

func main() {
	inputPath := flag.String("input", "RE2Syntax.md", "Path to the HTML syntax reference")
	outputPath := flag.String("output", "", "Path to save the Rd file (default: stdout)")
	configPath := flag.String("config", "", "Path to a YAML file overriding the header metadata")
	overwriteOutput := flag.Bool("overwrite", false, "Overwrite the output file if it already exists")
	verbose := flag.Bool("verbose", false, "Log progress to stderr")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %v\n", flag.Args())
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Build the config
	config := rdconv.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = rdconv.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	config.Verbose = *verbose
	config.Logger = os.Stderr

	if err := run(*inputPath, *outputPath, *overwriteOutput, config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string, overwrite bool, config rdconv.Config) (err error) {
	var out io.Writer = os.Stdout
	if outputPath != "" {
		if _, statErr := os.Stat(outputPath); statErr == nil && !overwrite {
			return fmt.Errorf("output file %s already exists, use -overwrite to overwrite", outputPath)
		}
		f, createErr := os.Create(outputPath)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}()
		out = f
	}

	if err := rdconv.ConvertFile(out, inputPath, config); err != nil {
		return err
	}
	if outputPath != "" && config.Verbose {
		fmt.Fprintln(os.Stderr, "Rd file created:", outputPath)
	}
	return nil
}
