// Copyright (C) 2025  Makon324

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	goflag "flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golang/glog"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Makon324/M-PU-3/pkg/assembler"
	"github.com/Makon324/M-PU-3/pkg/isa"
)

var outvar string
var catalogvar string
var listingvar bool

var exitCode int

var rootCmd = &cobra.Command{
	Use:   "mpu3-asm [flags] file.as",
	Short: "The M-PU-3 assembler",
	Long: `Mpu3-asm translates M-PU-3 assembly source into 16-bit machine
code words, validated against a declarative instruction catalog.

The input is a single .as file, or standard input when piped. Each output
line holds one instruction word as two 8-bit groups separated by a space.
The instruction catalog is a JSON file located by searching upward from the
input file's directory, overridable with --catalog.
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitCode = run(args)
	},
}

func init() {
	rootCmd.Flags().StringVarP(
		&outvar, "out", "o", "",
		"Specifies a precise name for the output file, "+
			"overriding the default means of determining it",
	)
	rootCmd.Flags().StringVar(
		&catalogvar, "catalog", isa.DefaultFilename,
		"Specifies the instruction catalog file. A bare filename is "+
			"searched for upward from the input file's directory",
	)
	rootCmd.Flags().BoolVar(
		&listingvar, "listing", false,
		"Prints an address/word/source listing and the symbol table "+
			"after a successful assembly",
	)
	rootCmd.Flags().AddGoFlagSet(goflag.CommandLine)
}

func run(args []string) int {
	var source string
	var infile string

	if len(args) == 0 {
		if stat, _ := os.Stdin.Stat(); stat.Mode()&os.ModeCharDevice != 0 {
			fmt.Fprintln(os.Stderr, "mpu3-asm [flags] file.as")
			return 1
		}

		data, err := io.ReadAll(os.Stdin)

		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return 2
		}

		source = string(data)

		if outvar == "" {
			outvar = "out.txt"
		}
	} else {
		infile = args[0]

		if !strings.EqualFold(filepath.Ext(infile), ".as") {
			fmt.Fprintln(os.Stderr, "Error: input file must have .as extension")
			return 1
		}

		data, err := os.ReadFile(infile)

		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return 1
		}

		source = string(data)

		if outvar == "" {
			outvar = strings.TrimSuffix(infile, filepath.Ext(infile)) + ".txt"
		}
	}

	glog.V(1).Infof("Assembling %d bytes", len(source))

	catalogPath := catalogvar

	if filepath.Base(catalogPath) == catalogPath {
		start := "."

		if infile != "" {
			start = filepath.Dir(infile)
		}

		path, err := isa.Find(start, catalogPath)

		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return 1
		}

		catalogPath = path
	}

	catalog, err := isa.Load(catalogPath)

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	glog.V(1).Infof(
		"Loaded %d instruction specifications from %s",
		len(catalog),
		catalogPath,
	)

	tokens, err := assembler.Tokenize(source)

	if err != nil {
		reportError(err, source)
		return 1
	}

	glog.V(1).Infof("Generated %d tokens", len(tokens))

	program, err := assembler.Parse(tokens)

	if err != nil {
		reportError(err, source)
		return 1
	}

	glog.V(1).Infof("Parsed %d statements", len(program))

	if err := assembler.NewValidator(catalog).Validate(program); err != nil {
		reportError(err, source)
		return 1
	}

	glog.V(1).Info("Validation completed")

	generator := assembler.NewGenerator(catalog)

	words, err := generator.Generate(program)

	if err != nil {
		reportError(err, source)
		return 1
	}

	glog.V(1).Infof("Generated %d machine words", len(words))

	var builder strings.Builder

	for _, word := range words {
		builder.WriteString(word[:8])
		builder.WriteByte(' ')
		builder.WriteString(word[8:])
		builder.WriteByte('\n')
	}

	if err := os.WriteFile(outvar, []byte(builder.String()), 0666); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file %q: %v\n", outvar, err)
		return 2
	}

	if listingvar {
		if symbols, err := generator.Symbols(program); err == nil {
			printListing(program, words, symbols)
		}
	}

	fmt.Printf(
		"Successfully assembled %d instructions to %s\n", len(words), outvar,
	)

	return 0
}

// reportError prints an assembly error with the offending source line and a
// column marker, colored when stderr is a terminal.
func reportError(err error, source string) {
	tokenErr, ok := err.(assembler.TokenError)

	if !ok {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return
	}

	cursor := tokenErr.GetPosition()

	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")

	lines := strings.Split(source, "\n")

	if cursor.Line < 1 || cursor.Line > len(lines) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return
	}

	tildes := 0

	if cursor.Size > 1 {
		tildes = int(cursor.Size) - 1
	}

	underline := strings.Repeat(" ", cursor.Column-1) +
		"^" + strings.Repeat("~", tildes)

	if isTerminal(os.Stderr) {
		underline = "\033[31m" + underline + "\033[0m"
	}

	fmt.Fprintf(
		os.Stderr,
		"%s\n%s\n%s\n",
		err,
		lines[cursor.Line-1],
		underline,
	)
}

// printListing renders the assembled program and its symbol table as tables
// on standard output.
func printListing(
	program []assembler.Statement, words []string, symbols map[string]int,
) {
	listing := table.NewWriter()
	listing.SetOutputMirror(os.Stdout)
	listing.SetTitle("Program")
	listing.AppendHeader(table.Row{"Addr", "Word", "Line", "Source"})

	address := 0

	for i := range program {
		if program[i].Type != assembler.STATEMENT_INSTRUCTION {
			continue
		}

		operands := make([]string, 0, len(program[i].Operands))

		for _, operand := range program[i].Operands {
			operands = append(operands, operand.Value)
		}

		text := program[i].Mnemonic

		if len(operands) > 0 {
			text += " " + strings.Join(operands, ", ")
		}

		word := words[address]

		listing.AppendRow(table.Row{
			address,
			word[:8] + " " + word[8:],
			program[i].Position.Line,
			text,
		})

		address++
	}

	listing.Render()

	if len(symbols) == 0 {
		return
	}

	labels := make([]string, 0, len(symbols))

	for label := range symbols {
		labels = append(labels, label)
	}

	sort.Strings(labels)

	symtable := table.NewWriter()
	symtable.SetOutputMirror(os.Stdout)
	symtable.SetTitle("Symbols")
	symtable.AppendHeader(table.Row{"Label", "Addr"})

	for _, label := range labels {
		symtable.AppendRow(table.Row{label, symbols[label]})
	}

	symtable.Render()
}

func main() {
	err := rootCmd.Execute()

	glog.Flush()

	if err != nil {
		os.Exit(2)
	}

	os.Exit(exitCode)
}
