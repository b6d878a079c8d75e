// Command huffpack compresses or decompresses a single file with a
// per-file Huffman code.
//
// Usage:
//
//     huffpack [-dump] [-q] compress <input> <output>
//     huffpack [-dump] [-q] decompress <input> <output>
//
// Either path may be "-" for stdin or stdout.
//
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chronos-tachyon/huffpack"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	logger := log.New(stderr, "huffpack: ", 0)

	fs := flag.NewFlagSet("huffpack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	doDump := fs.Bool("dump", false, "write the code table to stderr")
	quiet := fs.Bool("q", false, "do not print a summary")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: huffpack [flags] <command> <input_file> <output_file>\n")
		fmt.Fprintf(stderr, "Commands:\n")
		fmt.Fprintf(stderr, "  compress   Compress the file\n")
		fmt.Fprintf(stderr, "  decompress Decompress the file\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return exitUsage
	}

	command, inName, outName := fs.Arg(0), fs.Arg(1), fs.Arg(2)
	if command != "compress" && command != "decompress" {
		logger.Printf("invalid command %q; use 'compress' or 'decompress'", command)
		return exitUsage
	}

	input, err := readInput(inName, stdin)
	if err != nil {
		logger.Print(err)
		return exitFail
	}

	var output []byte
	switch command {
	case "compress":
		var e *huffpack.Encoder
		output, e = huffpack.CompressWithTable(input)
		if *doDump {
			_, _ = e.Dump(stderr)
		}
	case "decompress":
		var d *huffpack.Decoder
		output, d, err = huffpack.DecompressWithTable(input)
		if err != nil {
			logger.Printf("%s: %v", inName, err)
			return exitFail
		}
		if *doDump {
			_, _ = d.Dump(stderr)
		}
	}

	if err := writeOutput(outName, stdout, output); err != nil {
		logger.Print(err)
		return exitFail
	}

	if !*quiet {
		logger.Printf("%sed %d bytes into %d bytes", command, len(input), len(output))
	}
	return exitOK
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func writeOutput(name string, stdout io.Writer, data []byte) error {
	if name == "-" {
		w := bufio.NewWriter(stdout)
		if _, err := w.Write(data); err != nil {
			return err
		}
		return w.Flush()
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
