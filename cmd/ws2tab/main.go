// ws2tab re-delimits a whitespace-separated table into tab-separated form,
// writing out.<basename of input>. Running it on its own output is a no-op.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/gwaskit/mrprep"
	_ "github.com/gwaskit/mrprep/compileinfoprint"
)

const outputPrefix = "out."

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <input_file>\n", filepath.Base(os.Args[0]))
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	inputFile := flag.Arg(0)
	outputFile := outputPrefix + filepath.Base(inputFile)

	if err := run(inputFile, outputFile); err != nil {
		log.Fatalln(err)
	}

	log.Printf("Conversion complete, result saved in %s\n", outputFile)
}

func run(inputFile, outputFile string) error {
	in, err := mrprep.Open(inputFile)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outputFile)
	if err != nil {
		return pfx.Err(err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if err := retab(in, w); err != nil {
		return err
	}

	return pfx.Err(w.Flush())
}

// retab rewrites each line of r with its whitespace-run separators replaced
// by single tabs.
func retab(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return pfx.Err(err)
		}
	}

	return pfx.Err(scanner.Err())
}
