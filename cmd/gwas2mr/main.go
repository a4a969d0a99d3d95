// gwas2mr splits a joined MiBioGen/FinnGen association table into the
// exposure and outcome tables expected by two-sample MR tooling, writing
// <output_prefix>.outcome.txt and <output_prefix>.exposure.txt.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/gwaskit/mrprep/compileinfoprint"
	"github.com/gwaskit/mrprep/mrformat"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <input_file> <output_prefix>\n", filepath.Base(os.Args[0]))
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	inputFile, outputPrefix := flag.Arg(0), flag.Arg(1)

	if err := mrformat.Process(inputFile, outputPrefix); err != nil {
		log.Fatalln(err)
	}

	log.Printf("Wrote %s.outcome.txt and %s.exposure.txt\n", outputPrefix, outputPrefix)
}
