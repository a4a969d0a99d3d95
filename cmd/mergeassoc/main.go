// mergeassoc joins an exposure association table (file A, keyed on its 3rd
// column) with an outcome association table (file B, keyed on its 5th
// column), writing rowA ++ rowB for every B row whose key is present in A.
// When a key repeats within A, the last row read wins.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"

	"github.com/gwaskit/mrprep"
	_ "github.com/gwaskit/mrprep/compileinfoprint"
	"github.com/gwaskit/mrprep/keyjoin"
)

var joinSpec = keyjoin.Spec{
	KeyColA:    2,
	MinFieldsA: 3,
	KeyColB:    4,
	MinFieldsB: 5,
	Delimiter:  '\t',
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <file_a> <file_b> <output_prefix>\n", filepath.Base(os.Args[0]))
	}
	flag.Parse()

	if flag.NArg() < 3 {
		flag.Usage()
		os.Exit(1)
	}

	fileA, fileB := flag.Arg(0), flag.Arg(1)
	outputFile := flag.Arg(2) + "_all_" + fileA

	matched, err := run(fileA, fileB, outputFile)
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("Merge completed, %d rows saved to %s\n", matched, outputFile)
}

func run(fileA, fileB, outputFile string) (int, error) {
	fa, err := mrprep.Open(fileA)
	if err != nil {
		return 0, err
	}
	defer fa.Close()

	fb, err := mrprep.Open(fileB)
	if err != nil {
		return 0, err
	}
	defer fb.Close()

	out, err := os.Create(outputFile)
	if err != nil {
		return 0, pfx.Err(err)
	}
	defer out.Close()

	return keyjoin.Join(fa, fb, out, joinSpec)
}
