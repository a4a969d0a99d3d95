// mergetaxa joins a taxon annotation table (file A, keyed on its 3rd column)
// with an association table (file B, keyed on its 4th column), writing
// mer_<file_a> with rowA ++ rowB for every matching B row.
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
	KeyColB:    3,
	MinFieldsB: 4,
	Delimiter:  '\t',
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <file_a> <file_b>\n", filepath.Base(os.Args[0]))
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	fileA, fileB := flag.Arg(0), flag.Arg(1)
	outputFile := "mer_" + fileA

	matched, err := run(fileA, fileB, outputFile)
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("Merging completed, %d rows saved to %s\n", matched, outputFile)
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
