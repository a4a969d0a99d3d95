package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRetab(t *testing.T) {
	in := "a  b\tc   d\nsingle\n\ne f\n"

	var out bytes.Buffer
	if err := retab(strings.NewReader(in), &out); err != nil {
		t.Error(err)
	}

	want := "a\tb\tc\td\nsingle\n\ne\tf\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestRetabIdempotent(t *testing.T) {
	in := "chr1   12345  rs1  A  G\nchr2\t678\trs2\tC\tT\n"

	var once bytes.Buffer
	if err := retab(strings.NewReader(in), &once); err != nil {
		t.Error(err)
	}

	var twice bytes.Buffer
	if err := retab(strings.NewReader(once.String()), &twice); err != nil {
		t.Error(err)
	}

	if once.String() != twice.String() {
		t.Errorf("retab not idempotent: %q vs %q", once.String(), twice.String())
	}
}
