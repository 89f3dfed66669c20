//go:build ignore

// The generate command writes tuple_gen.go, holding the tuple types
// T1 to TN, and tuple_gen_test.go, holding a test for each of them.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/rogpeppe/tupleset/internal/tuplegen"
)

var (
	maxArity = flag.Int("max", tuplegen.DefaultMaxArity, "generate tuple types of up to this many values")
	outFile  = flag.String("o", "tuple_gen.go", "output file for the tuple types")
	testFile = flag.String("test", "tuple_gen_test.go", "output file for the tests; empty to skip")
)

func main() {
	log.SetFlags(log.Lshortfile)
	flag.Parse()

	cfg := tuplegen.Config{
		Package:    "tuple",
		ImportPath: "github.com/rogpeppe/tupleset/tuple",
		MaxArity:   *maxArity,
	}
	src, err := tuplegen.Source(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*outFile, src, 0o666); err != nil {
		log.Fatal(err)
	}
	if *testFile == "" {
		return
	}
	src, err = tuplegen.TestSource(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*testFile, src, 0o666); err != nil {
		log.Fatal(err)
	}
}
