package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/scottcagno/qpmap/pkg/hash/hashfn"
	"github.com/scottcagno/qpmap/pkg/hashmap/quadratic"
	"github.com/scottcagno/qpmap/pkg/logging"
	"github.com/scottcagno/qpmap/pkg/util"
)

type scenario func(w io.Writer, conf *quadratic.Config, dump bool) error

var scenarios = map[string]scenario{
	"put":                 runPut,
	"table_load":          runTableLoad,
	"empty_buckets":       runEmptyBuckets,
	"resize":              runResize,
	"get":                 runGet,
	"contains_key":        runContainsKey,
	"remove":              runRemove,
	"clear":               runClear,
	"get_keys_and_values": runGetKeysAndValues,
	"iterate":             runIterate,
}

func main() {

	// initialize a logger
	stdOut, stdErr := logging.NewDefaultLogger()

	name := flag.String("scenario", "all", "scenario to run, or all")
	hashName := flag.String("hash", "additive", "hash function: "+strings.Join(hashfn.Names(), ", "))
	dump := flag.Bool("dump", false, "print every bucket after each scenario")
	verbose := flag.Bool("v", false, "log table rebuilds")
	flag.Parse()

	fn, err := hashfn.ByName(*hashName)
	if err != nil {
		stdErr.Fatalln(err)
	}

	var resizeLogger *log.Logger
	if *verbose {
		resizeLogger = stdOut
	}

	names := []string{*name}
	if *name == "all" {
		names = scenarioNames()
	}
	for _, n := range names {
		run, ok := scenarios[n]
		if !ok {
			stdErr.Fatalf("unknown scenario %q, expected one of: %s\n", n, strings.Join(scenarioNames(), ", "))
		}
		fmt.Printf("\n%s\n%s\n", n, strings.Repeat("-", len(n)))
		conf := &quadratic.Config{
			HashFunc: fn,
			Logger:   resizeLogger,
		}
		done := util.TimeThis(resizeLogger, n)
		err := run(os.Stdout, conf, *dump)
		done()
		if err != nil {
			stdErr.Printf("scenario %q: %v\n", n, err)
			os.Exit(1)
		}
	}
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for n := range scenarios {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
