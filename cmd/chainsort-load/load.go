package main

import (
	"flag"
	"log"

	"github.com/cxxxr/chainsort/lib/sorter"
)

var outputDir string
var goNum int
var iterative bool

func init() {
	const usage = "Output destination directory"
	flag.StringVar(&outputDir, "output-dir", ".", usage)
	flag.StringVar(&outputDir, "o", ".", usage)
	flag.IntVar(&goNum, "j", 4, "number of spec files sorted at once")
	flag.BoolVar(&iterative, "iterative", false, "sort without recursion")
}

func main() {
	flag.Parse()
	specFiles := flag.Args()

	if len(specFiles) == 0 {
		flag.Usage()
		return
	}

	log.Printf("outputDir: %s\n", outputDir)

	s := sorter.NewSorter()
	if iterative {
		s = sorter.NewIterativeSorter()
	}

	databaseFiles, err := sorter.NewBulkSorter(goNum, s).Sort(specFiles, outputDir)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	for _, databaseFile := range databaseFiles {
		log.Println(databaseFile)
	}
}
