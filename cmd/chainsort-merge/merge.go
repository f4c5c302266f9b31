package main

import (
	"flag"
	"log"

	"github.com/cxxxr/chainsort/lib/sorter"
)

var outputFile string
var name string

func init() {
	const usage = "Output database file"
	const value = "chainsort.sqlite3"
	flag.StringVar(&outputFile, "output", value, usage)
	flag.StringVar(&outputFile, "o", value, usage)
	flag.StringVar(&name, "n", "merged", "name of the merged chain")
}

func main() {
	flag.Parse()
	args := flag.Args()

	record, err := sorter.MergeDatabases(args, outputFile, name)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	log.Printf("%s: %d values\n", record.Name, record.Length)
}
