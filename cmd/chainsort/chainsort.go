package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cxxxr/chainsort/lib/chain"
	"github.com/cxxxr/chainsort/lib/mergesort"
	"github.com/cxxxr/chainsort/lib/parser"
	"github.com/cxxxr/chainsort/lib/sorter"
)

var file string
var iterative bool

func init() {
	flag.StringVar(&file, "d", "", "database file to describe")
	flag.BoolVar(&iterative, "iterative", false, "sort without recursion")

	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "usage: %s [-iterative] [--] 45 -> 1 -> 21 -> 5\n", os.Args[0])
		fmt.Fprintf(out, "       %s -d chains.sqlite3\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	if file != "" {
		if _, err := os.Stat(file); err != nil {
			log.Printf("%s not found", file)
			return
		}
		if err := sorter.Describe(file, os.Stdout); err != nil {
			log.Fatalf("%+v\n", err)
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		return
	}

	head, err := parser.Parse(strings.Join(flag.Args(), " "))
	if err != nil {
		log.Fatalf("%+v\n", err)
	}

	if iterative {
		head = mergesort.MergeSortIterative(head)
	} else {
		head = mergesort.MergeSort(head)
	}

	fmt.Println(chain.Format(head))
}
