package sorter

import (
	"fmt"
	"log"
	"os"

	"github.com/cxxxr/chainsort/lib/chain"
	"github.com/cxxxr/chainsort/lib/database"
	"github.com/cxxxr/chainsort/lib/mergesort"
)

type reducer struct {
	dstDB  *database.Database
	merged *chain.Node[int]
}

func printProgress(desc string, n, deno int) {
	fmt.Fprintf(os.Stderr, "\r%s [%d/%d]", desc, n, deno)
}

func finishProgress() {
	fmt.Fprintln(os.Stderr)
}

func (rdr *reducer) mergeChains(file string) (err error) {
	srcDB := database.New(file)
	if err := srcDB.Connect(); err != nil {
		return err
	}
	defer closeDatabase(srcDB, &err)

	records, err := srcDB.ResolveAllChains()
	if err != nil {
		return err
	}

	for _, record := range records {
		if !record.Sorted {
			log.Printf("skip unsorted chain %s in %s\n", record.Name, file)
			continue
		}
		head, err := record.Nodes()
		if err != nil {
			return err
		}
		rdr.merged = mergesort.Merge(rdr.merged, head)
	}

	return nil
}

func (rdr *reducer) mergeChainsPerDBs(inputFiles []string) error {
	for progress, file := range inputFiles {
		if err := rdr.mergeChains(file); err != nil {
			return err
		}
		printProgress("merge chain", progress+1, len(inputFiles))
	}
	finishProgress()
	return nil
}

// MergeDatabases merges every sorted chain stored in inputFiles into a single
// sorted chain saved in outputFile under name.
func MergeDatabases(inputFiles []string, outputFile, name string) (record *database.Chain, err error) {
	prefix := log.Prefix()
	log.SetPrefix("Merge: ")
	defer log.SetPrefix(prefix)

	db := database.New(outputFile)

	if err := db.InitTables(); err != nil {
		return nil, err
	}

	if err := db.Connect(); err != nil {
		return nil, err
	}
	defer closeDatabase(db, &err)

	rdr := reducer{dstDB: db}

	if err := rdr.mergeChainsPerDBs(inputFiles); err != nil {
		return nil, err
	}

	record = database.NewChain(name, "merge", rdr.merged)
	record.Sorted = true
	if err := rdr.dstDB.InsertChain(record); err != nil {
		return nil, err
	}

	return record, nil
}
