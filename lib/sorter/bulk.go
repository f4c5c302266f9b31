package sorter

import (
	"log"

	"golang.org/x/sync/errgroup"
)

type BulkSorter struct {
	goNum  int
	sorter *Sorter
}

func NewBulkSorter(goNum int, sorter *Sorter) *BulkSorter {
	if goNum < 1 {
		goNum = 1
	}
	return &BulkSorter{goNum: goNum, sorter: sorter}
}

func (b *BulkSorter) sort(specFile, databaseFile string) error {
	if err := NewLoader().Load(specFile, databaseFile); err != nil {
		return err
	}
	n, err := b.sorter.Sort(databaseFile)
	if err != nil {
		return err
	}
	log.Printf("%s: %d chains sorted\n", databaseFile, n)
	return nil
}

// Sort loads and sorts every spec file into its own database under outputDir.
// It returns the database files in the order of specFiles.
func (b *BulkSorter) Sort(specFiles []string, outputDir string) ([]string, error) {
	databaseFiles := make([]string, len(specFiles))

	var g errgroup.Group
	g.SetLimit(b.goNum)

	for i, specFile := range specFiles {
		specFile := specFile
		databaseFile := GetDatabaseFile(specFile, outputDir)
		databaseFiles[i] = databaseFile
		g.Go(func() error {
			return b.sort(specFile, databaseFile)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return databaseFiles, nil
}
