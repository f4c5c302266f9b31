package sorter

import (
	"log"

	"github.com/cxxxr/chainsort/lib/chain"
	"github.com/cxxxr/chainsort/lib/codec"
	"github.com/cxxxr/chainsort/lib/database"
	"github.com/cxxxr/chainsort/lib/mergesort"
	"github.com/pkg/errors"
)

type Sorter struct {
	sort func(*chain.Node[int]) *chain.Node[int]
}

func NewSorter() *Sorter {
	return &Sorter{sort: mergesort.MergeSort[int]}
}

func NewIterativeSorter() *Sorter {
	return &Sorter{sort: mergesort.MergeSortIterative[int]}
}

func (s *Sorter) sortChain(record *database.Chain) error {
	head, err := record.Nodes()
	if err != nil {
		return errors.Wrapf(err, "chain: %s", record.Name)
	}

	head = s.sort(head)
	if err := chain.CheckSorted(head); err != nil {
		return errors.Wrapf(err, "chain: %s", record.Name)
	}

	record.Body = codec.Encode(head)
	record.Length = chain.Len(head)
	record.Sorted = true

	return nil
}

// Sort sorts every unsorted chain in databaseFile and returns how many were
// written back.
func (s *Sorter) Sort(databaseFile string) (n int, err error) {
	prefix := log.Prefix()
	log.SetPrefix("Sort: ")
	defer log.SetPrefix(prefix)

	db := database.New(databaseFile)
	if err := db.Connect(); err != nil {
		return 0, err
	}
	defer closeDatabase(db, &err)

	records, err := db.ResolveUnsortedChains()
	if err != nil {
		return 0, err
	}

	for _, record := range records {
		log.Printf("%s (%d)\n", record.Name, record.Length)
		if err := s.sortChain(record); err != nil {
			return n, err
		}
		if err := db.UpdateChainBody(record); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}
