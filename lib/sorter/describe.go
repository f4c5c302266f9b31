package sorter

import (
	"fmt"
	"io"

	"github.com/cxxxr/chainsort/lib/chain"
	"github.com/cxxxr/chainsort/lib/database"
)

func status(record *database.Chain) string {
	if record.Sorted {
		return "sorted"
	}
	return "unsorted"
}

// Describe writes one line per chain stored in databaseFile.
func Describe(databaseFile string, writer io.Writer) (err error) {
	db := database.New(databaseFile)
	if err := db.Connect(); err != nil {
		return err
	}
	defer closeDatabase(db, &err)

	records, err := db.ResolveAllChains()
	if err != nil {
		return err
	}

	for _, record := range records {
		head, err := record.Nodes()
		if err != nil {
			return err
		}
		fmt.Fprintf(writer, "%s [%s, %s]: %s\n", record.Name, record.Source, status(record), chain.Format(head))
	}

	return nil
}
