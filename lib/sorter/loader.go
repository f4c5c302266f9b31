package sorter

import (
	"log"
	"path/filepath"

	"github.com/cxxxr/chainsort/lib/chain"
	"github.com/cxxxr/chainsort/lib/database"
	"github.com/cxxxr/chainsort/lib/spec"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Load stores every chain of specFile in databaseFile, unsorted.
func (l *Loader) Load(specFile, databaseFile string) (err error) {
	prefix := log.Prefix()
	log.SetPrefix("Load: ")
	defer log.SetPrefix(prefix)

	s, err := spec.Read(specFile)
	if err != nil {
		return err
	}

	source := s.Name
	if source == "" {
		source = trimExt(filepath.Base(specFile))
	}

	db := database.New(databaseFile)

	if err := db.InitTables(); err != nil {
		return err
	}

	if err := db.Connect(); err != nil {
		return err
	}
	defer closeDatabase(db, &err)

	for _, c := range s.Chains {
		log.Println(c.Name)
		record := database.NewChain(c.Name, source, chain.FromSlice(c.Values))
		if err := db.InsertChain(record); err != nil {
			return err
		}
	}

	return nil
}
