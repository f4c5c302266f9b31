package sorter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cxxxr/chainsort/lib/chain"
	"github.com/cxxxr/chainsort/lib/database"
	"github.com/cxxxr/chainsort/lib/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveValues(t *testing.T, databaseFile string) map[string][]int {
	db := database.New(databaseFile)
	require.Nil(t, db.Connect())
	defer db.Close()

	records, err := db.ResolveAllChains()
	require.Nil(t, err)

	values := make(map[string][]int, len(records))
	for _, record := range records {
		head, err := record.Nodes()
		require.Nil(t, err)
		values[record.Name] = chain.Values(head)
	}
	return values
}

func loadAndSort(t *testing.T, sorter *Sorter, specFile string) string {
	databaseFile := testutil.CreateTestingDatabaseFile(t)
	require.Nil(t, NewLoader().Load(specFile, databaseFile))

	n, err := sorter.Sort(databaseFile)
	require.Nil(t, err)
	require.Equal(t, 4, n)
	return databaseFile
}

func Test_Load(t *testing.T) {
	databaseFile := testutil.CreateTestingDatabaseFile(t)
	require.Nil(t, NewLoader().Load("../testdata/basic.json", databaseFile))

	values := resolveValues(t, databaseFile)
	assert.Equal(t, []int{45, 1, 21, 5}, values["example"])
	assert.Equal(t, []int{}, values["empty"])

	err := NewLoader().Load("../testdata/missing.json", testutil.CreateTestingDatabaseFile(t))
	require.Error(t, err)
}

func Test_Sort(t *testing.T) {
	for _, sorter := range []*Sorter{NewSorter(), NewIterativeSorter()} {
		databaseFile := loadAndSort(t, sorter, "../testdata/basic.json")

		values := resolveValues(t, databaseFile)
		assert.Equal(t, []int{1, 5, 21, 45}, values["example"])
		assert.Equal(t, []int{1, 2, 3}, values["odd"])
		assert.Equal(t, []int{1, 2, 2}, values["duplicates"])
		assert.Equal(t, []int{}, values["empty"])

		// everything is sorted already
		n, err := sorter.Sort(databaseFile)
		require.Nil(t, err)
		assert.Equal(t, 0, n)
	}
}

func Test_Describe(t *testing.T) {
	databaseFile := loadAndSort(t, NewSorter(), "../testdata/basic.json")

	writer := bytes.NewBuffer(nil)
	require.Nil(t, Describe(databaseFile, writer))

	testutil.Snapshot(t, writer.Bytes(), "testdata/describe.snapshot")
}

func Test_BulkSort(t *testing.T) {
	outputDir := t.TempDir()
	specFiles := []string{"../testdata/basic.json", "../testdata/extra.json"}

	databaseFiles, err := NewBulkSorter(2, NewSorter()).Sort(specFiles, outputDir)
	require.Nil(t, err)
	require.Equal(t, []string{
		filepath.Join(outputDir, "basic.sqlite3"),
		filepath.Join(outputDir, "extra.sqlite3"),
	}, databaseFiles)

	values := resolveValues(t, databaseFiles[1])
	assert.Equal(t, []int{-10, -10, -1, 0, 4}, values["negatives"])
	assert.Equal(t, []int{42}, values["single"])

	_, err = NewBulkSorter(2, NewSorter()).Sort([]string{"../testdata/missing.json"}, outputDir)
	require.Error(t, err)
}

func Test_MergeDatabases(t *testing.T) {
	outputDir := t.TempDir()
	databaseFiles, err := NewBulkSorter(1, NewSorter()).Sort(
		[]string{"../testdata/basic.json", "../testdata/extra.json"},
		outputDir,
	)
	require.Nil(t, err)

	outputFile := filepath.Join(outputDir, "merged.sqlite3")
	record, err := MergeDatabases(databaseFiles, outputFile, "all")
	require.Nil(t, err)
	assert.Equal(t, 16, record.Length)
	assert.True(t, record.Sorted)

	values := resolveValues(t, outputFile)
	assert.Equal(t,
		[]int{-10, -10, -1, 0, 1, 1, 1, 2, 2, 2, 3, 4, 5, 21, 42, 45},
		values["all"],
	)
}

func Test_MergeDatabasesSkipsUnsorted(t *testing.T) {
	databaseFile := testutil.CreateTestingDatabaseFile(t)
	require.Nil(t, NewLoader().Load("../testdata/basic.json", databaseFile))

	outputFile := filepath.Join(t.TempDir(), "merged.sqlite3")
	record, err := MergeDatabases([]string{databaseFile}, outputFile, "all")
	require.Nil(t, err)
	assert.Equal(t, 0, record.Length)

	_, err = os.Stat(outputFile)
	require.Nil(t, err)
}
