package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() Document {
	return Document{
		Title:   "Enrolled Subjects",
		Lines:   []string{"Period: 1st Sem", "Total Units: 6"},
		Headers: []string{"Code", "Title", "Units"},
		Rows: [][]string{
			{"CS101", "Intro", "3"},
			{"CS102", "Data", "3"},
		},
	}
}

func TestCSV(t *testing.T) {
	t.Run("context lines then headers then rows", func(t *testing.T) {
		data, err := CSV(sampleDoc())
		require.NoError(t, err)

		reader := csv.NewReader(bytes.NewReader(data))
		reader.FieldsPerRecord = -1
		records, err := reader.ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 5)
		assert.Equal(t, []string{"Period: 1st Sem"}, records[0])
		assert.Equal(t, []string{"Code", "Title", "Units"}, records[2])
		assert.Equal(t, []string{"CS102", "Data", "3"}, records[4])
	})

	t.Run("short rows are padded to the header width", func(t *testing.T) {
		doc := sampleDoc()
		doc.Rows = [][]string{{"CS101"}}
		data, err := CSV(doc)
		require.NoError(t, err)

		reader := csv.NewReader(bytes.NewReader(data))
		reader.FieldsPerRecord = -1
		records, err := reader.ReadAll()
		require.NoError(t, err)
		assert.Equal(t, []string{"CS101", "", ""}, records[len(records)-1])
	})

	t.Run("headers are required", func(t *testing.T) {
		_, err := CSV(Document{})
		assert.Error(t, err)
	})
}

func TestPDF(t *testing.T) {
	t.Run("renders a pdf document", func(t *testing.T) {
		data, err := PDF(sampleDoc())
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run("headers are required", func(t *testing.T) {
		_, err := PDF(Document{})
		assert.Error(t, err)
	})
}
