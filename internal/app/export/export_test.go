package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"cinevoice/internal/app/model"
)

func TestToExcel(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "exchanges.xlsx")

	exchanges := []model.Exchange{
		{
			ID:         1,
			CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			UploadPath: "media/uploads/a.mp3",
			Transcript: "recommend a western",
			ReplyText:  "Unforgiven is a great pick.",
			Provider:   "gemini",
			LatencyMs:  850,
		},
	}

	require.NoError(t, ToExcel(exchanges, outputPath))

	file, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Exchanges", sheet.Name)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "recommend a western", sheet.Rows[1].Cells[4].Value)
	assert.Equal(t, "850", sheet.Rows[1].Cells[7].Value)
}

func TestToExcelEmptyHistory(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, ToExcel(nil, outputPath))

	file, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, file.Sheets[0].Rows, 1)
}
