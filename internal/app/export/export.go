package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"cinevoice/internal/app/model"
)

// ToExcel writes exchange history to an xlsx file
func ToExcel(exchanges []model.Exchange, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Exchanges")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Created At"
	headerRow.AddCell().Value = "Upload"
	headerRow.AddCell().Value = "Response"
	headerRow.AddCell().Value = "Transcript"
	headerRow.AddCell().Value = "Reply"
	headerRow.AddCell().Value = "Provider"
	headerRow.AddCell().Value = "Latency (ms)"
	headerRow.AddCell().Value = "Error"

	for _, e := range exchanges {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(e.ID)
		row.AddCell().Value = e.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = e.UploadPath
		row.AddCell().Value = e.ResponsePath
		row.AddCell().Value = e.Transcript
		row.AddCell().Value = e.ReplyText
		row.AddCell().Value = e.Provider
		row.AddCell().Value = fmt.Sprint(e.LatencyMs)
		row.AddCell().Value = e.ErrorMessage
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
