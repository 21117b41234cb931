package services

import (
	"fmt"
	"io"

	"registration-module/store"

	"github.com/xuri/excelize/v2"
)

// ExportSubmissions writes all submissions as an Excel workbook to w,
// for the organizers' offline bookkeeping.
func ExportSubmissions(st store.Store, w io.Writer) error {
	subs, err := st.List()
	if err != nil {
		return fmt.Errorf("failed to list submissions: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Submissions"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Name", "Email", "Branch", "Mobile", "Hobbies", "Game", "Participating", "Transaction ID", "Submitted At", "Payment Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, sub := range subs {
		values := []interface{}{
			sub.ID, sub.Name, sub.Email, sub.Branch, sub.Mobile,
			sub.Hobbies, sub.Game, sub.Participate, sub.TxnID,
			sub.SubmittedAt.Format("2006-01-02 15:04:05"),
			sub.Status(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
