package services

import (
	"fmt"
	"os"
	"path/filepath"

	"registration-module/models"

	"github.com/jung-kurt/gofpdf"
)

// GenerateReceipt creates a PDF payment receipt for a successfully
// reconciled submission and returns the file path.
func GenerateReceipt(sub *models.Submission) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Payment Receipt")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 10, fmt.Sprintf("Name: %s", sub.Name))
	pdf.Ln(12)
	pdf.Cell(40, 10, fmt.Sprintf("Email: %s", sub.Email))
	pdf.Ln(12)
	pdf.Cell(40, 10, fmt.Sprintf("Transaction ID: %s", sub.TxnID))
	pdf.Ln(12)
	pdf.Cell(40, 10, fmt.Sprintf("Status: %s", sub.Status()))
	pdf.Ln(12)
	pdf.Cell(40, 10, fmt.Sprintf("Submitted: %s", sub.SubmittedAt.Format("02 Jan 2006 15:04")))
	pdf.Ln(12)
	pdf.Cell(40, 10, "Thank you for registering!")

	fileName := filepath.Join(os.TempDir(), fmt.Sprintf("receipt_%s.pdf", sub.TxnID))
	if err := pdf.OutputFileAndClose(fileName); err != nil {
		return "", fmt.Errorf("error generating receipt PDF: %w", err)
	}

	return fileName, nil
}
