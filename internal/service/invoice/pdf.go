package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/lengolf/lengolf-backend-go/internal/domain/invoice"
)

// renderPDF lays out the invoice on a single A4 page: issuer block, supplier
// block, line item table, then subtotal / withholding / total.
func renderPDF(inv invoice.Invoice, supplier invoice.Supplier, settings map[string]string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	if name := settings[invoice.SettingCompanyName]; name != "" {
		pdf.Cell(0, 5, name)
		pdf.Ln(5)
	}
	if line := settings[invoice.SettingAddressLine1]; line != "" {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	if line := settings[invoice.SettingAddressLine2]; line != "" {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	if taxID := settings[invoice.SettingCompanyTaxID]; taxID != "" {
		pdf.Cell(0, 5, fmt.Sprintf("Tax ID: %s", taxID))
		pdf.Ln(5)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 5, "Bill To:")
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, supplier.Name)
	pdf.Ln(5)
	if supplier.AddressLine1 != nil && *supplier.AddressLine1 != "" {
		pdf.Cell(0, 5, *supplier.AddressLine1)
		pdf.Ln(5)
	}
	if supplier.AddressLine2 != nil && *supplier.AddressLine2 != "" {
		pdf.Cell(0, 5, *supplier.AddressLine2)
		pdf.Ln(5)
	}
	if supplier.TaxID != nil && *supplier.TaxID != "" {
		pdf.Cell(0, 5, fmt.Sprintf("Tax ID: %s", *supplier.TaxID))
		pdf.Ln(5)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Invoice No: %s", inv.Number))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Date: %s", inv.Date.Format("2006-01-02")))
	pdf.Ln(10)

	// Line item table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(140, 8, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 0, "R", false, 0, "")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(140, 8, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, item.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(8)
	}
	pdf.Ln(4)

	pdf.CellFormat(140, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, inv.Subtotal.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(7)
	pdf.CellFormat(140, 7, fmt.Sprintf("Withholding Tax (%s%%)", inv.WHTRate.String()), "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, inv.WHTAmount.Neg().StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(140, 7, "Total Payable", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, inv.Total.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(12)

	if bank := settings[invoice.SettingBankName]; bank != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.Cell(0, 5, fmt.Sprintf("Bank: %s", bank))
		pdf.Ln(5)
		if account := settings[invoice.SettingBankAccountNo]; account != "" {
			pdf.Cell(0, 5, fmt.Sprintf("Account No: %s", account))
			pdf.Ln(5)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
