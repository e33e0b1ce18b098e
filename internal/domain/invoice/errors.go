package invoice

import "errors"

var (
	ErrSupplierNotFound    = errors.New("supplier not found")
	ErrSupplierTaxIDExists = errors.New("a supplier with this tax ID already exists")
	ErrNoLineItems         = errors.New("an invoice needs at least one line item")
	ErrInvoiceFileNotFound = errors.New("invoice file not found")
)
