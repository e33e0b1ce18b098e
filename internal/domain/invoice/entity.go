package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier - a vendor the venue issues withholding-tax invoices to.
type Supplier struct {
	ID                 string
	Name               string
	AddressLine1       *string
	AddressLine2       *string
	TaxID              *string
	DefaultDescription *string
	DefaultUnitPrice   *decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// LineItem - one invoice line.
type LineItem struct {
	Description string
	Amount      decimal.Decimal
}

// Invoice - a generated supplier invoice. Amounts are derived once at
// generation time: WHT is withheld from the subtotal.
type Invoice struct {
	Number     string
	SupplierID string
	Date       time.Time
	Items      []LineItem
	WHTRate    decimal.Decimal // percent
	Subtotal   decimal.Decimal
	WHTAmount  decimal.Decimal
	Total      decimal.Decimal
	PDFPath    string
}

// Well-known settings keys
const (
	SettingCompanyName    = "company_name"
	SettingAddressLine1   = "company_address_line1"
	SettingAddressLine2   = "company_address_line2"
	SettingCompanyTaxID   = "company_tax_id"
	SettingDefaultWHTRate = "default_wht_rate"
	SettingBankName       = "bank_name"
	SettingBankAccountNo  = "bank_account_number"
)
