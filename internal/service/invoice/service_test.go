package invoice

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/lengolf/lengolf-backend-go/internal/domain/invoice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvoiceRepo struct {
	suppliers map[string]invoice.Supplier
	settings  map[string]string
}

func (f *fakeInvoiceRepo) CreateSupplier(ctx context.Context, s invoice.Supplier) (invoice.Supplier, error) {
	f.suppliers[s.ID] = s
	return s, nil
}

func (f *fakeInvoiceRepo) GetSupplierByID(ctx context.Context, id string) (invoice.Supplier, error) {
	s, ok := f.suppliers[id]
	if !ok {
		return invoice.Supplier{}, invoice.ErrSupplierNotFound
	}
	return s, nil
}

func (f *fakeInvoiceRepo) ListSuppliers(ctx context.Context) ([]invoice.Supplier, error) {
	out := make([]invoice.Supplier, 0, len(f.suppliers))
	for _, s := range f.suppliers {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeInvoiceRepo) GetSettings(ctx context.Context) (map[string]string, error) {
	return f.settings, nil
}

func (f *fakeInvoiceRepo) UpsertSettings(ctx context.Context, settings map[string]string) error {
	for k, v := range settings {
		f.settings[k] = v
	}
	return nil
}

type fakeStorage struct {
	files map[string][]byte
}

func (f *fakeStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.files[path] = data
	return path, nil
}

func (f *fakeStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.files[path])), nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(f.files, path)
	return nil
}

func (f *fakeStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "/files/" + path, nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := f.files[path]
	return ok, nil
}

func (f *fakeStorage) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	for path := range f.files {
		names = append(names, path)
	}
	return names, nil
}

func newInvoiceTestService() (invoice.InvoiceService, *fakeInvoiceRepo, *fakeStorage) {
	repo := &fakeInvoiceRepo{
		suppliers: map[string]invoice.Supplier{
			"sup-1": {ID: "sup-1", Name: "Golf Gear Co., Ltd."},
		},
		settings: map[string]string{
			invoice.SettingCompanyName:    "LENGOLF Co., Ltd.",
			invoice.SettingDefaultWHTRate: "3",
		},
	}
	files := &fakeStorage{files: map[string][]byte{}}
	return NewInvoiceService(nil, repo, files), repo, files
}

func TestGenerate_WithholdingTaxMath(t *testing.T) {
	svc, _, files := newInvoiceTestService()

	resp, err := svc.Generate(context.Background(), invoice.GenerateInvoiceRequest{
		SupplierID:    "sup-1",
		InvoiceNumber: "INV-2025-001",
		InvoiceDate:   "2025-06-15",
		WHTRate:       decimal.NewFromInt(3),
		Items: []invoice.InvoiceLineItemRequest{
			{Description: "Range balls", Amount: decimal.NewFromInt(10000)},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(10000)))
	assert.True(t, resp.WHTAmount.Equal(decimal.NewFromInt(300)), "got %s", resp.WHTAmount)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(9700)), "got %s", resp.Total)
	assert.Equal(t, "Golf_Gear_Co._Ltd._INV-2025-001.pdf", resp.FileName)

	// The rendered PDF was uploaded under the invoices prefix.
	data, ok := files.files["invoices/"+resp.FileName]
	require.True(t, ok)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestGenerate_SkipsBlankRows(t *testing.T) {
	svc, _, _ := newInvoiceTestService()

	resp, err := svc.Generate(context.Background(), invoice.GenerateInvoiceRequest{
		SupplierID:    "sup-1",
		InvoiceNumber: "INV-2025-002",
		InvoiceDate:   "2025-06-15",
		WHTRate:       decimal.Zero,
		Items: []invoice.InvoiceLineItemRequest{
			{Description: "Club repair", Amount: decimal.NewFromInt(1500)},
			{Description: "", Amount: decimal.NewFromInt(999)},
			{Description: "Empty amount", Amount: decimal.Zero},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(1500)))
	assert.True(t, resp.WHTAmount.IsZero())
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(1500)))
}

func TestGenerate_NoLineItems(t *testing.T) {
	svc, _, _ := newInvoiceTestService()

	_, err := svc.Generate(context.Background(), invoice.GenerateInvoiceRequest{
		SupplierID:    "sup-1",
		InvoiceNumber: "INV-2025-003",
		InvoiceDate:   "2025-06-15",
		WHTRate:       decimal.Zero,
		Items:         []invoice.InvoiceLineItemRequest{},
	})
	assert.Error(t, err)
}

func TestUpdateSettings_RejectsNonNumericWHTRate(t *testing.T) {
	svc, _, _ := newInvoiceTestService()

	_, err := svc.UpdateSettings(context.Background(), invoice.UpdateSettingsRequest{
		invoice.SettingDefaultWHTRate: "three percent",
	})
	assert.Error(t, err)

	resp, err := svc.UpdateSettings(context.Background(), invoice.UpdateSettingsRequest{
		invoice.SettingDefaultWHTRate: "5",
	})
	require.NoError(t, err)
	assert.Equal(t, "5", resp[invoice.SettingDefaultWHTRate])
}

func TestInvoiceFileName_Sanitized(t *testing.T) {
	assert.Equal(t, "Golf_Gear_Co._Ltd._INV-001.pdf", invoiceFileName("Golf Gear Co., Ltd.", "INV-001"))
	assert.Equal(t, "A_B_1_2.pdf", invoiceFileName("A/B", "1 2"))
}
