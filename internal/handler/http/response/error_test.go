package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lengolf/lengolf-backend-go/internal/domain/auth"
	"github.com/lengolf/lengolf-backend-go/internal/domain/payroll"
	"github.com/lengolf/lengolf-backend-go/internal/domain/pos"
	"github.com/lengolf/lengolf-backend-go/internal/domain/staff"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid pin", auth.ErrInvalidPIN, http.StatusUnauthorized},
		{"staff not found", staff.ErrStaffNotFound, http.StatusNotFound},
		{"name conflict", staff.ErrNameExists, http.StatusConflict},
		{"split not allocated", pos.ErrSplitNotAllocated, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.code, rec.Code)
			resp := decodeEnvelope(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "date", Message: "must be YYYY-MM-DD"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestHandleError_MissingCompensation(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, &payroll.MissingCompensationError{StaffID: "s1", StaffName: "Alice"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "MISSING_COMPENSATION_SETTINGS", resp.Error.Code)
	assert.Equal(t, "Alice", resp.Error.Details["staff_name"])
}

func TestHandleError_AmountMismatch(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, &pos.AmountMismatchError{Delta: decimal.RequireFromString("-12.50")})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "AMOUNT_MISMATCH", resp.Error.Code)
	assert.Equal(t, "-12.50", resp.Error.Details["delta"])
}

func TestHandleError_ItemAssignment(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, &pos.ItemAssignmentError{
		UnassignedIDs: []string{"i1", "i2"},
		DuplicateIDs:  []string{"i3"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ITEM_ASSIGNMENT_ERROR", resp.Error.Code)
	assert.Equal(t, "i1,i2", resp.Error.Details["unassigned"])
	assert.Equal(t, "i3", resp.Error.Details["duplicate"])
	assert.NotContains(t, resp.Error.Details, "unknown")
}
