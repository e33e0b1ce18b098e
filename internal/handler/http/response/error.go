package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/lengolf/lengolf-backend-go/internal/domain/auth"
	"github.com/lengolf/lengolf-backend-go/internal/domain/booking"
	"github.com/lengolf/lengolf-backend-go/internal/domain/inventory"
	"github.com/lengolf/lengolf-backend-go/internal/domain/invoice"
	"github.com/lengolf/lengolf-backend-go/internal/domain/payroll"
	"github.com/lengolf/lengolf-backend-go/internal/domain/pos"
	"github.com/lengolf/lengolf-backend-go/internal/domain/staff"
	"github.com/lengolf/lengolf-backend-go/internal/domain/timesheet"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Payroll calculation aborts carry the offending staff member so the
	// admin UI can link straight to their settings.
	var missingComp *payroll.MissingCompensationError
	if errors.As(err, &missingComp) {
		BadRequestWithCode(w, "MISSING_COMPENSATION_SETTINGS", missingComp.Error(), map[string]string{
			"staff_id":   missingComp.StaffID,
			"staff_name": missingComp.StaffName,
		})
		return
	}

	var amountMismatch *pos.AmountMismatchError
	if errors.As(err, &amountMismatch) {
		BadRequestWithCode(w, "AMOUNT_MISMATCH", amountMismatch.Error(), map[string]string{
			"delta": amountMismatch.Delta.StringFixed(2),
		})
		return
	}

	var itemAssignment *pos.ItemAssignmentError
	if errors.As(err, &itemAssignment) {
		details := map[string]string{}
		if len(itemAssignment.UnassignedIDs) > 0 {
			details["unassigned"] = strings.Join(itemAssignment.UnassignedIDs, ",")
		}
		if len(itemAssignment.DuplicateIDs) > 0 {
			details["duplicate"] = strings.Join(itemAssignment.DuplicateIDs, ",")
		}
		if len(itemAssignment.UnknownIDs) > 0 {
			details["unknown"] = strings.Join(itemAssignment.UnknownIDs, ",")
		}
		BadRequestWithCode(w, "ITEM_ASSIGNMENT_ERROR", itemAssignment.Error(), details)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidPIN):
		Unauthorized(w, "Invalid PIN")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrStaffInactive):
		Forbidden(w, "Staff member is inactive")
	case errors.Is(err, staff.ErrNameExists):
		Conflict(w, "A staff member with this name already exists")
	case errors.Is(err, staff.ErrPINAlreadyInUse):
		Conflict(w, "PIN already in use")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timesheet.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in")
	case errors.Is(err, timesheet.ErrNotClockedIn):
		Conflict(w, "No open time entry to clock out")
	case errors.Is(err, timesheet.ErrClockOutBeforeIn):
		BadRequest(w, "Clock-out must be after clock-in", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrCompensationNotFound):
		NotFound(w, "Compensation setting not found")
	case errors.Is(err, payroll.ErrHolidayNotFound):
		NotFound(w, "Public holiday not found")
	case errors.Is(err, payroll.ErrHolidayDateExists):
		Conflict(w, "A public holiday already exists on this date")
	case errors.Is(err, payroll.ErrServiceChargeNotFound):
		NotFound(w, "No service charge entered for this month")
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be YYYY-MM", nil)

	// POS domain errors
	case errors.Is(err, pos.ErrOrderNotFound):
		NotFound(w, "Order not found")
	case errors.Is(err, pos.ErrOrderItemNotFound):
		NotFound(w, "Order item not found")
	case errors.Is(err, pos.ErrOrderAlreadyPaid):
		Conflict(w, "Order is already paid")
	case errors.Is(err, pos.ErrSplitNotFound):
		NotFound(w, "Bill split not found")
	case errors.Is(err, pos.ErrSplitTerminal):
		Conflict(w, "Bill split is already committed or cancelled")
	case errors.Is(err, pos.ErrSplitNotAllocated):
		BadRequest(w, "Every split line needs a payment method before processing", nil)
	case errors.Is(err, pos.ErrInvalidSplitType):
		BadRequest(w, "Split type must be even, by_item or by_amount", nil)
	case errors.Is(err, pos.ErrInvalidPeopleCount):
		BadRequest(w, "Even split supports 2 to 10 people", nil)

	// Booking domain errors
	case errors.Is(err, booking.ErrBookingNotFound):
		NotFound(w, "Booking not found")
	case errors.Is(err, booking.ErrBayNotFound):
		NotFound(w, "Bay not found")
	case errors.Is(err, booking.ErrSlotNotAvailable):
		Conflict(w, "The requested slot is not available on this bay")
	case errors.Is(err, booking.ErrAlreadyCancelled):
		Conflict(w, "Booking is already cancelled")

	// Inventory domain errors
	case errors.Is(err, inventory.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, inventory.ErrSubmissionNotFound):
		NotFound(w, "Stock submission not found")
	case errors.Is(err, inventory.ErrDuplicateSubmission):
		Conflict(w, "A submission already exists for this staff member and date")

	// Invoice domain errors
	case errors.Is(err, invoice.ErrSupplierNotFound):
		NotFound(w, "Supplier not found")
	case errors.Is(err, invoice.ErrSupplierTaxIDExists):
		Conflict(w, "A supplier with this tax ID already exists")
	case errors.Is(err, invoice.ErrNoLineItems):
		BadRequest(w, "An invoice needs at least one line item", nil)
	case errors.Is(err, invoice.ErrInvoiceFileNotFound):
		NotFound(w, "Invoice file not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
