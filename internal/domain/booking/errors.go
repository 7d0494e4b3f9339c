package booking

import "github.com/BruksfildServices01/table-booking/internal/httperr"

const (
	CodeMissingUserIDs     = "missing_user_ids"
	CodeMissingDatetime    = "missing_datetime"
	CodeInvalidUserIDs     = "invalid_user_ids"
	CodeInvalidDatetime    = "invalid_datetime"
	CodeMissingFields      = "missing_fields"
	CodeInvalidGuests      = "invalid_additional_guests"
	CodeUsersNotFound      = "users_not_found"
	CodeNoSuitableTable    = "no_suitable_table"
	CodeNoAvailableTable   = "no_available_table"
	CodeReservationMissing = "reservation_not_found"
)

var (
	ErrMissingUserIDs     = httperr.Validation(CodeMissingUserIDs, "Missing required field: user_ids")
	ErrMissingDatetime    = httperr.Validation(CodeMissingDatetime, "Missing required field: datetime")
	ErrInvalidUserIDs     = httperr.Validation(CodeInvalidUserIDs, "Invalid user_ids format. Expected comma-separated numbers")
	ErrInvalidDatetime    = httperr.Validation(CodeInvalidDatetime, "Invalid datetime format")
	ErrMissingFields      = httperr.Validation(CodeMissingFields, "Missing required fields")
	ErrInvalidGuests      = httperr.Validation(CodeInvalidGuests, "Additional guests must be non-negative")
	ErrUsersNotFound      = httperr.NotFound(CodeUsersNotFound, "One or more users not found")
	ErrNoSuitableTable    = httperr.NotFound(CodeNoSuitableTable, "No suitable table found")
	ErrNoAvailableTable   = httperr.NotFound(CodeNoAvailableTable, "No available table found")
	ErrReservationMissing = httperr.NotFound(CodeReservationMissing, "Reservation not found")
)
