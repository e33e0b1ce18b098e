package inventory

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrSubmissionNotFound  = errors.New("stock submission not found")
	ErrDuplicateSubmission = errors.New("a submission already exists for this staff member and date")
)
