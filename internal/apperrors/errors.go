package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrState indicates that an operation is not allowed in the resource's
// current lifecycle state, e.g. mutating a posted journal entry or
// recognizing an already-recognized revenue record.
var ErrState = errors.New("invalid state for operation")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the acting user is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")
