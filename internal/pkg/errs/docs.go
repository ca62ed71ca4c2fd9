// Package errs provides the error types shared by the ordering service.
//
// Every typed error unwraps to a sentinel so callers can classify failures with
// errors.Is without caring about the concrete type:
//   - ValueIsRequiredError   -> ErrValueIsRequired
//   - ValueIsInvalidError    -> ErrValueIsInvalid
//   - ValueIsOutOfRangeError -> ErrValueIsOutOfRange
//   - ObjectNotFoundError    -> ErrObjectNotFound
//
// The first three are validation failures raised while constructing domain
// objects; IsValidationError groups them. ObjectNotFoundError is raised by
// repositories and queries.
package errs
