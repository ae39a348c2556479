package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a referenced point, border or country does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a duplicate border or country.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates a malformed call: empty name, equal or
	// unordered endpoint pair, empty file name.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGeometryConflict indicates a segment would cross existing geometry
	// or pass within the guard radius of an existing point.
	ErrGeometryConflict = errors.New("geometry conflict")

	// ErrInUse indicates a deletion blocked by a referencing entity.
	ErrInUse = errors.New("in use")

	// ErrPreconditionFailed indicates a document lifecycle guard tripped,
	// such as unsaved changes or an existing file that may not be overwritten.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrCorruptData indicates a persisted document could not be decoded
	// or is internally inconsistent.
	ErrCorruptData = errors.New("corrupt data")

	// ErrUnsupportedType indicates an unknown document, export or image format.
	ErrUnsupportedType = errors.New("unsupported type")
)

// kinds lists the taxonomy in match order.
var kinds = []struct {
	err  error
	name string
}{
	{ErrInvalidInput, "InvalidArgument"},
	{ErrNotFound, "NotFound"},
	{ErrAlreadyExists, "AlreadyExists"},
	{ErrGeometryConflict, "GeometryConflict"},
	{ErrInUse, "InUse"},
	{ErrPreconditionFailed, "PreconditionFailed"},
	{ErrCorruptData, "CorruptData"},
	{ErrUnsupportedType, "UnsupportedType"},
}

// Kind returns the taxonomy name of err, or "Internal" when err wraps none of
// the domain errors. Kind(nil) is "".
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Internal"
}
