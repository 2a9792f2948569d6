package station

import "fmt"

// DomainError is the base error type for station document errors.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// InvalidAmountError indicates a module amount outside the valid range.
// Amounts are always at least 1.
type InvalidAmountError struct {
	*DomainError
	Amount int
}

func NewInvalidAmountError(amount int) *InvalidAmountError {
	return &InvalidAmountError{
		DomainError: &DomainError{Message: fmt.Sprintf("amount must be bigger than 0, got %d", amount)},
		Amount:      amount,
	}
}

// NotFoundError indicates an operation on an entity that is not part of
// its supposed parent. This is a programmer-error class: well-formed UI
// flows never trigger it.
type NotFoundError struct {
	*DomainError
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{DomainError: &DomainError{Message: message}}
}

// StationFileError is the base of the station file error family, so
// callers can catch file problems generically or by specific subtype.
type StationFileError struct {
	*DomainError
	Path string
}

func newStationFileError(path, message string) *StationFileError {
	return &StationFileError{
		DomainError: &DomainError{Message: message},
		Path:        path,
	}
}

// FileReadError indicates the station file could not be read.
type FileReadError struct {
	*StationFileError
}

func NewFileReadError(path string, cause error) *FileReadError {
	return &FileReadError{
		StationFileError: newStationFileError(path, fmt.Sprintf("failed to read station file %q: %v", path, cause)),
	}
}

// FileWriteError indicates the station file could not be written. The
// in-memory document is left unchanged.
type FileWriteError struct {
	*StationFileError
}

func NewFileWriteError(path string, cause error) *FileWriteError {
	return &FileWriteError{
		StationFileError: newStationFileError(path, fmt.Sprintf("failed to write station file %q: %v", path, cause)),
	}
}

// JSONFormatError indicates the station file is not valid JSON.
type JSONFormatError struct {
	*StationFileError
}

func NewJSONFormatError(path string, cause error) *JSONFormatError {
	return &JSONFormatError{
		StationFileError: newStationFileError(path, fmt.Sprintf("station file %q is not valid JSON: %v", path, cause)),
	}
}

// VersionTooNewError indicates the file was written by a newer record
// version than this build supports.
type VersionTooNewError struct {
	*StationFileError
	Version Version
}

func NewVersionTooNewError(path string, version Version) *VersionTooNewError {
	return &VersionTooNewError{
		StationFileError: newStationFileError(path, fmt.Sprintf(
			"station file %q has record version %s, newest supported is %s", path, version, RecordVersion)),
		Version: version,
	}
}

// StructureError indicates a syntactically valid file with a missing or
// malformed group or module entry.
type StructureError struct {
	*StationFileError
}

func NewStructureError(path, reason string) *StructureError {
	return &StructureError{
		StationFileError: newStationFileError(path, fmt.Sprintf("station file %q is malformed: %s", path, reason)),
	}
}
