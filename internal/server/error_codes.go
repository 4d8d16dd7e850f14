package server

import "strings"

const (
	// Validation (1xxx)
	ErrCodeInvalidArgument    = 1000
	ErrCodeInvalidJSON        = 1001
	ErrCodeRequestTooLarge    = 1002
	ErrCodeInvalidQuery       = 1003
	ErrCodeInvalidIndex       = 1004
	ErrCodeInvalidBoardName   = 1005
	ErrCodeInvalidTitle       = 1006
	ErrCodeInvalidDescription = 1007
	ErrCodeInvalidLabel       = 1008
	ErrCodeInvalidAssignee    = 1009
	ErrCodeInvalidTheme       = 1010
	ErrCodeInvalidImport      = 1011
	ErrCodeMissingRequired    = 1012

	// Domain state (2xxx)
	ErrCodeBoardNotFound  = 2001
	ErrCodeItemNotFound   = 2002
	ErrCodeColumnNotFound = 2003

	// Limits (3xxx)
	ErrCodeResourceExhausted = 3003

	// Internal/system (4xxx)
	ErrCodeInternal          = 4001
	ErrCodeStoreFailure      = 4002
	ErrCodeExportFailed      = 4003
	ErrCodeImportFailed      = 4004
	ErrCodeNotImplemented    = 4005
	ErrCodePersistenceFailed = 4006
)

func defaultErrorCodeByStatus(status int) int {
	switch status {
	case 400:
		return ErrCodeInvalidArgument
	case 404:
		return ErrCodeBoardNotFound
	case 429:
		return ErrCodeResourceExhausted
	case 500:
		return ErrCodeInternal
	case 501:
		return ErrCodeNotImplemented
	default:
		return 0
	}
}

func validationErrorCode(field string) int {
	switch field {
	case "name":
		return ErrCodeInvalidBoardName
	case "title":
		return ErrCodeInvalidTitle
	case "description":
		return ErrCodeInvalidDescription
	case "label":
		return ErrCodeInvalidLabel
	case "assignee":
		return ErrCodeInvalidAssignee
	case "theme":
		return ErrCodeInvalidTheme
	case "boards", "items":
		return ErrCodeInvalidImport
	default:
		if strings.HasPrefix(field, "boards[") {
			return ErrCodeInvalidImport
		}
		return ErrCodeInvalidArgument
	}
}

func notFoundErrorCode(kind string) int {
	switch kind {
	case "item":
		return ErrCodeItemNotFound
	case "column":
		return ErrCodeColumnNotFound
	default:
		return ErrCodeBoardNotFound
	}
}
