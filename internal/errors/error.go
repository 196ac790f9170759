package errors

import "errors"

var (
	ErrRecordNotFound   = errors.New("record with provided id was not found")
	ErrStoreFailed      = errors.New("failed to store record")
	ErrNoSelectedRecord = errors.New("no record is selected for this session")
	ErrInternal         = errors.New("internal error")
)
