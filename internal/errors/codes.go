package errors

import "google.golang.org/grpc/codes"

// Code classifies an error for callers and for the gRPC status it becomes
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

var codeToGRPC = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the gRPC status code for c, Unknown when unmapped
func (c Code) GRPCCode() codes.Code {
	if gc, ok := codeToGRPC[c]; ok {
		return gc
	}
	return codes.Unknown
}

// codeFromGRPC folds a gRPC status code onto ours. Timeouts count as
// unavailable; anything unrecognised is internal.
func codeFromGRPC(gc codes.Code) Code {
	switch gc {
	case codes.OutOfRange:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeUnavailable
	}
	for c, mapped := range codeToGRPC {
		if mapped == gc {
			return c
		}
	}
	return CodeInternal
}
