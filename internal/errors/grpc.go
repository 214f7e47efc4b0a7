package errors

import (
	"fmt"
	"sort"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// errorDomain identifies errdetails.ErrorInfo produced by this service
const errorDomain = "skillcheck"

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)

	info := &errdetails.ErrorInfo{
		Reason: string(customErr.Code),
		Domain: errorDomain,
	}
	for k, v := range customErr.Meta {
		if k == metaValidationErrors {
			continue
		}
		if info.Metadata == nil {
			info.Metadata = make(map[string]string)
		}
		info.Metadata[k] = fmt.Sprint(v)
	}

	details := []protoadapt.MessageV1{info}
	if br := badRequest(ValidationFields(customErr)); br != nil {
		details = append(details, br)
	}

	withDetails, detailErr := st.WithDetails(details...)
	if detailErr != nil {
		return st.Err()
	}
	return withDetails.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			for k, v := range d.GetMetadata() {
				customErr.WithMeta(k, v)
			}
		case *errdetails.BadRequest:
			fields := make(map[string][]string)
			for _, fv := range d.GetFieldViolations() {
				fields[fv.GetField()] = append(fields[fv.GetField()], fv.GetDescription())
			}
			customErr.WithMeta(metaValidationErrors, fields)
		}
	}

	return customErr
}

func badRequest(fields map[string][]string) *errdetails.BadRequest {
	if len(fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	br := &errdetails.BadRequest{}
	for _, name := range names {
		for _, msg := range fields[name] {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       name,
				Description: msg,
			})
		}
	}
	return br
}
