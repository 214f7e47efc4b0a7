// Package errors provides coded errors for the skill roller.
//
// Every layer returns *Error values so handlers can map them onto transport
// status codes without string matching:
//
//	err := errors.InvalidArgumentf("stat value %d out of range", v)
//	err := errors.FailedPrecondition("no attribute selected").
//	    WithMeta("state", flow.State)
//
// Wrapping keeps the original code:
//
//	if err := repo.Get(ctx, in); err != nil {
//	    return errors.Wrap(err, "failed to load session")
//	}
//
// The two domain failures map as follows:
//   - validation failures (bad stat, unknown attribute, empty skill name)
//     use CodeInvalidArgument, usually built with ValidationBuilder
//   - invalid roll-flow transitions use CodeFailedPrecondition
//
// ToGRPCError converts any error into a gRPC status, attaching
// errdetails.ErrorInfo metadata and errdetails.BadRequest field violations.
package errors
