// Package v1alpha1 exposes the skill check command service over gRPC.
// The contract is proto/skillcheck/api/v1alpha1/skillcheck.proto. Every
// message is a google.protobuf.Struct, so there are no generated message
// types; ServiceDesc below is the descriptor protoc-gen-go-grpc emits for it.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "skillcheck.api.v1alpha1.SkillCheckService"

// Method names
const (
	MethodCreateSession     = "CreateSession"
	MethodEndSession        = "EndSession"
	MethodGetAttributes     = "GetAttributes"
	MethodSetAttributeValue = "SetAttributeValue"
	MethodBeginRoll         = "BeginRoll"
	MethodChooseMethod      = "ChooseMethod"
	MethodConfirmRoll       = "ConfirmRoll"
	MethodGetLastOutcome    = "GetLastOutcome"
	MethodAddSkill          = "AddSkill"
	MethodListSkills        = "ListSkills"
)

// SkillCheckServiceServer is the server API for the skill check service
type SkillCheckServiceServer interface {
	CreateSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EndSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetAttributes(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetAttributeValue(context.Context, *structpb.Struct) (*structpb.Struct, error)
	BeginRoll(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ChooseMethod(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ConfirmRoll(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetLastOutcome(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddSkill(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListSkills(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(SkillCheckServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func methodDesc(method string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(SkillCheckServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(SkillCheckServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes the skill check service for grpc.Server.RegisterService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SkillCheckServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		methodDesc(MethodCreateSession, SkillCheckServiceServer.CreateSession),
		methodDesc(MethodEndSession, SkillCheckServiceServer.EndSession),
		methodDesc(MethodGetAttributes, SkillCheckServiceServer.GetAttributes),
		methodDesc(MethodSetAttributeValue, SkillCheckServiceServer.SetAttributeValue),
		methodDesc(MethodBeginRoll, SkillCheckServiceServer.BeginRoll),
		methodDesc(MethodChooseMethod, SkillCheckServiceServer.ChooseMethod),
		methodDesc(MethodConfirmRoll, SkillCheckServiceServer.ConfirmRoll),
		methodDesc(MethodGetLastOutcome, SkillCheckServiceServer.GetLastOutcome),
		methodDesc(MethodAddSkill, SkillCheckServiceServer.AddSkill),
		methodDesc(MethodListSkills, SkillCheckServiceServer.ListSkills),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "skillcheck/api/v1alpha1/skillcheck.proto",
}

// RegisterSkillCheckServiceServer registers srv with s
func RegisterSkillCheckServiceServer(s grpc.ServiceRegistrar, srv SkillCheckServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
