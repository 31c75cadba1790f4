package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const serviceName = "slugid.SlugidService"

// SlugidServiceServer is the server API for SlugidService service.
//
// Batch takes a Struct {"mode": string, "count": number} and returns a
// ListValue of strings.
type SlugidServiceServer interface {
	V4(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	Nice(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	Batch(context.Context, *structpb.Struct) (*structpb.ListValue, error)
}

// UnimplementedSlugidServiceServer can be embedded to have forward compatible implementations.
type UnimplementedSlugidServiceServer struct{}

func (UnimplementedSlugidServiceServer) V4(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method V4 not implemented")
}
func (UnimplementedSlugidServiceServer) Nice(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Nice not implemented")
}
func (UnimplementedSlugidServiceServer) Batch(context.Context, *structpb.Struct) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Batch not implemented")
}

func RegisterSlugidServiceServer(s grpc.ServiceRegistrar, srv SlugidServiceServer) {
	s.RegisterService(&SlugidService_ServiceDesc, srv)
}

func _SlugidService_V4_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SlugidServiceServer).V4(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/V4",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SlugidServiceServer).V4(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _SlugidService_Nice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SlugidServiceServer).Nice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/Nice",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SlugidServiceServer).Nice(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _SlugidService_Batch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SlugidServiceServer).Batch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/Batch",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SlugidServiceServer).Batch(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// SlugidService_ServiceDesc is the grpc.ServiceDesc for SlugidService service.
var SlugidService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*SlugidServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "V4",
			Handler:    _SlugidService_V4_Handler,
		},
		{
			MethodName: "Nice",
			Handler:    _SlugidService_Nice_Handler,
		},
		{
			MethodName: "Batch",
			Handler:    _SlugidService_Batch_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "slugid.proto",
}

// SlugidServiceClient is the client API for SlugidService service.
type SlugidServiceClient interface {
	V4(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Nice(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Batch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type slugidServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSlugidServiceClient(cc grpc.ClientConnInterface) SlugidServiceClient {
	return &slugidServiceClient{cc}
}

func (c *slugidServiceClient) V4(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/V4", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *slugidServiceClient) Nice(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Nice", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *slugidServiceClient) Batch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Batch", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
