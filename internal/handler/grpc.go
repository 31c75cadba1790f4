package handler

import (
	"context"
	"errors"
	"math"

	"github.com/MikhailRaia/slugid"
	"github.com/MikhailRaia/slugid/internal/proto"
	"github.com/MikhailRaia/slugid/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type SlugidGRPCServer struct {
	proto.UnimplementedSlugidServiceServer
	slugService SlugService
}

func NewSlugidGRPCServer(slugService SlugService) *SlugidGRPCServer {
	return &SlugidGRPCServer{
		slugService: slugService,
	}
}

func (s *SlugidGRPCServer) V4(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return s.single(ctx, slugid.ModeV4)
}

func (s *SlugidGRPCServer) Nice(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return s.single(ctx, slugid.ModeNice)
}

func (s *SlugidGRPCServer) Batch(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	fields := req.GetFields()

	mode, err := slugid.ParseMode(fields["mode"].GetStringValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	count := 1
	if v, ok := fields["count"]; ok {
		n := v.GetNumberValue()
		if math.IsInf(n, 0) || n != math.Trunc(n) {
			return nil, status.Error(codes.InvalidArgument, "count must be an integer")
		}
		count = int(n)
	}

	ids, err := s.slugService.GenerateBatch(ctx, mode, count)
	if err != nil {
		return nil, grpcError(err)
	}

	resp := &structpb.ListValue{
		Values: make([]*structpb.Value, 0, len(ids)),
	}
	for _, id := range ids {
		resp.Values = append(resp.Values, structpb.NewStringValue(id))
	}

	return resp, nil
}

func (s *SlugidGRPCServer) single(ctx context.Context, mode slugid.Mode) (*wrapperspb.StringValue, error) {
	id, err := s.slugService.Generate(ctx, mode)
	if err != nil {
		return nil, grpcError(err)
	}
	return wrapperspb.String(id), nil
}

func grpcError(err error) error {
	switch {
	case errors.Is(err, slugid.ErrUnknownMode), errors.Is(err, service.ErrInvalidCount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Errorf(codes.Internal, "failed to generate slugid: %v", err)
	}
}
