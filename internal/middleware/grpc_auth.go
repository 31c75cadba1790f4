package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCAuthMiddleware struct {
	validator TokenValidator
}

func NewGRPCAuthMiddleware(validator TokenValidator) *GRPCAuthMiddleware {
	return &GRPCAuthMiddleware{
		validator: validator,
	}
}

func (m *GRPCAuthMiddleware) UnaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization is missing")
	}

	token, ok := bearerToken(values[0])
	if !ok {
		token = values[0]
	}

	claims, err := m.validator.ValidateToken(token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	ctx = context.WithValue(ctx, ClientIDKey, claims.ClientID)
	return handler(ctx, req)
}
