package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/MikhailRaia/slugid"
	"github.com/MikhailRaia/slugid/internal/auth"
	"github.com/MikhailRaia/slugid/internal/config"
	"github.com/MikhailRaia/slugid/internal/handler"
	"github.com/MikhailRaia/slugid/internal/middleware"
	"github.com/MikhailRaia/slugid/internal/proto"
	"github.com/MikhailRaia/slugid/internal/service"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

type App struct {
	config     *config.Config
	handler    http.Handler
	grpcServer *grpc.Server
}

func NewApp(cfg *config.Config) *App {
	src := slugid.Default()

	slugService := service.NewSlugService(src, cfg.MaxBatch)

	var (
		authMiddleware *middleware.AuthMiddleware
		grpcOpts       []grpc.ServerOption
	)
	if cfg.JWTSecret != "" {
		jwtService := auth.NewJWTService(cfg.JWTSecret, src)
		authMiddleware = middleware.NewAuthMiddleware(jwtService)
		grpcOpts = append(grpcOpts, grpc.UnaryInterceptor(middleware.NewGRPCAuthMiddleware(jwtService).UnaryInterceptor))
	}

	httpHandler := handler.NewHandler(slugService, authMiddleware)

	grpcServer := grpc.NewServer(grpcOpts...)
	proto.RegisterSlugidServiceServer(grpcServer, handler.NewSlugidGRPCServer(slugService))

	return &App{
		config:     cfg,
		handler:    httpHandler.RegisterRoutes(),
		grpcServer: grpcServer,
	}
}

// Run serves HTTP and gRPC until ctx is done or one of the servers fails.
func (a *App) Run(ctx context.Context) error {
	httpListener, err := net.Listen("tcp", a.config.ServerAddress)
	if err != nil {
		return fmt.Errorf("listen http: %w", err)
	}

	grpcListener, err := net.Listen("tcp", a.config.GRPCAddress)
	if err != nil {
		httpListener.Close()
		return fmt.Errorf("listen grpc: %w", err)
	}

	return a.serve(ctx, httpListener, grpcListener)
}

func (a *App) serve(ctx context.Context, httpListener, grpcListener net.Listener) error {
	httpServer := &http.Server{Handler: a.handler}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("address", httpListener.Addr().String()).Msg("Starting HTTP server")
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		log.Info().Str("address", grpcListener.Addr().String()).Msg("Starting gRPC server")
		if err := a.grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		stopped := make(chan struct{})
		go func() {
			a.grpcServer.GracefulStop()
			close(stopped)
		}()

		err := httpServer.Shutdown(shutdownCtx)

		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			log.Warn().Msg("gRPC shutdown timeout, forcing stop")
			a.grpcServer.Stop()
			<-stopped
		}

		return err
	})

	return g.Wait()
}
