package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/flightinventory/api"
	"github.com/Domenick1991/flightinventory/config"
	bookingsapi "github.com/Domenick1991/flightinventory/internal/api/bookings_service_api"
	flightsapi "github.com/Domenick1991/flightinventory/internal/api/flights_service_api"
	"github.com/Domenick1991/flightinventory/internal/api/rpc"
	"github.com/Domenick1991/flightinventory/internal/service/booking"
	"github.com/Domenick1991/flightinventory/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const shutdownTimeout = 5 * time.Second

type Servers struct {
	grpcServer *grpc.Server
	health     *health.Server
	httpServer *http.Server
}

// Run starts the gRPC and HTTP (gin + swagger) servers and blocks until ctx is
// cancelled or a server fails.
func Run(ctx context.Context, cfg *config.Config, logger zerolog.Logger, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) error {
	s := NewServers(cfg, logger, flightSvc, bookingSvc)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("address", cfg.GRPC.Address).Msg("grpc server listening")
		return s.grpcServer.Serve(lis)
	})

	g.Go(func() error {
		logger.Info().Str("address", cfg.HTTP.Address).Msg("http server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return s.Shutdown()
	})

	return g.Wait()
}

func NewServers(cfg *config.Config, logger zerolog.Logger, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) *Servers {
	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(rpc.UnaryInterceptor(logger.With().Str("transport", "grpc").Logger())))
	flightsapi.RegisterFlightsServiceServer(grpcSrv, flightsapi.NewServer(flightSvc))
	bookingsapi.RegisterBookingsServiceServer(grpcSrv, bookingsapi.NewServer(bookingSvc))

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	for _, name := range []string{"", flightsapi.ServiceName, bookingsapi.ServiceName} {
		healthSrv.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           NewHTTPHandler(cfg.HTTP, logger.With().Str("transport", "http").Logger(), flightSvc, bookingSvc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Servers{
		grpcServer: grpcSrv,
		health:     healthSrv,
		httpServer: httpSrv,
	}
}

// NewHTTPHandler wires the REST API, a liveness probe and, when a swagger
// directory is configured, the API docs under /docs.
func NewHTTPHandler(cfg config.HTTPConfig, logger zerolog.Logger, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) http.Handler {
	router := api.NewRouter(logger,
		api.NewBookingHandler(bookingSvc),
		api.NewFlightHandler(flightSvc),
		api.NewInventoryHandler(bookingSvc),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.SwaggerDir != "" {
		router.Static("/swagger", cfg.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/openapi.json"))))
	}

	return router
}

func (s *Servers) Shutdown() error {
	s.health.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()

	err := s.httpServer.Shutdown(ctx)

	select {
	case <-stopped:
	case <-ctx.Done():
		s.grpcServer.Stop()
	}
	if err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
