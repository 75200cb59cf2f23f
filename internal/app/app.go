package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"hris-dashboard/internal/config"
	"hris-dashboard/internal/dashboard"
	"hris-dashboard/internal/department"
	"hris-dashboard/internal/document"
	"hris-dashboard/internal/employee"
	"hris-dashboard/internal/events"
	"hris-dashboard/internal/fixtures"
	"hris-dashboard/internal/leave"
	"hris-dashboard/internal/messaging/kafka/producer"
	"hris-dashboard/internal/middleware"
	"hris-dashboard/internal/shared/connection"
	"hris-dashboard/internal/shared/idgen"
	"hris-dashboard/internal/shared/latency"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	redisMaxRetries = 5
	redisRetryWait  = 2 * time.Second
)

// Services is the in-process service layer, ready to be served over HTTP or
// driven from the CLI.
type Services struct {
	Employees   employee.Service
	Leaves      leave.Service
	Documents   document.Service
	Departments department.Service
	Dashboard   *dashboard.Aggregator
}

// App is a fully wired API server.
type App struct {
	Router   *gin.Engine
	Services *Services

	closers []func() error
}

// Build loads fixtures, connects the optional Redis and Kafka backends named
// in cfg, and wires services, handlers and routes.
func Build(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	set, err := fixtures.Load(cfg.FixturesDir)
	if err != nil {
		return nil, err
	}

	a := &App{}

	publisher := events.Noop()
	if cfg.KafkaBroker != "" {
		writer := producer.NewWriter(cfg.KafkaBroker)
		publisher = producer.NewPublisher(writer, logger)
		a.closers = append(a.closers, writer.Close)
		logger.Info("publishing domain events to kafka", zap.String("broker", cfg.KafkaBroker))
	}

	services, err := NewServices(cfg, set, publisher, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Services = services

	var rdb redis.Cmdable
	if cfg.RedisAddr != "" {
		client, err := connection.ConnectRedisWithRetry(ctx, cfg.RedisAddr, redisMaxRetries, redisRetryWait, logger)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		rdb = client
		a.closers = append(a.closers, client.Close)
	}

	a.Router = NewRouter(cfg, services, rdb, logger)
	return a, nil
}

// Close releases the backend connections opened by Build.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

// NewServices builds the four entity services over stores seeded from set,
// plus the dashboard aggregator reading from them.
func NewServices(cfg config.Config, set fixtures.Set, publisher events.Publisher, logger *zap.Logger) (*Services, error) {
	employeeRepo, err := employee.NewRepository(set.Employees)
	if err != nil {
		return nil, fmt.Errorf("seed employees: %w", err)
	}
	leaveRepo, err := leave.NewRepository(set.LeaveRequests)
	if err != nil {
		return nil, fmt.Errorf("seed leave requests: %w", err)
	}
	documentRepo, err := document.NewRepository(set.Documents)
	if err != nil {
		return nil, fmt.Errorf("seed documents: %w", err)
	}
	departmentRepo, err := department.NewRepository(set.Departments)
	if err != nil {
		return nil, fmt.Errorf("seed departments: %w", err)
	}

	ids := func(prefix string) (idgen.Generator, error) {
		return idgen.FromStrategy(cfg.IDStrategy, prefix)
	}
	employeeIDs, err := ids("emp-")
	if err != nil {
		return nil, err
	}
	leaveIDs, err := ids("lv-")
	if err != nil {
		return nil, err
	}
	documentIDs, err := ids("doc-")
	if err != nil {
		return nil, err
	}
	departmentIDs, err := ids("dept-")
	if err != nil {
		return nil, err
	}

	s := &Services{
		Employees: employee.NewServiceWithPublisher(
			employeeRepo, delayer(cfg, latency.EmployeeProfile), employeeIDs, publisher, logger),
		Leaves: leave.NewServiceWithPublisher(
			leaveRepo, delayer(cfg, latency.LeaveProfile), leaveIDs, publisher, logger),
		Documents: document.NewService(
			documentRepo, delayer(cfg, latency.DocumentProfile), documentIDs, logger),
		Departments: department.NewService(
			departmentRepo, delayer(cfg, latency.DepartmentProfile), departmentIDs, logger),
	}
	s.Dashboard = dashboard.NewAggregator(dashboard.Sources{
		Employees:   s.Employees,
		Leaves:      s.Leaves,
		Documents:   s.Documents,
		Departments: s.Departments,
	}, dashboard.WithLogger(logger))

	return s, nil
}

func delayer(cfg config.Config, profile latency.Profile) latency.Delayer {
	if !cfg.SimulatedLatency {
		return latency.None()
	}
	return latency.NewFixed(profile, cfg.LatencyScale)
}

// NewRouter mounts every handler under /api/v1. When rdb is non-nil, create
// endpoints honour the Idempotency-Key header.
func NewRouter(cfg config.Config, s *Services, rdb redis.Cmdable, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.AccessLog(logger),
		gin.Recovery(),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	var writeGuards []gin.HandlerFunc
	if rdb != nil {
		writeGuards = append(writeGuards, middleware.Idempotency(rdb, logger))
	}

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employee.NewHandler(s.Employees, logger), writeGuards...)
		leave.RegisterRoutes(api, leave.NewHandler(s.Leaves, logger), writeGuards...)
		document.RegisterRoutes(api, document.NewHandler(s.Documents, logger), writeGuards...)
		department.RegisterRoutes(api, department.NewHandler(s.Departments, logger), writeGuards...)
		dashboard.RegisterRoutes(api, dashboard.NewHandler(s.Dashboard, logger))
	}

	return router
}
