package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dev-mohitbeniwal/aptmgr/console/audit"
	"github.com/dev-mohitbeniwal/aptmgr/console/config"
	"github.com/dev-mohitbeniwal/aptmgr/console/controller"
	"github.com/dev-mohitbeniwal/aptmgr/console/db"
	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	"github.com/dev-mohitbeniwal/aptmgr/console/jobs"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/middleware"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/router"
	"github.com/dev-mohitbeniwal/aptmgr/console/service"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

type console struct {
	services      *service.Services
	notifications *util.NotificationService
	loading       *util.LoadingService
	navigator     *util.Navigator
	eventBus      *util.EventBus
}

func main() {
	command, args := "serve", os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command, args = args[0], args[1:]
	}

	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Redis
	if config.GetBool("redis.enabled") {
		if err := db.InitRedis(); err != nil {
			logger.Fatal("Failed to initialize Redis", zap.Error(err))
		}
		defer db.CloseRedis()
	}

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	app, err := newConsole(eventBus)
	if err != nil {
		logger.Fatal("Failed to initialize console", zap.Error(err))
	}

	if err := app.services.Auth.Restore(ctx); err != nil {
		// Continue execution despite the error
		logger.Error("Failed to restore session", zap.Error(err))
	}

	switch command {
	case "serve":
		serve(ctx, app)
	case "login":
		if err := login(ctx, app, args); err != nil {
			logger.Fatal("Login failed", zap.Error(err))
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (expected serve or login)\n", command)
		os.Exit(2)
	}
}

func newConsole(eventBus *util.EventBus) (*console, error) {
	notifications := util.NewNotificationService()
	loading := util.NewLoadingService()
	navigator := util.NewNavigator(eventBus)
	client := gateway.NewClient(gateway.ConfigFromViper())

	var store db.SessionStore = db.NewMemorySessionStore()
	var locker service.Locker
	if db.RedisAvailable() {
		if config.GetString("session.store") == "redis" {
			store = db.NewRedisSessionStore(db.RedisClient, config.GetString("session.namespace"), config.GetDuration("redis.sessionTTL"))
		}
		locker = service.RedisLocker{}
	}

	services, err := service.InitializeServices(service.Dependencies{
		Client:          client,
		Store:           store,
		Settings:        service.CacheSettingsFromViper(),
		Locker:          locker,
		LockTTL:         config.GetDuration("dues.lockTTL"),
		ValidationUtil:  util.NewValidationUtil(),
		CacheService:    util.NewCacheService(),
		NotificationSvc: notifications,
		Navigator:       navigator,
		EventBus:        eventBus,
	})
	if err != nil {
		return nil, err
	}

	auditService, err := newAuditService()
	if err != nil {
		return nil, err
	}
	username := func() string {
		if user := services.Auth.CurrentUser(); user != nil {
			return user.Username
		}
		return ""
	}

	// Outermost first: the loading interceptor sees the request before the
	// auth interceptor, which sees it before the error interceptor.
	client.Use(
		middleware.GatewayLogger(),
		audit.Recorder(auditService, username),
		middleware.Loading(loading),
		middleware.Auth(services.Auth, navigator),
		middleware.HTTPError(notifications),
	)

	return &console{
		services:      services,
		notifications: notifications,
		loading:       loading,
		navigator:     navigator,
		eventBus:      eventBus,
	}, nil
}

func newAuditService() (audit.Service, error) {
	if !config.GetBool("audit.enabled") {
		return audit.NewService(audit.NewLogRepository(config.GetInt("audit.logLimit"))), nil
	}
	repo, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"), config.GetString("audit.index"))
	if err != nil {
		return nil, fmt.Errorf("failed to create audit repository: %w", err)
	}
	return audit.NewService(repo), nil
}

func serve(ctx context.Context, app *console) {
	var scheduler *jobs.Scheduler
	if config.GetBool("jobs.enabled") {
		var err error
		scheduler, err = jobs.NewScheduler(jobs.ConfigFromViper(), app.services.Dues, app.services.Contract, app.services.Auth, app.eventBus)
		if err != nil {
			logger.Fatal("Failed to initialize maintenance jobs", zap.Error(err))
		}
		scheduler.Start(ctx)
	}

	// Initialize controllers
	controllers := controller.InitializeControllers(app.services, app.notifications, app.loading, app.navigator)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(
		controllers,
		app.services.Auth,
		app.navigator,
		config.GetInt("server.rateLimitRequests"),
		config.GetDuration("server.rateLimitDuration"),
	)

	// Set up the server
	server := &http.Server{
		Addr:    config.GetConfig().Server.Addr(),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting console", zap.String("addr", server.Addr),
			zap.String("backend", gateway.ConfigFromViper().BaseURL))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down console...")

	if scheduler != nil {
		scheduler.Stop()
	}
	app.services.Auth.StopAllPolling()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Console exiting")
}

// login signs in from the terminal and persists the session for later
// serve runs. It only outlives the process with the Redis session store.
func login(ctx context.Context, app *console, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("username", "", "backend username")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return errors.New("-username is required")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	user, err := app.services.Auth.Login(ctx, model.LoginRequest{Username: *username, Password: string(password)})
	if err != nil {
		return err
	}
	app.eventBus.Wait()

	fmt.Printf("Logged in as %s (%s)\n", user.Username, strings.Join(user.Roles, ", "))
	if !db.RedisAvailable() || config.GetString("session.store") != "redis" {
		fmt.Fprintln(os.Stderr, "warning: session.store is not redis; the session ends with this process")
	}
	return nil
}
