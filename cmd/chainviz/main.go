package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/api"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/chainview"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/dashboard"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/eventloop"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/tui"
)

var config struct {
	APIURL       string        `long:"api-url" env:"CHAINVIZ_API_URL" description:"explorer backend base url" default:"http://localhost:5000"`
	HTTPTimeout  time.Duration `long:"http-timeout" env:"CHAINVIZ_HTTP_TIMEOUT" description:"backend request timeout" default:"10s"`
	APIRPS       int           `long:"api-rps" env:"CHAINVIZ_API_RPS" description:"backend requests per second, 0 for no limit" default:"0"`
	FPS          int           `long:"fps" env:"CHAINVIZ_FPS" description:"animation frames per second" default:"30"`
	PollInterval time.Duration `long:"poll-interval" env:"CHAINVIZ_POLL_INTERVAL" description:"mining status poll interval" default:"1s"`
	Workers      int           `long:"workers" env:"CHAINVIZ_WORKERS" description:"parallel balance requests" default:"4"`
	DebugAddr    string        `long:"debug-addr" env:"CHAINVIZ_DEBUG_ADDR" description:"debug http addr, empty to disable" default:":8002"`
	LogFile      string        `long:"log-file" env:"CHAINVIZ_LOG_FILE" description:"log file" default:"chainviz.log"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	logConfig := zap.NewDevelopmentConfig()
	logConfig.OutputPaths = []string{config.LogFile}
	logConfig.ErrorOutputPaths = []string{config.LogFile}
	logger, err := logConfig.Build()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	backendURL, err := url.Parse(config.APIURL)
	if err != nil {
		logger.Fatal("Failed to parse api url", zap.Error(err))
	}
	client, err := api.NewClient(api.Config{
		BaseURL: config.APIURL,
		Timeout: config.HTTPTimeout,
		RPS:     config.APIRPS,
	}, metrics.NewAPIClient(backendURL.Host), logger)
	if err != nil {
		logger.Fatal("Failed to create api client", zap.Error(err))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("Failed to create screen", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("Failed to initialize screen", zap.Error(err))
	}
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))

	loop := eventloop.New(logger)
	app := tui.NewApp(screen, loop, logger)
	view := chainview.NewVisualizerContext(client, app, loop, metrics.NewScene(), logger)
	ctrl := dashboard.NewController(client, view.Sync, app, loop, metrics.NewMiningPoll(), logger, dashboard.Config{
		PollInterval: config.PollInterval,
		Workers:      config.Workers,
	})
	view.Bind(ctrl, ctrl)
	app.Attach(view, ctrl)

	if config.DebugAddr != "" {
		s := &http.Server{
			Addr:              config.DebugAddr,
			Handler:           transport.NewDebugHandler(chainview.SceneReader{View: view, Loop: loop}, logger),
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
		}
		go func() {
			<-ctx.Done()
			logger.Info("Shutting down the debug server")
			if err := s.Shutdown(context.Background()); err != nil {
				logger.Error("Failed to shutdown debug server", zap.Error(err))
			}
		}()
		go func() {
			logger.Info("Starting debug server", zap.String("addr", config.DebugAddr))
			if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Failed to listen and serve", zap.Error(err))
			}
		}()
	}

	logger.Info("Starting viewer", zap.String("api_url", config.APIURL), zap.Int("fps", config.FPS))
	if err := app.Run(ctx, config.FPS); err != nil {
		logger.Error("Viewer stopped", zap.Error(err))
	}
	stop()
}
