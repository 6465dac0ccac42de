package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	urfaveCli "github.com/urfave/cli/v2"

	"github.com/parserbot/mockapi/lib/config"
	"github.com/parserbot/mockapi/lib/logstore"
	"github.com/parserbot/mockapi/lib/simulate"
	"github.com/parserbot/mockapi/lib/types"
)

var cfg *config.Config
var store *logstore.Store

// swapped out in tests for deterministic runs
var delayFn simulate.DelayFunc = simulate.UniformDelay
var failFn simulate.FailFunc = simulate.RandomFail

func main() {
	app := &urfaveCli.App{
		Name:     "mockapi",
		Usage:    "Mock parser backend for developing the bot against",
		Compiled: time.Now(),
		Flags: []urfaveCli.Flag{
			&urfaveCli.StringFlag{Name: "config", Usage: "path to a yaml config file"},
			&urfaveCli.StringFlag{Name: "host", Usage: "listen address, overrides config"},
			&urfaveCli.IntFlag{Name: "port", Usage: "listen port, overrides config"},
			&urfaveCli.BoolFlag{Name: "verbose", Usage: "log at debug level"},
		},
		Action: func(cCtx *urfaveCli.Context) error {
			var err error
			cfg, err = config.Load(cCtx.String("config"))
			if err != nil {
				return err
			}
			if cCtx.IsSet("host") {
				cfg.Host = cCtx.String("host")
			}
			if cCtx.IsSet("port") {
				cfg.Port = cCtx.Int("port")
			}

			if cCtx.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			} else if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
				log.SetLevel(level)
			}

			store = logstore.New()

			gin.SetMode(gin.ReleaseMode)
			router := setupRouter()

			log.Info("mock api listening on " + cfg.Addr())
			return router.Run(cfg.Addr())
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupRouter() *gin.Engine {
	router := gin.New()

	// Recovery middleware recovers from any panics and writes a 500 if there was one.
	router.Use(gin.Recovery())
	router.Use(guidMiddleware())

	router.GET("/start_parser", startParser)
	router.GET("/start_table_process", startTableProcess)
	router.GET("/get_logs/:selector", getLogs)

	router.NoRoute(endpointNotFound)

	return router
}

func endpointNotFound(c *gin.Context) {
	c.IndentedJSON(http.StatusNotFound, types.Response{Status: http.StatusNotFound, Message: "Endpoint not found"})
}
