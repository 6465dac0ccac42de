package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/parserbot/mockapi/lib/types"
)

// The real backend never rejects a parser it does not know; it just logs the
// request and runs nothing. The bot relies on that, so unknown names are
// accepted verbatim here too. Log retrieval is stricter, see logs.go.
func startParser(c *gin.Context) {
	name := c.Query("parser")
	if name == "" {
		c.IndentedJSON(http.StatusBadRequest, types.Response{Status: http.StatusBadRequest, Message: `Query parameter "parser" is required`})
		return
	}

	parser, known := store.Resolve(name)
	if !known {
		log.Warnf("start requested for unknown parser %q, proceeding anyway", name)
	}

	store.Append(parser, "Parser "+parser+" start requested.")

	min, max := cfg.ParserDelayWindow()
	delay := delayFn(min, max)
	log.Debugf("parser %s will run for %s", parser, delay)
	time.Sleep(delay)

	if parser == "CurrencyInfo" && failFn(cfg.CurrencyFailureRate) {
		store.Append(parser, "Parser "+parser+" FAILED.")
		c.IndentedJSON(http.StatusInternalServerError, types.ParserResponse{
			Response: types.Response{Status: http.StatusInternalServerError, Message: "Mock error during " + parser + " parsing"},
			Parser:   parser,
		})
		return
	}

	store.Append(parser, "Parser "+parser+" finished successfully.")
	c.IndentedJSON(http.StatusOK, types.ParserResponse{
		Response: types.Response{Status: http.StatusOK, Message: "Parser " + parser + " started and finished successfully (mock)."},
		Parser:   parser,
	})
}
