package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/parserbot/mockapi/lib/types"
)

// Sync methods the table pipeline exposes. The mock accepts anything, the
// list only drives the unknown-method warning.
var knownTableMethods = []string{"set_final_price", "set_delivery_region", "set_shop_price"}

// set_shop_price is always invoked with the main shop by the bot.
const shopPriceArgs = `["main"]`

func startTableProcess(c *gin.Context) {
	method := c.Query("method")
	if method == "" {
		c.IndentedJSON(http.StatusBadRequest, types.Response{Status: http.StatusBadRequest, Message: `Query parameter "method" is required`})
		return
	}

	known := false
	for _, m := range knownTableMethods {
		if m == method {
			known = true
			break
		}
	}
	if !known {
		log.Warnf("table process requested for unknown method %q, proceeding anyway", method)
	}

	if method == "set_shop_price" {
		if args := c.Query("args"); args != shopPriceArgs {
			log.Warnf("set_shop_price called with args %q, expected %s", args, shopPriceArgs)
		}
	}

	min, max := cfg.TableDelayWindow()
	delay := delayFn(min, max)
	log.Debugf("table process %s will run for %s", method, delay)
	time.Sleep(delay)

	c.IndentedJSON(http.StatusOK, types.TableProcessResponse{
		Response: types.Response{Status: http.StatusOK, Message: "Table process " + method + " finished successfully (mock)."},
		Method:   method,
	})
}
