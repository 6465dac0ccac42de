package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/parserbot/mockapi/lib/types"
)

const logSelectorPrefix = "parser="

// The Sale log gets a synthetic oversized tail so the bot's message
// splitting can be exercised without running a real parser for hours.
const (
	longLogLines = 500
	longLogStart = "----- START LONG LOG -----"
	longLogEnd   = "----- END LONG LOG -----"
)

func getLogs(c *gin.Context) {
	selector := c.Param("selector")
	if !strings.HasPrefix(selector, logSelectorPrefix) {
		endpointNotFound(c)
		return
	}
	name := strings.TrimPrefix(selector, logSelectorPrefix)

	parser, known := store.Resolve(name)
	if !known {
		c.IndentedJSON(http.StatusNotFound, types.Response{Status: http.StatusNotFound, Message: "No logs found for unknown parser: " + name})
		return
	}

	lines := store.Lines(parser)
	if len(lines) == 0 {
		message := fmt.Sprintf("[%s] No logs recorded yet for %s.", store.Timestamp(), parser)
		c.IndentedJSON(http.StatusOK, types.Response{Status: http.StatusOK, Message: message})
		return
	}

	if parser == "Sale" {
		lines = append(lines, longLogBlock()...)
	}

	c.IndentedJSON(http.StatusOK, types.Response{Status: http.StatusOK, Message: strings.Join(lines, "\n")})
}

func longLogBlock() []string {
	block := make([]string, 0, longLogLines+2)
	block = append(block, longLogStart)
	for i := 1; i <= longLogLines; i++ {
		block = append(block, fmt.Sprintf("Line %d: %s", i, randomToken()))
	}
	block = append(block, longLogEnd)
	return block
}

func randomToken() string {
	b := make([]byte, 6)
	rand.Read(b)
	return hex.EncodeToString(b)
}
