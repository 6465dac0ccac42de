package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLogsPlaceholderBeforeAnyRun(t *testing.T) {
	router := newTestRouter(t)

	// any casing resolves to the canonical name
	for _, raw := range []string{"Sale", "sale", "SALE", "currencyinfo"} {
		w := doGet(router, "/get_logs/parser="+raw)
		require.Equal(t, http.StatusOK, w.Code, raw)

		b := decode(t, w)
		require.Contains(t, b.Message, "No logs recorded yet for ")
		if strings.EqualFold(raw, "sale") {
			require.Contains(t, b.Message, "No logs recorded yet for Sale.")
		} else {
			require.Contains(t, b.Message, "No logs recorded yet for CurrencyInfo.")
		}
	}
}

func TestGetLogsUnknownParser(t *testing.T) {
	router := newTestRouter(t)

	w := doGet(router, "/get_logs/parser=DoesNotExist")
	require.Equal(t, http.StatusNotFound, w.Code)

	b := decode(t, w)
	require.Equal(t, 404, b.Status)
	require.Equal(t, "No logs found for unknown parser: DoesNotExist", b.Message)
}

func TestGetLogsSelectorWithoutPrefix(t *testing.T) {
	router := newTestRouter(t)

	w := doGet(router, "/get_logs/Sale")
	require.Equal(t, http.StatusNotFound, w.Code)

	b := decode(t, w)
	require.Equal(t, "Endpoint not found", b.Message)
}

func TestGetLogsAfterRun(t *testing.T) {
	router := newTestRouter(t)

	doGet(router, "/start_parser?parser=PackageIdSaleInfo")

	w := doGet(router, "/get_logs/parser=packageidsaleinfo")
	require.Equal(t, http.StatusOK, w.Code)

	b := decode(t, w)
	lines := strings.Split(b.Message, "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "start requested")
	require.Contains(t, lines[1], "finished successfully")
}

func TestGetLogsSaleHasSyntheticTail(t *testing.T) {
	router := newTestRouter(t)

	doGet(router, "/start_parser?parser=Sale")

	w := doGet(router, "/get_logs/parser=Sale")
	require.Equal(t, http.StatusOK, w.Code)

	b := decode(t, w)
	lines := strings.Split(b.Message, "\n")

	start := -1
	end := -1
	for i, line := range lines {
		switch line {
		case longLogStart:
			start = i
		case longLogEnd:
			end = i
		}
	}
	require.NotEqual(t, -1, start, "start marker missing")
	require.NotEqual(t, -1, end, "end marker missing")
	require.Equal(t, longLogLines, end-start-1)

	// the real log lines still precede the block
	require.Contains(t, lines[0], "start requested")
	require.Contains(t, lines[start+1], "Line 1: ", "first synthetic line numbered")
	require.Contains(t, lines[end-1], "Line 500: ", "last synthetic line numbered")
}

func TestGetLogsSaleEmptyHasNoTail(t *testing.T) {
	router := newTestRouter(t)

	w := doGet(router, "/get_logs/parser=Sale")
	require.Equal(t, http.StatusOK, w.Code)

	b := decode(t, w)
	require.NotContains(t, b.Message, longLogStart)
}
