package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easybj/server/engine"
	"easybj/server/report"
	"easybj/server/solver"
)

func newTestServer(t *testing.T) (*httptest.Server, *solver.Result) {
	t.Helper()
	res, err := solver.Calculate()
	require.NoError(t, err)
	srv := httptest.NewServer(Router(res, report.Options{Precision: 4, Color: true}))
	t.Cleanup(srv.Close)
	return srv, res
}

func getJSON(t *testing.T, url string, status int, v any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, status, resp.StatusCode, url)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
}

func TestHealthAndTables(t *testing.T) {
	srv, res := newTestServer(t)

	var health map[string]bool
	getJSON(t, srv.URL+"/api/health", http.StatusOK, &health)
	assert.True(t, health["ok"])

	var names struct{ Tables []string }
	getJSON(t, srv.URL+"/api/tables", http.StatusOK, &names)
	assert.Equal(t, res.Tables(), names.Tables)

	var g report.Grid
	getJSON(t, srv.URL+"/api/tables/dealer", http.StatusOK, &g)
	assert.Equal(t, "dealer", g.Name)
	assert.Equal(t, "%", g.Unit)
	assert.Len(t, g.Rows, len(engine.DealerCodes()))
	assert.Equal(t, []string{"17", "18", "19", "20", "21", "0"}, g.Cols)

	getJSON(t, srv.URL+"/api/tables/nope", http.StatusNotFound, nil)
}

func TestStrategyEndpoint(t *testing.T) {
	srv, res := newTestServer(t)

	var out strategyResponse
	getJSON(t, srv.URL+"/api/strategy/11/6", http.StatusOK, &out)
	assert.Equal(t, "Dh", out.Action)
	assert.Equal(t, res.Optimal.MustGet(engine.HardTotal(11), engine.HardTotal(6)), out.EV)

	getJSON(t, srv.URL+"/api/strategy/AA/A6", http.StatusOK, &out)
	assert.Equal(t, "P", out.Action)

	out = strategyResponse{}
	getJSON(t, srv.URL+"/api/strategy/9s,7d,Ah/Tc,Qd", http.StatusOK, &out)
	assert.Equal(t, "17", out.Player)
	assert.Equal(t, "20", out.Dealer)
	assert.Equal(t, "H", out.Action)
	assert.Len(t, out.Options, 2)

	out = strategyResponse{}
	getJSON(t, srv.URL+"/api/strategy/As,Kd/9c,9d", http.StatusOK, &out)
	assert.True(t, out.Settled)
	assert.Equal(t, solver.NaturalPays, out.EV)

	out = strategyResponse{}
	getJSON(t, srv.URL+"/api/strategy/tt/6", http.StatusOK, &out)
	assert.Equal(t, "TT", out.Player)
	assert.Equal(t, res.Strategy.MustGet(engine.PairOf(engine.Ten), engine.HardTotal(6)), out.Action)
	getJSON(t, srv.URL+"/api/strategy/xx/6", http.StatusNotFound, nil)

	getJSON(t, srv.URL+"/api/strategy/21/6", http.StatusNotFound, nil)
	getJSON(t, srv.URL+"/api/strategy/16/2", http.StatusNotFound, nil)
	getJSON(t, srv.URL+"/api/strategy/9s,7x/6c,Th", http.StatusNotFound, nil)
	getJSON(t, srv.URL+"/api/strategy/9s,7d/6c", http.StatusNotFound, nil)
}

func TestDealerEndpoint(t *testing.T) {
	srv, res := newTestServer(t)

	var out dealerResponse
	getJSON(t, srv.URL+"/api/dealer/16", http.StatusOK, &out)
	assert.Equal(t, "16", out.Dealer)
	assert.Len(t, out.Outcomes, 6)
	assert.Equal(t, res.Dealer.MustGet(engine.HardTotal(16), engine.Busted), out.Outcomes["0"])
	assert.InDelta(t, 1.0, out.Total, 1e-12)

	out = dealerResponse{}
	getJSON(t, srv.URL+"/api/dealer/A6", http.StatusOK, &out)
	assert.Equal(t, "A6", out.Dealer)
	assert.InDelta(t, 1.0, out.Total, 1e-12)

	getJSON(t, srv.URL+"/api/dealer/21", http.StatusNotFound, nil)
}

func TestAdvantageAndMix(t *testing.T) {
	srv, res := newTestServer(t)

	var adv map[string]float64
	getJSON(t, srv.URL+"/api/advantage", http.StatusOK, &adv)
	assert.Equal(t, res.Advantage, adv["advantage"])

	var mix struct {
		Tags    map[string]float64
		Actions ActionTally
	}
	getJSON(t, srv.URL+"/api/action-mix", http.StatusOK, &mix)
	assert.InEpsilon(t, 1.0, mix.Actions.Total(), 1e-9)
	assert.Contains(t, mix.Tags, "BJ")
}

func TestReportText(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/report.txt?tables=strategy")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain"))

	var b strings.Builder
	_, err = io.Copy(&b, resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(b.String(), "Strategy\n"))
	assert.Contains(t, b.String(), "Player advantage: 11.6685%")
	assert.NotContains(t, b.String(), "\033[")

	resp3, err := http.Get(srv.URL + "/report.txt?tables=strategy,%20dealer")
	require.NoError(t, err)
	resp3.Body.Close()
	assert.Equal(t, http.StatusOK, resp3.StatusCode)

	resp2, err := http.Get(srv.URL + "/report.txt?tables=bogus")
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestParseHand(t *testing.T) {
	h, err := parseHand(engine.Player, "Ah, Kd")
	require.NoError(t, err)
	assert.Equal(t, engine.Blackjack, h.Category())

	_, err = parseHand(engine.Dealer, "Ah,1d")
	assert.ErrorIs(t, err, engine.ErrBadCard)
}
