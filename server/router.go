package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"easybj/server/engine"
	"easybj/server/report"
	"easybj/server/solver"
	"easybj/server/table"
)

type dealerResponse struct {
	Dealer   string             `json:"dealer"`
	Outcomes map[string]float64 `json:"outcomes"`
	Total    float64            `json:"total"`
}

type strategyResponse struct {
	Player  string             `json:"player"`
	Dealer  string             `json:"dealer"`
	Action  string             `json:"action,omitempty"`
	EV      float64            `json:"ev"`
	Settled bool               `json:"settled,omitempty"`
	Options map[string]float64 `json:"options,omitempty"`
}

// Router serves the finished tables read-only.
func Router(res *solver.Result, opt report.Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"ok": true})
	})

	r.Get("/api/tables", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"tables": res.Tables()})
	})

	r.Get("/api/tables/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		g, ok := res.Grid(name)
		if !ok {
			writeError(w, http.StatusNotFound, "unknown table "+name)
			return
		}
		out, err := report.ExportGrid(name, g)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, out)
	})

	// {player} and {dealer} are either chart codes ("16", "AA", "A6") or
	// concrete cards ("9s,7d").
	r.Get("/api/strategy/{player}/{dealer}", func(w http.ResponseWriter, r *http.Request) {
		out, err := strategyFor(res, chi.URLParam(r, "player"), chi.URLParam(r, "dealer"))
		switch {
		case errors.Is(err, table.ErrKeyNotFound), errors.Is(err, engine.ErrBadCard),
			errors.Is(err, engine.ErrBadRank), errors.Is(err, solver.ErrNotPlayable):
			writeError(w, http.StatusNotFound, err.Error())
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, out)
	})

	r.Get("/api/dealer/{dealer}", func(w http.ResponseWriter, r *http.Request) {
		dc, err := res.Dealer.Row(chi.URLParam(r, "dealer"))
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		d, err := res.DealerDistribution(dc)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		out := dealerResponse{Dealer: dc.String(), Outcomes: map[string]float64{}, Total: d.Sum()}
		for i, o := range engine.OutcomeCodes() {
			out.Outcomes[o.String()] = d[i]
		}
		writeJSON(w, out)
	})

	r.Get("/api/advantage", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"advantage": res.Advantage})
	})

	r.Get("/api/action-mix", func(w http.ResponseWriter, r *http.Request) {
		mix := actionMix(res)
		writeJSON(w, map[string]any{"tags": mix, "actions": tally(mix)})
	})

	r.Get("/report.txt", func(w http.ResponseWriter, r *http.Request) {
		plain := opt
		plain.Color = false
		var buf bytes.Buffer
		rw := report.New(&buf, plain)
		if err := rw.Report(res, splitNames(r.URL.Query().Get("tables"))); err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	})

	return r
}

func strategyFor(res *solver.Result, player, dealer string) (strategyResponse, error) {
	if strings.ContainsAny(player+dealer, "shdcSHDC") {
		a, err := lookupCards(res, player, dealer)
		if err != nil {
			return strategyResponse{}, err
		}
		return fromAdvice(a), nil
	}

	pc, err := playerRow(res, player)
	if err != nil {
		return strategyResponse{}, err
	}
	dc, err := res.Strategy.Col(dealer)
	if err != nil {
		return strategyResponse{}, err
	}
	action := res.Strategy.MustGet(pc, dc)
	return strategyResponse{
		Player: pc.String(),
		Dealer: dc.String(),
		Action: action,
		EV:     res.Optimal.MustGet(pc, dc),
	}, nil
}

// playerRow reads a player chart code. A doubled rank in any case, such as
// "tt" or "aa", names the pair.
func playerRow(res *solver.Result, code string) (engine.Category, error) {
	pc, err := res.Strategy.Row(code)
	if err == nil || len(code) != 2 || code[0] != code[1] {
		return pc, err
	}
	r, err := engine.ParseRank(strings.ToUpper(code[:1]))
	if err != nil {
		return engine.Category{}, err
	}
	return engine.PairOf(r), nil
}

func fromAdvice(a solver.Advice) strategyResponse {
	out := strategyResponse{
		Player:  a.Player.String(),
		Dealer:  a.Dealer.String(),
		Action:  a.Action,
		EV:      a.EV,
		Settled: a.Settled,
	}
	if len(a.Options) > 0 {
		out.Options = map[string]float64{}
		for act, v := range a.Options {
			out.Options[string(act)] = v
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
