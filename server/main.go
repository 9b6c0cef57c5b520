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

	"easybj/server/engine"
	"easybj/server/report"
	"easybj/server/solver"
)

const version = "0.1.0"

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	var (
		serve       = flag.Bool("serve", false, "serve the tables over HTTP on $PORT")
		asJSON      = flag.Bool("json", false, "print the tables as JSON")
		lookup      = flag.String("lookup", "", `advise one deal, player cards then dealer cards: "9s,7d:6c,Th"`)
		tables      = flag.String("tables", "", "comma separated table names to print (default $EASYBJ_TABLES or all)")
		precision   = flag.Int("precision", -1, "decimal places (default $EASYBJ_PRECISION)")
		showVersion = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("easybj", version)
		return
	}
	if *tables != "" {
		cfg.Tables = splitNames(*tables)
	}
	if *precision >= 0 {
		cfg.Precision = *precision
	}

	start := time.Now()
	res, err := solver.Calculate()
	if err != nil {
		log.Fatalf("calculate: %v", err)
	}
	log.Printf("solved %d tables in %s", len(res.Tables()), time.Since(start).Round(time.Microsecond))

	rw := report.New(os.Stdout, cfg.reportOptions())
	switch {
	case *lookup != "":
		player, dealer, ok := strings.Cut(*lookup, ":")
		if !ok {
			log.Fatalf("lookup %q: want player:dealer", *lookup)
		}
		a, err := lookupCards(res, player, dealer)
		if err != nil {
			log.Fatalf("lookup %q: %v", *lookup, err)
		}
		if err := rw.Advice(a); err != nil {
			log.Fatal(err)
		}

	case *asJSON:
		out, err := report.ExportAll(res, cfg.Tables)
		if err != nil {
			log.Fatal(err)
		}
		if err := report.WriteJSON(os.Stdout, out); err != nil {
			log.Fatal(err)
		}

	case *serve:
		if err := runServer(cfg, res); err != nil {
			log.Fatal(err)
		}

	default:
		if err := rw.Report(res, cfg.Tables); err != nil {
			log.Fatal(err)
		}
		if err := rw.Mix(actionMix(res)); err != nil {
			log.Fatal(err)
		}
	}
}

// lookupCards parses both card lists and advises the deal.
func lookupCards(res *solver.Result, player, dealer string) (solver.Advice, error) {
	p, err := parseHand(engine.Player, player)
	if err != nil {
		return solver.Advice{}, err
	}
	d, err := parseHand(engine.Dealer, dealer)
	if err != nil {
		return solver.Advice{}, err
	}
	return res.Advise(p, d)
}

func parseHand(o engine.Owner, s string) (engine.Hand, error) {
	cards, err := engine.ParseCards(s)
	if err != nil {
		return engine.Hand{}, fmt.Errorf("%s cards: %w", o, err)
	}
	ranks := make([]engine.Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank()
	}
	return engine.NewHand(o, ranks...), nil
}

func runServer(cfg Config, res *solver.Result) error {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      Router(res, cfg.reportOptions()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Println("Stop requested; shutting down.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("HTTP listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
