package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/interface/backend"
	"airport-ops-service/internal/usecase"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/utils"
)

const usage = `Usage: opsctl [-api URL] [-timeout D] <command> [args]

Commands:
  search <text>                    natural language flight search
  chat <text>                      ask the operations assistant
  alerts [-type T] [-resolved B]   list alerts
  runways                          list runway metrics with load status
`

var (
	warnColor     = color.New(color.FgYellow)
	criticalColor = color.New(color.FgRed, color.Bold)
	infoColor     = color.New(color.FgCyan)
	okColor       = color.New(color.FgGreen)
)

func main() {
	apiURL := flag.String("api", envOr("OPS_API_URL", "http://localhost:8000"), "base URL of the operations API")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	verbose := flag.Bool("v", false, "log backend failures")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log := logger.NewNopLogger()
	if *verbose {
		log = logger.NewLogger("debug", true)
	}
	client := backend.NewClient(*apiURL, *timeout, nil, log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cmd, args := flag.Arg(0), flag.Args()[1:]
	if err := run(ctx, client, os.Stdout, cmd, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(ctx context.Context, client *backend.Client, out io.Writer, cmd string, args []string) error {
	switch cmd {
	case "search":
		return runSearch(ctx, client, out, strings.Join(args, " "))
	case "chat":
		return runChat(ctx, client, out, strings.Join(args, " "))
	case "alerts":
		return runAlerts(ctx, client, out, args)
	case "runways":
		return runRunways(ctx, client, out)
	default:
		return fmt.Errorf("unknown command %q\n\n%s", cmd, usage)
	}
}

func runSearch(ctx context.Context, client *backend.Client, out io.Writer, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("search needs a query, e.g. opsctl search flights to London after 3 PM")
	}

	result := client.SearchFlights(ctx, text)
	printFallback(out, result.Fallback, result.Err)

	t := newTable("FLIGHT", "AIRLINE", "ROUTE", "DEPARTURE", "STATUS", "GATE")
	for _, f := range result.Value {
		t.add(
			f.FlightNumber,
			f.Airline,
			fmt.Sprintf("%s → %s", utils.CityName(f.Origin), utils.CityName(f.Destination)),
			f.DepartureTime.Local().Format("Mon 15:04"),
			string(f.Status),
			f.Gate,
		)
	}
	if err := t.render(out); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d flight(s)\n", len(result.Value))
	return nil
}

func runChat(ctx context.Context, client *backend.Client, out io.Writer, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("chat needs a message")
	}

	result := client.SendMessage(ctx, text)
	printFallback(out, result.Fallback, result.Err)

	fmt.Fprintln(out, result.Value.Response)
	if len(result.Value.Sources) > 0 {
		infoColor.Fprintf(out, "(%s, confidence %.1f)\n", strings.Join(result.Value.Sources, ", "), result.Value.Confidence)
	}
	return nil
}

func runAlerts(ctx context.Context, client *backend.Client, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("alerts", flag.ContinueOnError)
	fs.SetOutput(out)
	alertType := fs.String("type", "", "critical, warning or info")
	resolved := fs.String("resolved", "", "true or false")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := &backend.AlertFilter{Type: entity.AlertType(*alertType)}
	if filter.Type != "" && !filter.Type.Valid() {
		return fmt.Errorf("unknown alert type %q", *alertType)
	}
	if *resolved != "" {
		value, err := strconv.ParseBool(*resolved)
		if err != nil {
			return fmt.Errorf("resolved must be true or false")
		}
		filter.Resolved = &value
	}

	result := client.ListAlerts(ctx, filter)
	printFallback(out, result.Fallback, result.Err)

	t := newTable("ID", "TYPE", "TITLE", "RAISED", "STATE").style(1, severity)
	for _, a := range result.Value {
		state := "active"
		if a.Resolved {
			state = "resolved"
		}
		t.add(
			strconv.FormatUint(uint64(a.ID), 10),
			string(a.Type),
			truncate(a.Title, 40),
			a.Timestamp.Local().Format("Jan 02 15:04"),
			state,
		)
	}
	return t.render(out)
}

func runRunways(ctx context.Context, client *backend.Client, out io.Writer) error {
	result := client.ListRunwayMetrics(ctx)
	printFallback(out, result.Fallback, result.Err)

	t := newTable("RUNWAY", "UTILIZATION", "DELAYS", "CONFLICTS", "STATUS", "SAMPLED").style(4, loadStatus)
	for _, m := range result.Value {
		status := usecase.ClassifyRunway(m)
		t.add(
			m.Runway,
			fmt.Sprintf("%.1f%%", m.Utilization),
			strconv.Itoa(m.Delays),
			strconv.Itoa(m.Conflicts),
			status.Status,
			m.Timestamp.Local().Format("Jan 02 15:04"),
		)
	}
	return t.render(out)
}

func printFallback(out io.Writer, fallback bool, err error) {
	if fallback {
		warnColor.Fprintf(out, "backend unavailable, showing fallback data: %v\n", err)
	}
}

func severity(cell string) *color.Color {
	switch entity.AlertType(cell) {
	case entity.AlertCritical:
		return criticalColor
	case entity.AlertWarning:
		return warnColor
	default:
		return infoColor
	}
}

func loadStatus(cell string) *color.Color {
	switch {
	case strings.HasPrefix(cell, "High"), strings.HasSuffix(cell, "Conflicts"):
		return criticalColor
	case strings.HasPrefix(cell, "Moderate"):
		return warnColor
	default:
		return okColor
	}
}

func envOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
