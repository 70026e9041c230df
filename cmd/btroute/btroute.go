package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/tkrajina/gpxgo/gpx"

	"btroute/internal/biketerra"
	"btroute/internal/track"
)

const version = "1.0.0"

var (
	output      string
	showVersion bool
	debug       bool
)

func init() {
	flag.StringVar(&output, "o", "", "output filename (default <route_id>.gpx)")
	flag.StringVar(&output, "out", "", "output filename (default <route_id>.gpx)")
	flag.BoolVar(&showVersion, "v", false, "print version and exit")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&debug, "debug", false, "dump decoded route metadata")
}

func main() {
	flag.Parse()
	if showVersion {
		fmt.Println("btroute " + version)
		return
	}
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: btroute [-o <path>] <route_id>")
		os.Exit(2)
	}
	routeID := flag.Arg(0)
	outFile := output
	if outFile == "" {
		outFile = routeID + ".gpx"
	}

	fmt.Printf("Fetching route %s...\n", routeID)
	raw, err := biketerra.NewClient().FetchRouteData(context.Background(), routeID)
	if err != nil {
		var httpErr *biketerra.HTTPError
		if errors.As(err, &httpErr) {
			fatalf("Error fetching route: %v", err)
		}
		fatalf("Network error: %v", err)
	}

	route, err := biketerra.DecodeRoute(raw)
	if err != nil {
		fatalf("Error parsing route data: %v", err)
	}
	if debug {
		spew.Dump(route.Meta)
	}

	doc, err := track.Build(route)
	if err != nil {
		fatalf("Error: %v", err)
	}
	xml, err := doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		fatalf("Error serializing GPX: %v", err)
	}
	if err := os.WriteFile(outFile, xml, 0o644); err != nil {
		fatalf("Error writing %s: %v", outFile, err)
	}

	fmt.Printf("Wrote %s (%d points)\n", outFile, len(route.Points))
	fmt.Printf("Route: %s\n", route.Name)
	if route.Meta.HasDistance {
		fmt.Printf("Distance: %.2f km\n", route.Meta.Distance/100000)
	}
	if route.Meta.HasElevation {
		fmt.Printf("Elevation: %.0f m\n", route.Meta.Elevation/100)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
