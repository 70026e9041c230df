// btpoly prints a route's track as a Google encoded polyline, for pasting
// into tools that take polyline input instead of GPX.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/twpayne/go-polyline"

	"btroute/internal/biketerra"
)

var (
	inputJson = flag.String("input-json", "", "read a saved __data.json payload instead of fetching")
)

func main() {
	flag.Parse()

	var raw []byte
	var err error
	switch {
	case *inputJson != "":
		raw, err = os.ReadFile(*inputJson)
	case flag.NArg() == 1:
		raw, err = biketerra.NewClient().FetchRouteData(context.Background(), flag.Arg(0))
	default:
		fmt.Fprintln(os.Stderr, "usage: btpoly <route_id> | btpoly -input-json <path>")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching route: %v\n", err)
		os.Exit(1)
	}

	route, err := biketerra.DecodeRoute(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing route data: %v\n", err)
		os.Exit(1)
	}

	coords := make([][]float64, 0, len(route.Points))
	for _, p := range route.Points {
		coords = append(coords, []float64{p.Lat, p.Lng})
	}
	buf := polyline.EncodeCoords(coords)
	fmt.Printf("%s: %s\n", route.Name, buf)
}
