// Command fes-tide is a CLI tidal-prediction tool: it loads a FES-style
// NetCDF atlas directory and prints a prediction for one point across a
// list of epochs. With -station-csv it predicts from that CSV's constituents
// alone instead; the atlas, -data and -lon are then not used. Grounded on
// the teacher's cmd/fes-generator and cmd/jma-harmonics, generalized from
// their JMA-specific flags to internal/evaluate's engine-agnostic API.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ngs-tides/tidekit/internal/atlasio"
	"github.com/ngs-tides/tidekit/internal/evaluate"
	"github.com/ngs-tides/tidekit/internal/settings"
)

func main() {
	dataDir := flag.String("data", "data/fes", "FES-style NetCDF atlas directory")
	lon := flag.Float64("lon", 0, "query longitude, degrees east")
	lat := flag.Float64("lat", 0, "query latitude, degrees north")
	epochsFlag := flag.String("epochs", "", "comma-separated Unix epoch seconds")
	overridePath := flag.String("station-csv", "", "optional station constituent CSV (constituent,amplitude_m,phase_deg); when set, predicts from it instead of the atlas")
	perth := flag.Bool("perth", false, "use the Doodson/Perth engine preset instead of FES/Darwin")
	flag.Parse()

	epochs, err := parseEpochs(*epochsFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fes-tide:", err)
		os.Exit(1)
	}

	cfg := settings.Fes()
	if *perth {
		cfg = settings.Perth()
	}

	var result evaluate.Result
	if *overridePath != "" {
		constants, err := atlasio.LoadStationCSV(*overridePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "fes-tide:", err)
			os.Exit(1)
		}
		result, err = evaluate.FromConstituents(atlasio.ToConstants(constants), epochs, *lat, cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "fes-tide:", err)
			os.Exit(1)
		}
	} else {
		model, err := atlasio.LoadCartesianDirectory(*dataDir, atlasio.DefaultConfig())
		if err != nil {
			fmt.Fprintln(os.Stderr, "fes-tide:", err)
			os.Exit(1)
		}
		atlas := evaluate.FromCartesian(model)
		result, err = evaluate.EvaluateTide(atlas, epochs, repeat(*lon, len(epochs)), repeat(*lat, len(epochs)), cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "fes-tide:", err)
			os.Exit(1)
		}
	}

	fmt.Println("epoch,tide_cm,lp_tide_cm,quality")
	for i, e := range epochs {
		fmt.Printf("%.0f,%.4f,%.4f,%d\n", e, result.Tide[i], result.LPTide[i], result.Quality[i])
	}
}

func parseEpochs(csv string) ([]float64, error) {
	if csv == "" {
		return nil, fmt.Errorf("missing -epochs")
	}
	parts := strings.Split(csv, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid epoch %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
