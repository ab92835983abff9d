// Command ucsroute is the single-run batch entry point: build the road
// map, run the one uniform-cost search, write the plain-text report.
//
// With no flags it reproduces the stock run — Elmira to New York City over
// the built-in map, report to ucs_output.txt. The flags only re-point the
// same single search; there is no server, no persistence, no second query.
package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/citymaps/ucsearch/citymap"
	"github.com/citymaps/ucsearch/core"
	"github.com/citymaps/ucsearch/mapfile"
	"github.com/citymaps/ucsearch/report"
	"github.com/citymaps/ucsearch/ucs"
)

var (
	rootCmd = &cobra.Command{
		Use:           "ucsroute",
		Short:         "Least-cost route search over a fixed road map",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flagFrom  = rootCmd.Flags().String("from", citymap.DefaultStart, "start city")
	flagTo    = rootCmd.Flags().String("to", citymap.DefaultGoal, "goal city")
	flagMap   = rootCmd.Flags().String("map", "", "HCL road-map file (default: built-in New York map)")
	flagOut   = rootCmd.Flags().String("out", "ucs_output.txt", "report file path")
	flagDebug = rootCmd.Flags().Bool("debug", false, "enable debug logging")
)

func run(cmd *cobra.Command, args []string) error {
	if *flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	g, err := loadGraph()
	if err != nil {
		return err
	}
	log.Debug().
		Int("cities", g.VertexCount()).
		Int("roads", g.EdgeCount()).
		Msg("road map ready")

	res, err := ucs.Search(g, *flagFrom, *flagTo,
		ucs.WithOnExpand(func(id string, cost int64) {
			log.Debug().Str("city", id).Int64("cost", cost).Msg("expand")
		}),
	)
	if err != nil {
		return err
	}

	if err := report.WriteFile(res, *flagOut); err != nil {
		return err
	}

	log.Info().
		Str("route", strings.Join(res.Path, " -> ")).
		Int64("km", res.TotalCost).
		Int("generated", res.NodesGenerated).
		Str("report", *flagOut).
		Msg("route found")

	return nil
}

// loadGraph picks the graph data source: an HCL map file when --map is
// given, the built-in New York map otherwise.
func loadGraph() (*core.Graph, error) {
	if *flagMap == "" {
		return citymap.NewYork(), nil
	}

	return mapfile.Load(*flagMap)
}

func init() {
	rootCmd.RunE = run
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("route search failed")
	}
}
