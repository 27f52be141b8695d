package main

import (
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/jurikuronen/pangwes/config"
	"github.com/jurikuronen/pangwes/logging"
)

var (
	flagThreads            int
	flagMaxDistance         float64
	flagKmerLength          int64
	flagGraphsOneBased      bool
	flagQueriesOneBased     bool
	flagOutputOneBased      bool
	flagSGGCountThreshold   int64
	flagLDDistance          float64
	flagLDDistanceMin       float64
	flagLDDistanceScore     float64
	flagLDDistanceNthScore  int64
	flagVerbose             bool
)

var rootCmd = &cobra.Command{
	Use:   "pangwes",
	Short: "Batch shortest-path distances and outlier thresholds over pangenome graphs",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Configure(os.Stderr, flagVerbose)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagThreads, "threads", 1, "worker thread count")
	pf.Float64Var(&flagMaxDistance, "max-distance", math.MaxFloat64, "distance cutoff")
	pf.Int64Var(&flagKmerLength, "kmer-length", 0, "k-mer length used to derive two-sided self-weights")
	pf.BoolVar(&flagGraphsOneBased, "graphs-one-based", false, "graph input ids are one-based")
	pf.BoolVar(&flagQueriesOneBased, "queries-one-based", false, "query input ids are one-based")
	pf.BoolVar(&flagOutputOneBased, "output-one-based", false, "shift output ids back to one-based")
	pf.Int64Var(&flagSGGCountThreshold, "sgg-count-threshold", 1, "minimum per-query sample count for outlier consideration")
	pf.Float64Var(&flagLDDistance, "ld-distance", -1, "linkage-disequilibrium cutoff; negative triggers automatic bisection")
	pf.Float64Var(&flagLDDistanceMin, "ld-distance-min", 0, "lower bisection bound for automatic LD search")
	pf.Float64Var(&flagLDDistanceScore, "ld-distance-score", 0.5, "fraction of the top score automatic LD search must retain")
	pf.Int64Var(&flagLDDistanceNthScore, "ld-distance-nth-score", 1, "rank from the top treated as the representative max score")
	pf.BoolVar(&flagVerbose, "verbose", false, "debug-level logging")

	rootCmd.AddCommand(solveCmd, outliersCmd)
}

func buildConfig() config.Config {
	return config.New(
		config.WithThreads(flagThreads),
		config.WithMaxDistance(flagMaxDistance),
		config.WithKmerLength(flagKmerLength),
		config.WithGraphsOneBased(flagGraphsOneBased),
		config.WithQueriesOneBased(flagQueriesOneBased),
		config.WithOutputOneBased(flagOutputOneBased),
		config.WithSGGCountThreshold(flagSGGCountThreshold),
		config.WithLDDistance(flagLDDistance),
		config.WithLDDistanceMin(flagLDDistanceMin),
		config.WithLDDistanceScore(flagLDDistanceScore),
		config.WithLDDistanceNthScore(flagLDDistanceNthScore),
	)
}
