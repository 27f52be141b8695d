package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jurikuronen/pangwes/distengine"
	"github.com/jurikuronen/pangwes/graphbuilder"
	"github.com/jurikuronen/pangwes/logging"
	"github.com/jurikuronen/pangwes/outlier"
	"github.com/jurikuronen/pangwes/query"
	"github.com/jurikuronen/pangwes/searchjob"
)

var (
	outliersUnitigsPath string
	outliersEdgesPath   string
	outliersPathsFile   string
	outliersQueriesPath string
	outliersOutputPath  string
	outliersStatsPath   string
)

var outliersCmd = &cobra.Command{
	Use:   "outliers",
	Short: "Fold per-genome SGG distances into aggregates and report outlier thresholds",
	RunE:  runOutliers,
}

func init() {
	f := outliersCmd.Flags()
	f.StringVar(&outliersUnitigsPath, "unitigs", "", "cdBG unitigs file")
	f.StringVar(&outliersEdgesPath, "edges", "", "cdBG edges file")
	f.StringVar(&outliersPathsFile, "paths", "", "file listing one SGG edges file path per line")
	f.StringVar(&outliersQueriesPath, "queries", "", "queries file")
	f.StringVar(&outliersOutputPath, "output", "", "aggregate results output path (default stdout)")
	f.StringVar(&outliersStatsPath, "outlier-output", "", "outlier stats output path (default stdout)")
	outliersCmd.MarkFlagRequired("unitigs")
	outliersCmd.MarkFlagRequired("edges")
	outliersCmd.MarkFlagRequired("paths")
	outliersCmd.MarkFlagRequired("queries")
}

func runOutliers(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()

	unitigsFile, err := os.Open(outliersUnitigsPath)
	if err != nil {
		return err
	}
	defer unitigsFile.Close()
	edgesFile, err := os.Open(outliersEdgesPath)
	if err != nil {
		return err
	}
	defer edgesFile.Close()
	base, err := graphbuilder.BuildCDBG(unitigsFile, edgesFile, cfg)
	if err != nil {
		return err
	}

	sggPaths, err := readLines(outliersPathsFile)
	if err != nil {
		return err
	}
	readers := make([]io.Reader, 0, len(sggPaths))
	for _, p := range sggPaths {
		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		readers = append(readers, f)
	}

	queriesFile, err := os.Open(outliersQueriesPath)
	if err != nil {
		return err
	}
	defer queriesFile.Close()
	qs, err := query.ReadQueries(queriesFile, cfg.QueriesOneBased, true)
	if err != nil {
		return err
	}

	jobs := searchjob.Schedule(toSearchJobQueries(qs.Entries))
	aggregates, err := distengine.SolveSGGBatches(base, readers, jobs, len(qs.Entries), cfg, logging.ZerologProgress{})
	if err != nil {
		return err
	}

	params, _ := outlier.Determine(aggregates, toScoredQueries(qs.Entries), cfg)

	out := os.Stdout
	if outliersOutputPath != "" {
		f, err := os.Create(outliersOutputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := query.WriteAggregateResults(out, qs.Entries, aggregates, cfg); err != nil {
		return err
	}

	statsOut := os.Stdout
	if outliersStatsPath != "" {
		f, err := os.Create(outliersStatsPath)
		if err != nil {
			return err
		}
		defer f.Close()
		statsOut = f
	}
	return query.WriteOutlierStats(statsOut, params)
}

func toScoredQueries(entries []query.Query) []outlier.ScoredQuery {
	out := make([]outlier.ScoredQuery, len(entries))
	for i, q := range entries {
		out[i] = outlier.ScoredQuery{V: q.V, W: q.W, Score: q.Score}
	}
	return out
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
