package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jurikuronen/pangwes/distengine"
	"github.com/jurikuronen/pangwes/graphbuilder"
	"github.com/jurikuronen/pangwes/logging"
	"github.com/jurikuronen/pangwes/query"
	"github.com/jurikuronen/pangwes/searchjob"
)

var (
	solveEdgesPath   string
	solveQueriesPath string
	solveOutputPath  string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Answer point-to-point distance queries against one ordinary weighted graph",
	RunE:  runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.StringVar(&solveEdgesPath, "edges", "", "ordinary edges file (v w [weight])")
	f.StringVar(&solveQueriesPath, "queries", "", "queries file")
	f.StringVar(&solveOutputPath, "output", "", "output path (default stdout)")
	solveCmd.MarkFlagRequired("edges")
	solveCmd.MarkFlagRequired("queries")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()

	edgesFile, err := os.Open(solveEdgesPath)
	if err != nil {
		return err
	}
	defer edgesFile.Close()
	g, err := graphbuilder.BuildOrdinary(edgesFile, cfg)
	if err != nil {
		return err
	}

	queriesFile, err := os.Open(solveQueriesPath)
	if err != nil {
		return err
	}
	defer queriesFile.Close()
	qs, err := query.ReadQueries(queriesFile, cfg.QueriesOneBased, false)
	if err != nil {
		return err
	}

	jobs := searchjob.Schedule(toSearchJobQueries(qs.Entries))
	res := distengine.SolveBase(jobs, g, len(qs.Entries), cfg, logging.ZerologProgress{})

	out := os.Stdout
	if solveOutputPath != "" {
		f, err := os.Create(solveOutputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return query.WriteResults(out, qs.Entries, res, cfg)
}

func toSearchJobQueries(entries []query.Query) []searchjob.Query {
	out := make([]searchjob.Query, len(entries))
	for i, q := range entries {
		out[i] = searchjob.Query{V: q.V, W: q.W, Index: int64(i)}
	}
	return out
}
