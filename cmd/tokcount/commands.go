package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cognicore/tokenkit/internal/corpus"
	"github.com/cognicore/tokenkit/internal/logger"
	"github.com/cognicore/tokenkit/pkg/tokenkit"
	"github.com/cognicore/tokenkit/pkg/tokenkit/analytics"
	"github.com/cognicore/tokenkit/pkg/tokenkit/analyzers"
	"github.com/cognicore/tokenkit/pkg/tokenkit/stoplist"
	"github.com/cognicore/tokenkit/pkg/tokenkit/store/sqlite"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		name      string
		list      bool
		positions bool
	)
	cmd := &cobra.Command{
		Use:   "analyze [TEXT...]",
		Short: "Print the live tokens of TEXT (or stdin), one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, n := range a.registry.Names() {
					fmt.Fprintln(out, n)
				}
				return nil
			}

			an, err := a.registry.Get(name)
			if err != nil {
				return err
			}
			text, err := inputText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			for _, tok := range an.Analyze(text) {
				if positions {
					fmt.Fprintf(out, "%d\t%s\n", tok.Position, tok.Text)
				} else {
					fmt.Fprintln(out, tok.Text)
				}
			}
			return nil
		},
	}
	addAnalyzerFlag(cmd, &name, analyzers.Kapiche)
	cmd.Flags().BoolVar(&list, "list", false, "list analyzer names and exit")
	cmd.Flags().BoolVar(&positions, "positions", false, "prefix each token with its position")
	return cmd
}

func newCountCmd(a *app) *cobra.Command {
	var (
		name   string
		dbPath string
	)
	cmd := &cobra.Command{
		Use:   "count FILE...",
		Short: "Count live tokens per document",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := logger.FromContext(ctx)

			docs, err := corpus.LoadFiles(args, log)
			if err != nil {
				return err
			}

			opts := tokenkit.Options{Registry: a.registry, Analyzer: name, Logger: log}
			if dbPath != "" {
				st, err := sqlite.OpenSQLite(ctx, dbPath, sqlite.WithLogger(log))
				if err != nil {
					return fmt.Errorf("open store: %w", err)
				}
				opts.Store = st
			}
			counter, err := tokenkit.New(opts)
			if err != nil {
				if opts.Store != nil {
					opts.Store.Close()
				}
				return err
			}
			defer counter.Close()

			out := cmd.OutOrStdout()
			var total int64
			for _, doc := range docs {
				rec, err := counter.Count(ctx, doc.Source, doc.Text)
				if err != nil {
					return err
				}
				total += rec.Tokens
				fmt.Fprintf(out, "%s\t%d\n", doc.Source, rec.Tokens)
			}
			fmt.Fprintf(out, "total\t%d\n", total)
			log.Info("counted documents", zap.String("analyzer", name), zap.Int("docs", len(docs)), zap.Int64("tokens", total))
			return nil
		},
	}
	addAnalyzerFlag(cmd, &name, analyzers.KapicheLowerStopwords)
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to record counts in (optional)")
	return cmd
}

type topReport struct {
	Analyzer    string               `json:"analyzer"`
	TotalDocs   int64                `json:"total_docs"`
	TotalTokens int64                `json:"total_tokens"`
	Terms       []analytics.TermStat `json:"terms"`
}

func newTopCmd(a *app) *cobra.Command {
	var (
		name  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "top FILE...",
		Short: "Report the most frequent terms as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.FromContext(cmd.Context())

			an, err := a.registry.Get(name)
			if err != nil {
				return err
			}
			docs, err := corpus.LoadFiles(args, log)
			if err != nil {
				return err
			}

			collector := analytics.NewCollector()
			for _, doc := range docs {
				collector.ProcessText(an, doc.Text)
			}
			stats := collector.Snapshot()

			report := topReport{
				Analyzer:    name,
				TotalDocs:   stats.TotalDocs,
				TotalTokens: stats.TotalTokens,
				Terms:       stats.Top(limit),
			}
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal report: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	addAnalyzerFlag(cmd, &name, analyzers.KapicheLowerStopwords)
	cmd.Flags().IntVarP(&limit, "limit", "k", 20, "number of terms to report (0 for all)")
	return cmd
}

func newStopwordsCmd() *cobra.Command {
	var expanded bool
	cmd := &cobra.Command{
		Use:   "stopwords",
		Short: "Print the curated English stopword list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			words := stoplist.English()
			if expanded {
				words = stoplist.EnglishExpanded()
			}
			out := cmd.OutOrStdout()
			for _, w := range words {
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&expanded, "expanded", false, "include every apostrophe variant")
	return cmd
}

func inputText(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
