package core

import (
	"context"
	"errors"

	"github.com/JonMunkholm/addrjoin/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Pipeline loads two CSV files, joins the second into the first and writes
// the result. The zero value is not usable; use NewPipeline.
type Pipeline struct {
	Load LoadOptions
	Key  JoinKey
}

// NewPipeline returns a pipeline joining on AddressKey with the default
// load options and the given input size limit.
func NewPipeline(maxFileSize int64) *Pipeline {
	opts := DefaultLoadOptions()
	opts.MaxFileSize = maxFileSize
	return &Pipeline{Load: opts, Key: AddressKey}
}

// ErrNoJoinKey is returned by Run when the pipeline has no key columns.
var ErrNoJoinKey = errors.New("pipeline has no join key columns")

// Run executes one join. Both inputs are loaded concurrently and the join
// starts only after both have loaded. Any load failure aborts the run before
// the output file is created.
func (p *Pipeline) Run(ctx context.Context, primaryPath, lookupPath, outputPath string) (JoinStats, error) {
	if len(p.Key) == 0 {
		return JoinStats{}, ErrNoJoinKey
	}

	logger := logging.FromContext(ctx)
	logger.Info("joining data", "inputs", []string{primaryPath, lookupPath})

	var primary, lookup *Table
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := LoadTable(gctx, primaryPath, p.Load)
		primary = t
		return err
	})
	g.Go(func() error {
		t, err := LoadTable(gctx, lookupPath, p.Load)
		lookup = t
		return err
	})
	if err := g.Wait(); err != nil {
		return JoinStats{}, err
	}

	stats := Join(primary, lookup, p.Key)
	if stats.DuplicateKeys > 0 {
		logger.Warn("lookup table has duplicate join keys, first match used",
			"file", lookupPath, "shadowed", stats.DuplicateKeys)
	}
	logger.Info("no matches for records", "count", stats.NoMatch, "matched", stats.Matched)

	logger.Info("writing output", "file", outputPath)
	if err := WriteTable(outputPath, primary); err != nil {
		return stats, err
	}

	return stats, nil
}
