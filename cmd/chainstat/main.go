// Command chainstat loads newline separated keys into a hash set and reports how they spread over its buckets.
//
//	chainstat [file...]
//
// Keys are read from stdin when no file is given. See Config for the environment variables.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	Go_HashTable "github.com/g-m-twostay/go-hashtable"
	"github.com/g-m-twostay/go-hashtable/Sets/HashSet"
	"github.com/g-m-twostay/go-hashtable/Sets/MultiSet"
	"github.com/g-m-twostay/go-hashtable/Tables/HashTable"
	"github.com/g-m-twostay/go-hashtable/internal/log"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := log.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	s, err := run(cfg, logger, os.Args[1:], os.Stdin)
	s.Log(logger)
	if err != nil {
		logger.Error("load failed", zap.Error(err))
		os.Exit(1)
	}
}

func eq(a, b string) bool {
	return a == b
}

// run loads every input into a fresh table and returns its stats. Failing inputs don't stop the others.
func run(cfg *Config, logger *zap.Logger, files []string, stdin io.Reader) (Stats, error) {
	h := Go_HashTable.MakeHasher()
	var t *HashTable.Table[string, string]
	var add func(string) error
	if cfg.Multi {
		s := MultiSet.NewFunc[string](cfg.Buckets, h.HashString, eq)
		t, add = s.Table(), s.Add
	} else {
		s := HashSet.NewFunc[string](cfg.Buckets, h.HashString, eq)
		t, add = s.Table(), func(k string) error {
			_, err := s.Put(k)
			return err
		}
	}
	t.Log = logger.Named("table")

	var errs error
	if len(files) == 0 {
		n, err := load(stdin, add)
		logger.Debug("loaded", zap.String("input", "stdin"), zap.Int("lines", n))
		errs = err
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		n, err := load(f, add)
		f.Close()
		logger.Debug("loaded", zap.String("input", name), zap.Int("lines", n))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return Collect(t, cfg.Top), errs
}

// load adds every non-empty line of r and returns the number of lines added.
func load(r io.Reader, add func(string) error) (n int, err error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			if err = add(line); err != nil {
				return
			}
			n++
		}
	}
	return n, sc.Err()
}
