package dataset

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"

	"github.com/meeplelab/gamescout/internal/domain/game"
	"github.com/meeplelab/gamescout/internal/domain/neighbor"
)

// FileSource loads the dataset from JSON documents on disk. Files ending
// in .gz or .zst are decompressed transparently (the shipped dumps are
// large). DescriptionsPath is optional.
type FileSource struct {
	GamesPath        string
	NeighborsPath    string
	DescriptionsPath string
}

var _ Source = (*FileSource)(nil)

// Load reads and decodes the documents concurrently.
func (s *FileSource) Load(ctx context.Context) (*Dataset, error) {
	var (
		games     map[string]*game.Record
		neighbors map[string][]neighbor.Entry
		desc      map[string]string
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := readDataFile(s.GamesPath)
		if err != nil {
			return err
		}
		games, err = decodeGames(data)
		return err
	})
	g.Go(func() error {
		data, err := readDataFile(s.NeighborsPath)
		if err != nil {
			return err
		}
		neighbors, err = decodeNeighbors(data)
		return err
	})
	if s.DescriptionsPath != "" {
		g.Go(func() error {
			data, err := readDataFile(s.DescriptionsPath)
			if err != nil {
				return err
			}
			desc, err = decodeDescriptions(data)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mergeDescriptions(games, desc)
	return &Dataset{Games: games, Neighbors: neighbors}, nil
}

// readDataFile reads a file, decompressing by extension.
func readDataFile(path string) ([]byte, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("zstd %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
