package dataset

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/jmagar/ytdash/internal/models"
	"golang.org/x/sync/errgroup"
)

// DefaultCountries are the country exports shipped with the dashboard.
var DefaultCountries = []string{"CA", "DE", "FR", "GB", "IN", "JP", "KR", "MX", "RU", "US"}

// DefaultFilePrefix is prepended to the lowercase country code to form a file name.
const DefaultFilePrefix = "preprocessed_table_yt_table_"

// Config tells Load where the exports live.
type Config struct {
	Dir       string
	Prefix    string
	Countries []string
}

// Path returns the export file for a country
func (c Config) Path(country string) string {
	return filepath.Join(c.Dir, c.Prefix+strings.ToLower(country)+".csv")
}

// Store maps country keys to their datasets. It is built once and has no
// mutators, so it is safe to share between requests.
type Store struct {
	keys     []string
	datasets map[string]*models.Dataset
}

// NormalizeKey is the canonical form of a country key
func NormalizeKey(country string) string {
	return strings.ToUpper(strings.TrimSpace(country))
}

// NewStore builds a store from already parsed datasets, keeping their order.
func NewStore(datasets ...*models.Dataset) (*Store, error) {
	s := &Store{
		keys:     make([]string, 0, len(datasets)),
		datasets: make(map[string]*models.Dataset, len(datasets)),
	}

	for _, ds := range datasets {
		key := NormalizeKey(ds.Country)
		if key == "" {
			return nil, fmt.Errorf("dataset from %q has no country", ds.Source)
		}
		if _, exists := s.datasets[key]; exists {
			return nil, fmt.Errorf("duplicate dataset for country %s", key)
		}
		ds.Country = key
		s.keys = append(s.keys, key)
		s.datasets[key] = ds
	}

	return s, nil
}

// Load reads every configured export concurrently. Any failure aborts the
// whole load.
func Load(ctx context.Context, cfg Config) (*Store, error) {
	if len(cfg.Countries) == 0 {
		return nil, fmt.Errorf("no countries configured")
	}

	loaded := make([]*models.Dataset, len(cfg.Countries))
	g, gctx := errgroup.WithContext(ctx)

	for i, country := range cfg.Countries {
		key := NormalizeKey(country)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			ds, err := ReadFile(key, cfg.Path(key))
			if err != nil {
				return err
			}

			log.Printf("Loaded %d rows for %s from %s (%d unparseable dates)",
				ds.Len(), key, ds.Source, ds.DateParseFailures)
			loaded[i] = ds
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewStore(loaded...)
}

// Keys returns the country keys in load order
func (s *Store) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Get returns the dataset for a country.
func (s *Store) Get(country string) (*models.Dataset, bool) {
	ds, ok := s.datasets[NormalizeKey(country)]
	return ds, ok
}

func (s *Store) Len() int {
	return len(s.keys)
}

// Summaries describes every dataset in load order.
func (s *Store) Summaries() []models.CountrySummary {
	summaries := make([]models.CountrySummary, 0, len(s.keys))
	for _, key := range s.keys {
		ds := s.datasets[key]
		summaries = append(summaries, models.CountrySummary{
			Country:             key,
			Rows:                ds.Len(),
			Source:              ds.Source,
			DateParseFailures:   ds.DateParseFailures,
			NumberParseFailures: ds.NumberParseFailures,
		})
	}
	return summaries
}
