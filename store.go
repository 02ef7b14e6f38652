package folio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store persists named portfolios as JSON files in one directory, using the
// original dashboards' column-wise file shape:
//
//	{"tickers": ["AAPL"], "shares": [10], "buy_prices": [150.0]}
//
// Writes are whole-file and last-write-wins, there is no locking and no
// durability guarantee beyond the filesystem's.
type Store struct {
	dir string
}

const watchlistFile = "watchlist.json"

// portfolioFile is the on-disk shape of a named portfolio.
type portfolioFile struct {
	Tickers   []string  `json:"tickers"`
	Shares    []float64 `json:"shares"`
	BuyPrices []float64 `json:"buy_prices"`
}

// NewStore opens (creating if needed) the portfolio directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create portfolio directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// path returns the file path for a named portfolio after validating the name.
func (s *Store) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "watchlist" {
		return "", fmt.Errorf("invalid portfolio name %q", name)
	}
	return filepath.Join(s.dir, name+".json"), nil
}

// List returns the names of all stored portfolios, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list portfolios: %w", err)
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || name == watchlistFile {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads and validates a named portfolio. The holdings go through the
// same batch validation as interactive input.
func (s *Store) Load(name string) ([]Holding, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load portfolio %q: %w", name, err)
	}
	var file portfolioFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("cannot parse portfolio %q: %w", name, err)
	}
	holdings, err := ParseHoldings(file.Tickers, file.Shares, file.BuyPrices)
	if err != nil {
		return nil, fmt.Errorf("portfolio %q: %w", name, err)
	}
	return holdings, nil
}

// Save writes a named portfolio, replacing any previous content.
func (s *Store) Save(name string, holdings []Holding) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	file := portfolioFile{
		Tickers:   make([]string, 0, len(holdings)),
		Shares:    make([]float64, 0, len(holdings)),
		BuyPrices: make([]float64, 0, len(holdings)),
	}
	for _, h := range holdings {
		file.Tickers = append(file.Tickers, h.Symbol)
		file.Shares = append(file.Shares, h.Shares.AsFloat())
		file.BuyPrices = append(file.BuyPrices, h.BuyPrice.AsFloat())
	}
	content, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("cannot save portfolio %q: %w", name, err)
	}
	return nil
}

// Rename moves a portfolio to a new name. The target is overwritten if it
// exists, consistent with last-write-wins everywhere else.
func (s *Store) Rename(oldName, newName string) error {
	oldPath, err := s.path(oldName)
	if err != nil {
		return err
	}
	newPath, err := s.path(newName)
	if err != nil {
		return err
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("cannot rename portfolio %q to %q: %w", oldName, newName, err)
	}
	return nil
}

// Delete removes a named portfolio.
func (s *Store) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("cannot delete portfolio %q: %w", name, err)
	}
	return nil
}

// Watchlist returns the watched symbols, empty when none were saved yet.
func (s *Store) Watchlist() ([]string, error) {
	content, err := os.ReadFile(filepath.Join(s.dir, watchlistFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load watchlist: %w", err)
	}
	var symbols []string
	if err := json.Unmarshal(content, &symbols); err != nil {
		return nil, fmt.Errorf("cannot parse watchlist: %w", err)
	}
	return symbols, nil
}

// SaveWatchlist replaces the watchlist with the given symbols, uppercased
// and deduplicated, preserving first-seen order.
func (s *Store) SaveWatchlist(symbols []string) error {
	seen := make(map[string]bool)
	clean := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		sym = strings.ToUpper(strings.TrimSpace(sym))
		if sym == "" || seen[sym] {
			continue
		}
		seen[sym] = true
		clean = append(clean, sym)
	}
	content, err := json.MarshalIndent(clean, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, watchlistFile), content, 0644); err != nil {
		return fmt.Errorf("cannot save watchlist: %w", err)
	}
	return nil
}
