package main

import (
	"io"
	"log/slog"

	"github.com/MikeSquared-Agency/CharMTI/internal/bank"
	"github.com/MikeSquared-Agency/CharMTI/internal/catalog"
	"github.com/MikeSquared-Agency/CharMTI/internal/scoring"
)

// sourceFlags are the --bank and --catalog flags shared by the scoring
// commands. Empty paths select the embedded data.
type sourceFlags struct {
	bankPath    string
	catalogPath string
}

func (s sourceFlags) loadBank() (*bank.Bank, error) {
	if s.bankPath == "" {
		return bank.Default(), nil
	}
	return bank.LoadFile(s.bankPath)
}

func (s sourceFlags) loadCatalog() (*catalog.Catalog, error) {
	if s.catalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(s.catalogPath)
}

func (s sourceFlags) engine() (*scoring.Engine, error) {
	b, err := s.loadBank()
	if err != nil {
		return nil, err
	}
	c, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}
	return scoring.NewEngine(b, c, slog.New(slog.NewTextHandler(io.Discard, nil))), nil
}
