package main

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DannyStoll1/marked-cycles/libcycles"
	"github.com/DannyStoll1/marked-cycles/mcycles"
)

// SweepConfig drives a batch run over a period range.
type SweepConfig struct {
	Family     string         `yaml:"family"` // "mc" or "dyn"
	CritPeriod int32          `yaml:"crit_period"`
	MinPeriod  mcycles.Period `yaml:"min_period"`
	MaxPeriod  mcycles.Period `yaml:"max_period"`
	FaceStats  bool           `yaml:"face_stats"` // CSV face stats instead of summaries
}

func loadSweepConfig(path string) (*SweepConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &SweepConfig{
		Family:     "mc",
		CritPeriod: 1,
		MinPeriod:  2,
	}
	if err = yaml.Unmarshal(buf, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *SweepConfig) family() (mcycles.CurveFamily, error) {
	spec, err := mcycles.ParseCurveSpec(cfg.Family + "(2)")
	if err != nil {
		return 0, err
	}
	return spec.Family, nil
}

func runSweep(out io.Writer, cfg *SweepConfig, cat mcycles.Catalog) error {
	family, err := cfg.family()
	if err != nil {
		return err
	}

	if cfg.FaceStats {
		return printFaceStats(out, family, cfg.CritPeriod, cfg.MaxPeriod, cat)
	}

	stream, err := libcycles.StreamCovers(family, cfg.CritPeriod, cfg.MinPeriod, cfg.MaxPeriod)
	if err != nil {
		return err
	}
	if cat != nil && !cat.IsReadOnly() {
		stream = stream.AddTo(cat)
	}

	for X := range stream.Outlet {
		X.WriteAsString(out, mcycles.DefaultPrintOpts)
	}
	return nil
}
