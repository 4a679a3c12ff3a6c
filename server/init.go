package server

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kaelvn/cifarduel/classify"
	"github.com/kaelvn/cifarduel/config"
)

var (
	pipeline *classify.Pipeline
	baseline classify.Engine
	quant    classify.Engine
)

// Init loads the baseline model and, when its artifact exists, the
// quantized one. A missing quantized model degrades the service to
// single-model mode instead of failing startup.
func Init() error {
	pipeline = classify.NewPipeline()
	pipeline.Norm = classify.Normalization{Mean: config.C().Mean, Std: config.C().Std}

	labelsPath := filepath.Join(config.C().ModelDir, config.C().LabelsFileName)
	if labels, err := classify.ReadLabels(labelsPath); err == nil && len(labels) == classify.NumClasses {
		pipeline.Labels = labels
	} else {
		slog.Info("Labels file missing or malformed, using built-in class table", slog.String("path", labelsPath))
	}

	modelPath := filepath.Join(config.C().ModelDir, config.C().ModelFileName)
	m, err := classify.LoadModel("fp32", modelPath)
	if err != nil {
		return err
	}
	baseline = m

	quantPath := filepath.Join(config.C().ModelDir, config.C().QuantFileName)
	if _, err := os.Stat(quantPath); err != nil {
		slog.Info("Quantized model not present, comparison disabled", slog.String("path", quantPath))
		return nil
	}
	q, err := classify.LoadModel("int8", quantPath)
	if err != nil {
		Close()
		return err
	}
	quant = q
	return nil
}

func Close() {
	if m, ok := baseline.(*classify.Model); ok {
		m.Close()
	}
	baseline = nil
	if m, ok := quant.(*classify.Model); ok {
		m.Close()
	}
	quant = nil
}
