package main

import (
	"strconv"

	"github.com/born-ml/backprop/internal/serialization"
	"github.com/born-ml/backprop/internal/tensor"
	"github.com/born-ml/backprop/internal/train"
	"github.com/pkg/errors"
)

// Checkpoint tensor names.
const (
	weightsKey = "weights"
	biasKey    = "bias"
)

// saveCheckpoint writes the trained parameters and the run settings to path.
func saveCheckpoint(path string, config train.Config, result *train.Result) error {
	metadata := map[string]string{
		"steps":    strconv.Itoa(config.Steps),
		"lr":       strconv.FormatFloat(config.LR, 'g', -1, 64),
		"momentum": strconv.FormatFloat(config.Momentum, 'g', -1, 64),
		"target":   strconv.FormatFloat(config.Target, 'g', -1, 64),
		"loss":     strconv.FormatFloat(result.Losses[len(result.Losses)-1], 'g', -1, 64),
	}
	err := serialization.WriteSafeTensors(path, map[string]*tensor.Array{
		weightsKey: result.Weights,
		biasKey:    result.Bias,
	}, metadata)
	return errors.Wrapf(err, "saving checkpoint %s", path)
}

// loadCheckpoint replaces the initial weights and bias of config with the
// ones stored at path.
func loadCheckpoint(path string, config *train.Config) error {
	arrays, _, err := serialization.ReadSafeTensors(path)
	if err != nil {
		return errors.Wrapf(err, "loading checkpoint %s", path)
	}

	weights, err := serialization.Lookup(arrays, weightsKey)
	if err != nil {
		return errors.Wrapf(err, "loading checkpoint %s", path)
	}
	bias, err := serialization.Lookup(arrays, biasKey)
	if err != nil {
		return errors.Wrapf(err, "loading checkpoint %s", path)
	}

	if config.Weights, err = toRows(weights); err != nil {
		return errors.Wrapf(err, "checkpoint %s: %s", path, weightsKey)
	}
	if config.Bias, err = toRows(bias); err != nil {
		return errors.Wrapf(err, "checkpoint %s: %s", path, biasKey)
	}
	return nil
}

func toRows(a *tensor.Array) ([][]float64, error) {
	shape := a.Shape()
	if shape.Rank() != 2 {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch, "want a matrix, got shape %s", shape)
	}
	rows := make([][]float64, shape[0])
	data := a.Data()
	for i := range rows {
		rows[i] = append([]float64(nil), data[i*shape[1]:(i+1)*shape[1]]...)
	}
	return rows, nil
}
