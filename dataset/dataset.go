// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides small 2D point classification datasets.
package dataset

import (
	"math/rand"

	"github.com/ember-ml/ember/internal/dataset"
)

// Point is a single 2D sample in the unit square.
type Point = dataset.Point

// Dataset pairs points with their 0/1 labels.
type Dataset = dataset.Dataset

// Names lists the available generators.
func Names() []string {
	return dataset.Names()
}

// ByName builds the named dataset with n points drawn from rng.
func ByName(name string, n int, rng *rand.Rand) (*Dataset, error) {
	return dataset.ByName(name, n, rng)
}
