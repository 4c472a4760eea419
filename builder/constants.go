// SPDX-License-Identifier: MIT
// Package: basket/builder
//
// constants.go - method tags and parameter domains shared by constructors.

package builder

// Method tags prefix constructor errors.
const (
	// MethodBuildTransactions is the canonical name of the orchestrator.
	MethodBuildTransactions = "BuildTransactions"
	// MethodRandomBaskets is the canonical name for the RandomBaskets constructor.
	MethodRandomBaskets = "RandomBaskets"
	// MethodZipfBaskets is the canonical name for the ZipfBaskets constructor.
	MethodZipfBaskets = "ZipfBaskets"
	// MethodPlantPattern is the canonical name for the PlantPattern constructor.
	MethodPlantPattern = "PlantPattern"
	// MethodFixed is the canonical name for the Fixed constructor.
	MethodFixed = "Fixed"
)

// MinTransactions is the smallest basket count a generating constructor accepts.
const MinTransactions = 1

// MinItems is the smallest item universe a generating constructor accepts.
const MinItems = 1

// MinProbability is the lower bound for inclusion probabilities, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for inclusion probabilities, inclusive.
const MaxProbability = 1.0

// MinZipfExponent is the exclusive lower bound of the Zipf exponent s.
const MinZipfExponent = 1.0
