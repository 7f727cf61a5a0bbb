// Package planner decides which bundle variants a run builds.
package planner

import "go.trai.ch/bundle/internal/core/domain"

// Plan returns the variants to build for mode, in build order.
//
// Production builds every variant. Test runs skip the unminified variants,
// which only serve local development.
func Plan(mode domain.RunMode) []domain.Variant {
	if mode == domain.RunModeTest {
		return []domain.Variant{
			domain.NewVariant(false, true),
			domain.NewVariant(true, true),
		}
	}

	return []domain.Variant{
		domain.NewVariant(false, false),
		domain.NewVariant(false, true),
		domain.NewVariant(true, false),
		domain.NewVariant(true, true),
	}
}
