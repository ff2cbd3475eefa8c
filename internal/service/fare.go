package service

import (
	"math"

	"faregateway/internal/domain"
)

// FareService computes multi-leg fare breakdowns for the trip planner.
// It is pure and stateless: safe for unlimited concurrent use.
type FareService struct {
	tariff domain.Tariff
}

// NewFareService creates a new FareService with the given tariff.
func NewFareService(tariff domain.Tariff) *FareService {
	return &FareService{tariff: tariff}
}

// FareOptions are the per-quote extras.
type FareOptions struct {
	IncludeGuide bool
}

// ComputeFare prices an ordered route against a distance source.
//
// Each consecutive pair becomes a leg costing base + round(km * rate). The
// vehicle multiplier applies to the leg sum; the multi-stop and guide
// surcharges only ever add on top. A route with a single stop yields no legs
// and a zero intercity sum.
func (s *FareService) ComputeFare(route []domain.Stop, distances domain.DistanceSource, vehicle domain.VehicleClass, opts FareOptions) (*domain.FareBreakdown, error) {
	if len(route) == 0 {
		return nil, ErrEmptyRoute
	}
	if vehicle.Multiplier <= 0 {
		return nil, ErrUnknownVehicleClass
	}

	legs := make([]domain.Leg, 0, len(route)-1)
	var intercitySum int64
	for i := 0; i < len(route)-1; i++ {
		from, to := route[i], route[i+1]
		km, ok := distances.Lookup(from, to)
		if !ok {
			return nil, &MissingDistanceError{From: from, To: to}
		}
		cost := s.tariff.BaseFlatPerLeg + roundHalfUp(km*s.tariff.PerKmRate)
		legs = append(legs, domain.Leg{From: from, To: to, DistanceKm: km, Cost: cost})
		intercitySum += cost
	}

	subtotal := roundHalfUp(float64(intercitySum) * vehicle.Multiplier)
	if len(legs) >= 2 {
		subtotal += s.tariff.MultiStopSurcharge
	}
	if opts.IncludeGuide {
		subtotal += s.tariff.GuideSurcharge
	}
	serviceFee := roundHalfUp(float64(subtotal) * s.tariff.ServiceFeeRate)

	return &domain.FareBreakdown{
		Legs:         legs,
		IntercitySum: intercitySum,
		Multiplier:   vehicle.Multiplier,
		Subtotal:     subtotal,
		ServiceFee:   serviceFee,
		Total:        subtotal + serviceFee,
	}, nil
}

// roundHalfUp rounds to the nearest integer with ties going up. Amounts are
// always non-negative here.
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
