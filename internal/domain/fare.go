package domain

// Stop is an opaque location identifier, e.g. a city or airport name.
type Stop string

// Leg is the segment between two consecutive stops in a route. Cost is in
// whole currency units.
type Leg struct {
	From       Stop
	To         Stop
	DistanceKm float64
	Cost       int64
}

// VehicleClass determines the fare multiplier applied to the intercity sum.
type VehicleClass struct {
	ID         string
	Multiplier float64
}

// The fixed vehicle classes offered on the site.
var (
	VehicleSedan   = VehicleClass{ID: "sedan", Multiplier: 1.0}
	VehicleSUV     = VehicleClass{ID: "suv", Multiplier: 1.35}
	VehiclePremium = VehicleClass{ID: "premium", Multiplier: 1.6}
)

// VehicleClassByID resolves a vehicle class from its identifier.
func VehicleClassByID(id string) (VehicleClass, bool) {
	switch id {
	case VehicleSedan.ID:
		return VehicleSedan, true
	case VehicleSUV.ID:
		return VehicleSUV, true
	case VehiclePremium.ID:
		return VehiclePremium, true
	}
	return VehicleClass{}, false
}

// Tariff holds the fixed pricing constants used by the fare calculator.
type Tariff struct {
	BaseFlatPerLeg     int64
	PerKmRate          float64
	MultiStopSurcharge int64
	GuideSurcharge     int64
	ServiceFeeRate     float64
}

// DefaultTariff returns the production tariff.
func DefaultTariff() Tariff {
	return Tariff{
		BaseFlatPerLeg:     500,
		PerKmRate:          9,
		MultiStopSurcharge: 300,
		GuideSurcharge:     700,
		ServiceFeeRate:     0.05,
	}
}

// FareBreakdown is the full price decomposition for a route.
// Total == Subtotal + ServiceFee always holds; surcharges only ever add to
// the multiplied intercity sum.
type FareBreakdown struct {
	Legs         []Leg
	IntercitySum int64
	Multiplier   float64
	Subtotal     int64
	ServiceFee   int64
	Total        int64
}
