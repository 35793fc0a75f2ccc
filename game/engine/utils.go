package engine

import "math"

// ActionsUntilEmpty returns how many fuel-consuming actions the car can still take
func ActionsUntilEmpty(car *Car) int {
	if car == nil || car.Fuel <= 0 {
		return 0
	}
	return int(math.Ceil(car.Fuel / FuelPerAction))
}

// ActionsUntilCritical returns how many fatigue-raising actions remain before
// the critical warning shows
func ActionsUntilCritical(driver *Driver) int {
	if driver == nil {
		return FatigueCriticalThreshold
	}
	remaining := FatigueCriticalThreshold - driver.Fatigue
	if remaining < 0 {
		return 0
	}
	return remaining
}

// AnalyzeFuelRisk assesses how close the car is to running dry
func AnalyzeFuelRisk(car *Car) string {
	if car == nil || !car.HasFuel() {
		return "CRITICAL: Tank empty, refuel now!"
	}

	switch car.FuelSeverity() {
	case SeverityCritical:
		return "DANGER: Fuel very low, refuel soon"
	case SeverityWarning:
		return "CAUTION: Fuel below half"
	}

	return "SAFE: Fuel sufficient"
}

// AnalyzeFatigueRisk assesses how close the driver is to needing a rest
func AnalyzeFatigueRisk(driver *Driver) string {
	if driver == nil {
		return "UNKNOWN: No driver"
	}

	switch FatigueSeverity(driver.Fatigue) {
	case SeverityCritical:
		return "DANGER: Driver exhausted, rest now"
	case SeverityWarning:
		return "CAUTION: Driver getting tired"
	}

	return "SAFE: Driver rested"
}
