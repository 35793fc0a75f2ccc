package engine

import "fmt"

// Severity tells the presentation layer how to color a line
type Severity string

const (
	SeverityOK       Severity = "ok"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
	SeverityInfo     Severity = "info"
)

// Fuel and fatigue buckets
const (
	FuelOKPercent      = 50.0
	FuelWarningPercent = 20.0
	FatigueOKMax       = 5
	FatigueWarningMax  = 8
)

// StatusLine is one rendered line of the status panel
type StatusLine struct {
	Label    string   `json:"label"`
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// Status is the full status panel shown between turns
type Status struct {
	Heading   StatusLine  `json:"heading"`
	Direction StatusLine  `json:"direction"`
	Fuel      StatusLine  `json:"fuel"`
	Fatigue   StatusLine  `json:"fatigue"`
	Warning   *StatusLine `json:"warning,omitempty"`
}

// Lines returns the panel in display order, skipping an empty warning
func (s Status) Lines() []StatusLine {
	lines := []StatusLine{s.Heading, s.Direction, s.Fuel, s.Fatigue}
	if s.Warning != nil {
		lines = append(lines, *s.Warning)
	}
	return lines
}

// FuelSeverity buckets a fuel level: above 50% ok, above 20% warning,
// anything else critical
func FuelSeverity(fuel, maxFuel float64) Severity {
	if maxFuel <= 0 {
		return SeverityCritical
	}
	car := Car{Fuel: fuel, MaxFuel: maxFuel}
	switch percent := car.FuelPercentage(); {
	case percent > FuelOKPercent:
		return SeverityOK
	case percent > FuelWarningPercent:
		return SeverityWarning
	default:
		return SeverityCritical
	}
}

// FatigueSeverity buckets fatigue: 0-5 ok, 6-8 warning, 9+ critical
func FatigueSeverity(fatigue int) Severity {
	switch {
	case fatigue <= FatigueOKMax:
		return SeverityOK
	case fatigue <= FatigueWarningMax:
		return SeverityWarning
	default:
		return SeverityCritical
	}
}

// RenderStatus builds the status panel for a car and its driver.
// It has no side effects; color is left to the caller.
func RenderStatus(car *Car, driver *Driver) Status {
	name := "Nobody"
	fatigue := 0
	if driver != nil {
		name = driver.Name
		fatigue = driver.Fatigue
	}

	status := Status{
		Heading: StatusLine{
			Label:    "Driver",
			Text:     fmt.Sprintf("%s is driving %s", name, car.DirectionLabel()),
			Severity: SeverityInfo,
		},
		Direction: StatusLine{
			Label:    "Direction",
			Text:     car.DirectionLabel(),
			Severity: SeverityInfo,
		},
		Fuel: StatusLine{
			Label:    "Fuel",
			Text:     fmt.Sprintf("%.0f/%.0f liters", car.Fuel, car.MaxFuel),
			Severity: car.FuelSeverity(),
		},
		Fatigue: StatusLine{
			Label:    "Fatigue",
			Text:     fmt.Sprintf("%d/%d", fatigue, FatigueScale),
			Severity: FatigueSeverity(fatigue),
		},
	}

	if warning := FatigueWarning(fatigue); warning != "" {
		severity := SeverityWarning
		if fatigue >= FatigueCriticalThreshold {
			severity = SeverityCritical
		}
		status.Warning = &StatusLine{
			Label:    "Warning",
			Text:     warning,
			Severity: severity,
		}
	}

	return status
}
