package engine

const (
	// FatigueWarningThreshold is the first fatigue level that warns the player
	FatigueWarningThreshold = 7

	// FatigueCriticalThreshold is the first fatigue level that demands a rest
	FatigueCriticalThreshold = 10

	// FatigueScale is the denominator shown next to the fatigue counter
	FatigueScale = 10
)

// Fatigue warning texts
const (
	CriticalFatigueWarning = "CRITICAL FATIGUE! The driver must rest immediately!"
	ModerateFatigueWarning = "The driver is getting tired and needs a break."
)

// Driver is the person behind the wheel. Fatigue has no upper bound.
type Driver struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Fatigue int    `json:"fatigue" validate:"gte=0"`
}

// NewDriver creates a fully rested driver
func NewDriver(name, email string) *Driver {
	return &Driver{
		Name:    name,
		Email:   email,
		Fatigue: 0,
	}
}

// IncreaseFatigue adds one point of fatigue
func (d *Driver) IncreaseFatigue() {
	d.Fatigue++
}

// Rest clears all fatigue
func (d *Driver) Rest() {
	d.Fatigue = 0
}

// FatigueWarning returns the warning for the driver's current fatigue
func (d *Driver) FatigueWarning() string {
	return FatigueWarning(d.Fatigue)
}

// FatigueWarning returns the warning text for a fatigue level, or "" when
// the driver is fine. Both thresholds are inclusive.
func FatigueWarning(fatigue int) string {
	switch {
	case fatigue >= FatigueCriticalThreshold:
		return CriticalFatigueWarning
	case fatigue >= FatigueWarningThreshold:
		return ModerateFatigueWarning
	default:
		return ""
	}
}
