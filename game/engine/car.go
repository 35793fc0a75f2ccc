package engine

const (
	// MaxFuel is the tank capacity in liters
	MaxFuel = 20.0

	// FuelPerAction is burned by every turn or drive
	FuelPerAction = 1.0
)

// Car tracks heading and fuel. Fuel always stays within [0, MaxFuel].
type Car struct {
	Direction Direction `json:"direction"`
	Fuel      float64   `json:"fuel"`
	MaxFuel   float64   `json:"max_fuel"`
}

// NewCar creates a car facing North with a full tank
func NewCar() *Car {
	return &Car{
		Direction: North,
		Fuel:      MaxFuel,
		MaxFuel:   MaxFuel,
	}
}

// HasFuel reports whether any fuel is left
func (c *Car) HasFuel() bool {
	return c.Fuel > 0
}

// ConsumeFuel burns one action's worth of fuel, never going below zero
func (c *Car) ConsumeFuel() {
	if c.Fuel <= 0 {
		return
	}
	c.Fuel -= FuelPerAction
	if c.Fuel < 0 {
		c.Fuel = 0
	}
}

// Refuel fills the tank
func (c *Car) Refuel() {
	c.Fuel = c.MaxFuel
}

// TurnLeft rotates the car a quarter turn counter-clockwise
func (c *Car) TurnLeft() {
	c.Direction = c.Direction.TurnLeft()
}

// TurnRight rotates the car a quarter turn clockwise
func (c *Car) TurnRight() {
	c.Direction = c.Direction.TurnRight()
}

// DirectionLabel returns the display name of the current heading
func (c *Car) DirectionLabel() string {
	return c.Direction.Label()
}

// FuelPercentage returns the fill level in percent of capacity
func (c *Car) FuelPercentage() float64 {
	if c.MaxFuel <= 0 {
		return 0
	}
	return c.Fuel / c.MaxFuel * 100
}

// FuelSeverity buckets the current fill level
func (c *Car) FuelSeverity() Severity {
	return FuelSeverity(c.Fuel, c.MaxFuel)
}
