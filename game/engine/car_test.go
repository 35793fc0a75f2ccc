package engine

import "testing"

func TestNewCar(t *testing.T) {
	car := NewCar()

	if car.Fuel != 20.0 {
		t.Errorf("Expected fuel 20.0, got %v", car.Fuel)
	}
	if car.MaxFuel != MaxFuel {
		t.Errorf("Expected max fuel %v, got %v", MaxFuel, car.MaxFuel)
	}
	if car.Direction != North {
		t.Errorf("Expected North, got %v", car.Direction)
	}
	if !car.HasFuel() {
		t.Error("New car should have fuel")
	}
}

func TestCarTurnLeftConsumesNothingByItself(t *testing.T) {
	car := NewCar()
	car.TurnLeft()

	if car.Direction != West {
		t.Errorf("Expected West after turning left from North, got %v", car.Direction)
	}
	if car.Fuel != MaxFuel {
		t.Errorf("Turning should not burn fuel on its own, got %v", car.Fuel)
	}
}

func TestCarTurnLeftThenConsume(t *testing.T) {
	car := NewCar()
	car.TurnLeft()
	car.ConsumeFuel()

	if car.Direction != West {
		t.Errorf("Expected West, got %v", car.Direction)
	}
	if car.Fuel != 19.0 {
		t.Errorf("Expected fuel 19.0, got %v", car.Fuel)
	}
}

func TestCarConsumeFuel(t *testing.T) {
	tests := []struct {
		name     string
		fuel     float64
		expected float64
	}{
		{"full tank", 20, 19},
		{"half tank", 10, 9},
		{"one liter left", 1, 0},
		{"less than one liter", 0.5, 0},
		{"empty stays empty", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			car := NewCar()
			car.Fuel = tt.fuel
			car.ConsumeFuel()
			if car.Fuel != tt.expected {
				t.Errorf("Expected fuel %v, got %v", tt.expected, car.Fuel)
			}
		})
	}
}

func TestCarConsumeFuelIdempotentAtZero(t *testing.T) {
	car := NewCar()
	car.Fuel = 0

	for i := 0; i < 3; i++ {
		car.ConsumeFuel()
	}

	if car.Fuel != 0 {
		t.Errorf("Expected fuel to stay at 0, got %v", car.Fuel)
	}
	if car.HasFuel() {
		t.Error("Empty car should not report fuel")
	}
}

func TestCarConsumeFuelForAllLevels(t *testing.T) {
	for fuel := 0.0; fuel <= MaxFuel; fuel += 0.5 {
		car := NewCar()
		car.Fuel = fuel
		car.ConsumeFuel()

		expected := fuel - FuelPerAction
		if expected < 0 {
			expected = 0
		}
		if car.Fuel != expected {
			t.Errorf("fuel %v: expected %v after consume, got %v", fuel, expected, car.Fuel)
		}
	}
}

func TestCarRefuel(t *testing.T) {
	for _, fuel := range []float64{0, 0.5, 7, 19.9, 20} {
		car := NewCar()
		car.Fuel = fuel
		car.Refuel()
		if car.Fuel != car.MaxFuel {
			t.Errorf("fuel %v: expected full tank after refuel, got %v", fuel, car.Fuel)
		}
	}
}

func TestCarFuelPercentage(t *testing.T) {
	car := NewCar()
	if got := car.FuelPercentage(); got != 100 {
		t.Errorf("Expected 100%%, got %v", got)
	}

	car.Fuel = 5
	if got := car.FuelPercentage(); got != 25 {
		t.Errorf("Expected 25%%, got %v", got)
	}

	car.MaxFuel = 0
	if got := car.FuelPercentage(); got != 0 {
		t.Errorf("Expected 0%% for zero capacity, got %v", got)
	}
}

func TestCarFuelSeverity(t *testing.T) {
	tests := []struct {
		fuel     float64
		expected Severity
	}{
		{20, SeverityOK},
		{11, SeverityOK},
		{10, SeverityWarning},
		{5, SeverityWarning},
		{4, SeverityCritical},
		{0, SeverityCritical},
	}

	for _, tt := range tests {
		car := NewCar()
		car.Fuel = tt.fuel
		if got := car.FuelSeverity(); got != tt.expected {
			t.Errorf("fuel %v (%.0f%%): expected %s, got %s", tt.fuel, car.FuelPercentage(), tt.expected, got)
		}
	}
}

func TestCarDirectionLabel(t *testing.T) {
	car := NewCar()
	if car.DirectionLabel() != "North" {
		t.Errorf("Expected North, got %s", car.DirectionLabel())
	}

	car.TurnRight()
	if car.DirectionLabel() != "East" {
		t.Errorf("Expected East, got %s", car.DirectionLabel())
	}
}
