package engine

import (
	"strconv"
	"strings"
	"unicode"
)

// MenuChoice is a validated menu selection, or ChoiceInvalid
type MenuChoice int

const (
	ChoiceInvalid       MenuChoice = -1
	ChoiceTurnLeft      MenuChoice = 1
	ChoiceTurnRight     MenuChoice = 2
	ChoiceDriveForward  MenuChoice = 3
	ChoiceDriveBackward MenuChoice = 4
	ChoiceRest          MenuChoice = 5
	ChoiceRefuel        MenuChoice = 6
	ChoiceExit          MenuChoice = 7

	MinMenuChoice = ChoiceTurnLeft
	MaxMenuChoice = ChoiceExit
)

// InvalidChoiceMessage is shown for any input that is not a valid choice
const InvalidChoiceMessage = "Invalid choice! Pick 1-7."

// MenuOption pairs a choice with its menu text
type MenuOption struct {
	Choice MenuChoice `json:"choice"`
	Action string     `json:"action"`
	Label  string     `json:"label"`
}

var menuOptions = []MenuOption{
	{ChoiceTurnLeft, "turn_left", "Turn left"},
	{ChoiceTurnRight, "turn_right", "Turn right"},
	{ChoiceDriveForward, "drive_forward", "Drive forward"},
	{ChoiceDriveBackward, "drive_backward", "Reverse"},
	{ChoiceRest, "rest", "Take a rest"},
	{ChoiceRefuel, "refuel", "Refuel the car"},
	{ChoiceExit, "exit", "Quit"},
}

// MenuOptions returns the menu in display order
func MenuOptions() []MenuOption {
	out := make([]MenuOption, len(menuOptions))
	copy(out, menuOptions)
	return out
}

// Action returns the machine name of the choice, e.g. "turn_left"
func (c MenuChoice) Action() string {
	for _, opt := range menuOptions {
		if opt.Choice == c {
			return opt.Action
		}
	}
	return "invalid"
}

// Label returns the menu text of the choice
func (c MenuChoice) Label() string {
	for _, opt := range menuOptions {
		if opt.Choice == c {
			return opt.Label
		}
	}
	return "Invalid"
}

// IsValid reports whether c is inside the menu range
func (c MenuChoice) IsValid() bool {
	return c >= MinMenuChoice && c <= MaxMenuChoice
}

// IsValidMenuChoice reports whether input is exactly an integer in [1,7].
// Surrounding whitespace, decimal points and commas make it invalid.
func IsValidMenuChoice(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}
	if strings.TrimFunc(input, unicode.IsSpace) != input {
		return false
	}
	if strings.ContainsAny(input, ".,") {
		return false
	}
	number, err := strconv.Atoi(input)
	if err != nil {
		return false
	}
	return MenuChoice(number).IsValid()
}

// ParseMenuChoice returns the choice for input, or ChoiceInvalid when
// IsValidMenuChoice rejects it. Out-of-range numbers are invalid too.
func ParseMenuChoice(input string) MenuChoice {
	if !IsValidMenuChoice(input) {
		return ChoiceInvalid
	}
	number, _ := strconv.Atoi(input)
	return MenuChoice(number)
}
