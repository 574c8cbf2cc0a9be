package pet

import "fmt"

// Mood is the categorical summary of the vitals
type Mood int

const (
	MoodHappy Mood = iota
	MoodHungry
	MoodThirsty
	MoodTired
	MoodDead
)

// String returns the display name for the mood
func (m Mood) String() string {
	switch m {
	case MoodHappy:
		return "Happy"
	case MoodHungry:
		return "Hungry"
	case MoodThirsty:
		return "Thirsty"
	case MoodTired:
		return "Tired"
	case MoodDead:
		return "Dead"
	default:
		return fmt.Sprintf("Mood(%d)", int(m))
	}
}

// MarshalText lets moods travel as names in JSON
func (m Mood) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses a mood name
func (m *Mood) UnmarshalText(text []byte) error {
	for _, candidate := range []Mood{MoodHappy, MoodHungry, MoodThirsty, MoodTired, MoodDead} {
		if candidate.String() == string(text) {
			*m = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown mood %q", text)
}

// DisplayState selects which visual the presentation layer shows
type DisplayState int

const (
	DisplayAwake DisplayState = iota
	DisplaySleeping
	DisplayEating
	DisplayDrinking
	DisplayPlayingHappy
	DisplayHungry
	DisplayThirsty
	DisplayTired
	DisplayDead
)

var displayStates = []DisplayState{
	DisplayAwake,
	DisplaySleeping,
	DisplayEating,
	DisplayDrinking,
	DisplayPlayingHappy,
	DisplayHungry,
	DisplayThirsty,
	DisplayTired,
	DisplayDead,
}

// AllDisplayStates returns every display state in declaration order
func AllDisplayStates() []DisplayState {
	return append([]DisplayState(nil), displayStates...)
}

func (d DisplayState) String() string {
	switch d {
	case DisplayAwake:
		return "Awake"
	case DisplaySleeping:
		return "Sleeping"
	case DisplayEating:
		return "Eating"
	case DisplayDrinking:
		return "Drinking"
	case DisplayPlayingHappy:
		return "PlayingHappy"
	case DisplayHungry:
		return "Hungry"
	case DisplayThirsty:
		return "Thirsty"
	case DisplayTired:
		return "Tired"
	case DisplayDead:
		return "Dead"
	default:
		return fmt.Sprintf("DisplayState(%d)", int(d))
	}
}

// AssetName returns the asset key a renderer uses for this state
func (d DisplayState) AssetName() string {
	switch d {
	case DisplaySleeping:
		return "pet_sleeping"
	case DisplayEating:
		return "pet_eating"
	case DisplayDrinking:
		return "pet_drinking"
	case DisplayPlayingHappy:
		return "pet_happy"
	case DisplayHungry:
		return "pet_hungry"
	case DisplayThirsty:
		return "pet_thirsty"
	case DisplayTired:
		return "pet_tired"
	case DisplayDead:
		return "pet_dead"
	default:
		return "pet_awake"
	}
}

// IsTransient reports whether the state is only ever shown as a timed override
func (d DisplayState) IsTransient() bool {
	return d == DisplayEating || d == DisplayDrinking || d == DisplayPlayingHappy
}

func (d DisplayState) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DisplayState) UnmarshalText(text []byte) error {
	for _, candidate := range displayStates {
		if candidate.String() == string(text) {
			*d = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown display state %q", text)
}

// FoodType is what the player can give the pet
type FoodType int

const (
	FoodSnack FoodType = iota
	FoodPetFood
	FoodWater
)

func (f FoodType) String() string {
	switch f {
	case FoodSnack:
		return "Snack"
	case FoodPetFood:
		return "Pet Food"
	case FoodWater:
		return "Water"
	default:
		return fmt.Sprintf("FoodType(%d)", int(f))
	}
}
