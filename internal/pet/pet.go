package pet

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// Testable time function
var TimeNow = time.Now

// Action is a timed display override started by Feed or Play.
// The collaborator delivers Revert(ID) once RevertDelay has passed.
type Action struct {
	ID        uuid.UUID
	State     DisplayState
	ExpiresAt time.Time
}

// Pet is the virtual pet's state. It is not safe for concurrent use:
// one owner serializes Tick, Feed, Play and Revert, and publishes
// snapshots for everyone else.
type Pet struct {
	Name     string
	location *time.Location

	// Precise vitals; the public integer values are truncations of these
	happiness float64
	energy    float64
	hunger    float64
	hydration float64

	sleeping bool
	// Set after the first aborted sleep attempt of a night
	restless bool

	mood            Mood
	display         DisplayState
	override        *Action
	lastInteraction time.Time
}

// NewPet creates a pet with every vital at maximum. A nil location
// means the local time zone.
func NewPet(name string, loc *time.Location) *Pet {
	if name == "" {
		name = DefaultPetName
	}
	if loc == nil {
		loc = time.Local
	}
	p := &Pet{
		Name:            name,
		location:        loc,
		happiness:       MaxStat,
		energy:          MaxStat,
		hunger:          MaxStat,
		hydration:       MaxStat,
		mood:            MoodHappy,
		display:         DisplayAwake,
		lastInteraction: TimeNow(),
	}
	log.Printf("Created new pet: %s", p.Name)
	return p
}

// Happiness returns the published happiness value
func (p *Pet) Happiness() int { return int(p.happiness) }

// Energy returns the published energy value
func (p *Pet) Energy() int { return int(p.energy) }

// Hunger returns the published hunger value, where 100 is full
func (p *Pet) Hunger() int { return int(p.hunger) }

// Hydration returns the published hydration value
func (p *Pet) Hydration() int { return int(p.hydration) }

// Sleeping reports whether the pet is asleep
func (p *Pet) Sleeping() bool { return p.sleeping }

// Mood returns the mood computed by the last tick
func (p *Pet) Mood() Mood { return p.mood }

// LastInteraction returns the time of the most recent Feed or Play
func (p *Pet) LastInteraction() time.Time { return p.lastInteraction }

// DisplayState returns what the pet currently shows. A pending override
// wins over the base state; a tick that finds the pet dead drops it.
func (p *Pet) DisplayState() DisplayState {
	if p.override != nil {
		return p.override.State
	}
	return p.display
}

// PendingAction returns the override awaiting reversion, if any
func (p *Pet) PendingAction() (Action, bool) {
	if p.override == nil {
		return Action{}, false
	}
	return *p.override, true
}

// IsSleepHour reports whether hour falls in the night window
func IsSleepHour(hour int) bool {
	return hour >= SleepHour || hour < WakeHour
}

// Tick advances the simulation by one step at wall-clock time now
func (p *Pet) Tick(now time.Time) {
	if p.override != nil && !now.Before(p.override.ExpiresAt) {
		p.override = nil
	}

	if IsSleepHour(now.In(p.location).Hour()) {
		p.sleep()
	} else {
		p.wakeUp(false)
	}

	dead := false
	if !p.sleeping {
		p.happiness = clampStat(p.happiness - HappinessDecayRate)
		p.energy = clampStat(p.energy - EnergyDecayRate)
		p.hunger = clampStat(p.hunger - HungerDecayRate)
		p.hydration = clampStat(p.hydration - HydrationDecayRate)

		p.regenerateEnergy(now)
		dead = p.checkHealth()
	}

	p.updateMood(dead)
}

// Feed gives the pet food and starts the matching display override.
// It is allowed at any time, asleep or dead included.
func (p *Pet) Feed(food FoodType) (Action, bool) {
	var state DisplayState
	switch food {
	case FoodSnack:
		p.happiness = clampStat(p.happiness + SnackHappinessBoost)
		p.hunger = clampStat(p.hunger + SnackHungerBoost)
		state = DisplayEating
	case FoodPetFood:
		p.hunger = clampStat(p.hunger + PetFoodHungerBoost)
		state = DisplayEating
	case FoodWater:
		p.hydration = clampStat(p.hydration + WaterHydrationBoost)
		state = DisplayDrinking
	default:
		log.Printf("Ignoring unknown food type %v", food)
		return Action{}, false
	}
	p.lastInteraction = TimeNow()

	log.Printf("Fed %s. Happiness is now %d, Hunger is now %d, Hydration is now %d",
		food, p.Happiness(), p.Hunger(), p.Hydration())
	return p.startOverride(state), true
}

// Play plays with the pet. A sleeping pet only notices the interaction.
func (p *Pet) Play() (Action, bool) {
	p.lastInteraction = TimeNow()
	if p.sleeping {
		log.Printf("Tried to play while %s is sleeping", p.Name)
		return Action{}, false
	}

	p.happiness = clampStat(p.happiness + PlayHappinessBoost)
	p.energy = clampStat(p.energy - PlayEnergyCost)

	log.Printf("Played with pet. Happiness is now %d, Energy is now %d", p.Happiness(), p.Energy())
	return p.startOverride(DisplayPlayingHappy), true
}

// Revert ends the override started by the action with the given id.
// Reversions for superseded actions are ignored.
func (p *Pet) Revert(id uuid.UUID) bool {
	if p.override == nil || p.override.ID != id {
		return false
	}
	p.override = nil
	p.updateDisplayState()
	log.Printf("Display reverted to %s", p.display)
	return true
}

// DeriveDisplayState computes the display from the vitals and sleep flag alone
func (p *Pet) DeriveDisplayState() DisplayState {
	switch {
	case p.Hunger() == 0 || p.Hydration() == 0:
		return DisplayDead
	case p.sleeping:
		return DisplaySleeping
	case p.Hunger() < LowStatThreshold:
		return DisplayHungry
	case p.Hydration() < LowStatThreshold:
		return DisplayThirsty
	default:
		return DisplayAwake
	}
}

func (p *Pet) updateDisplayState() {
	p.display = p.DeriveDisplayState()
}

func (p *Pet) startOverride(state DisplayState) Action {
	action := Action{
		ID:        uuid.New(),
		State:     state,
		ExpiresAt: TimeNow().Add(RevertDelay),
	}
	p.override = &action
	return action
}

func (p *Pet) sleep() {
	if p.Hunger() <= LowStatThreshold || p.Hydration() <= LowStatThreshold {
		p.wakeUp(true)
		return
	}

	if !p.sleeping {
		log.Printf("%s fell asleep", p.Name)
	}
	p.sleeping = true
	p.restless = false
	p.display = DisplaySleeping
	p.energy = clampStat(p.energy + SleepEnergyGain)
}

// wakeUp runs on every awake tick. The energy penalty only applies when
// the pet actually wakes, or on the first failed attempt to sleep in a night.
func (p *Pet) wakeUp(aborted bool) {
	transition := p.sleeping || (aborted && !p.restless)
	p.sleeping = false
	p.restless = aborted

	if transition {
		if aborted {
			log.Printf("%s is too hungry or thirsty to sleep", p.Name)
		} else {
			log.Printf("%s woke up", p.Name)
		}
		if p.Hunger() < LowStatThreshold || p.Hydration() < LowStatThreshold {
			p.energy = clampStat(p.energy - WakeEnergyPenalty)
			log.Printf("Woke up needy. Energy is now %d", p.Energy())
		}
	}
	p.updateDisplayState()
}

func (p *Pet) regenerateEnergy(now time.Time) {
	if now.Sub(p.lastInteraction) > IdleThreshold {
		p.energy = clampStat(p.energy + IdleEnergyRegen)
		p.display = DisplaySleeping
	}
}

func (p *Pet) checkHealth() bool {
	if p.Hunger() != 0 && p.Hydration() != 0 && p.Energy() != 0 {
		return false
	}
	if p.mood != MoodDead {
		log.Printf("%s has died (hunger %d, hydration %d, energy %d)", p.Name, p.Hunger(), p.Hydration(), p.Energy())
	}
	p.mood = MoodDead
	p.display = DisplayDead
	p.override = nil
	p.happiness = 0
	return true
}

func (p *Pet) updateMood(dead bool) {
	if dead {
		return
	}
	switch {
	case inBand(p.Hunger()):
		p.mood = MoodHungry
		p.display = DisplayHungry
	case inBand(p.Hydration()):
		p.mood = MoodThirsty
		p.display = DisplayThirsty
	case inBand(p.Energy()):
		p.mood = MoodTired
		if p.display != DisplaySleeping {
			p.display = DisplayTired
		}
	default:
		p.mood = MoodHappy
	}
}

// inBand is the strict (MoodBandFloor, LowStatThreshold) range
func inBand(v int) bool {
	return v > MoodBandFloor && v < LowStatThreshold
}

func clampStat(v float64) float64 {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
