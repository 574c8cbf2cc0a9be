package pet

import "time"

// Game constants
const (
	DefaultPetName   = "Charm Pet"
	MaxStat          = 100
	MinStat          = 0
	LowStatThreshold = 30

	// Band floor: values at or below this are never classified Hungry/Thirsty/Tired
	MoodBandFloor = 1

	// Sleep window [SleepHour, WakeHour) in local time, wrapping midnight
	SleepHour = 21
	WakeHour  = 6

	// Per-tick rates (one tick per TickInterval)
	HappinessDecayRate = 0.1
	EnergyDecayRate    = 0.1
	HungerDecayRate    = 0.1
	HydrationDecayRate = 0.1
	SleepEnergyGain    = 5.0
	IdleEnergyRegen    = 0.1 / 60

	WakeEnergyPenalty = 10.0

	// Action effects
	SnackHappinessBoost = 5.0
	SnackHungerBoost    = 10.0
	PetFoodHungerBoost  = 50.0
	WaterHydrationBoost = 50.0
	PlayHappinessBoost  = 10.0
	PlayEnergyCost      = 10.0

	TickInterval  = time.Second
	IdleThreshold = 30 * time.Second
	RevertDelay   = 3 * time.Second

	// Status emojis
	StatusEmojiHappy    = "😸"
	StatusEmojiSleeping = "😴"
	StatusEmojiHungry   = "🙀"
	StatusEmojiThirsty  = "🥵"
	StatusEmojiTired    = "😾"
	StatusEmojiEating   = "😋"
	StatusEmojiDrinking = "🥛"
	StatusEmojiPlaying  = "🎾"
	StatusEmojiDead     = "💀"
)
