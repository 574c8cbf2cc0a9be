package pet

// GetStatus returns the status emoji for the pet's current display
func GetStatus(s Snapshot) string {
	switch s.DisplayState {
	case DisplayDead:
		return StatusEmojiDead
	case DisplayEating:
		return StatusEmojiEating
	case DisplayDrinking:
		return StatusEmojiDrinking
	case DisplayPlayingHappy:
		return StatusEmojiPlaying
	case DisplaySleeping:
		return StatusEmojiSleeping
	}

	switch s.Mood {
	case MoodHungry:
		return StatusEmojiHungry
	case MoodThirsty:
		return StatusEmojiThirsty
	case MoodTired:
		return StatusEmojiTired
	default:
		return StatusEmojiHappy
	}
}

// GetStatusWithLabel returns status with a text label for the UI
func GetStatusWithLabel(s Snapshot) string {
	status := GetStatus(s)

	switch s.DisplayState {
	case DisplayDead:
		return status + " Dead"
	case DisplayEating:
		return status + " Eating"
	case DisplayDrinking:
		return status + " Drinking"
	case DisplayPlayingHappy:
		return status + " Playing"
	case DisplaySleeping:
		if s.Sleeping {
			return status + " Sleeping"
		}
		// Idle pets doze off without the night-time sleep state
		return status + " Dozing"
	}
	return status + " " + s.Mood.String()
}
