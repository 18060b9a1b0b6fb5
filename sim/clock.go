package sim

const (
	HoursPerDay  = 24
	DaysPerYear  = 365
	HoursPerYear = HoursPerDay * DaysPerYear
)

// advanceClock moves time forward one hour, ages the player and runs down
// every cooldown. It reports whether the hour rolled over into a new day.
func (s *State) advanceClock() (dayClosed bool) {
	if s.Hour < HoursPerDay-1 {
		s.Hour++
	} else {
		s.Hour = 0
		s.Day++
		dayClosed = true
	}

	if s.Day > DaysPerYear-1 {
		s.Day = 0
		s.Year++
	}

	s.Age += s.TotalStress() / HoursPerYear

	s.Jobs.RefreshTimer = decrementOrZero(s.Jobs.RefreshTimer)
	s.Networking.UpgradeTimer = decrementOrZero(s.Networking.UpgradeTimer)
	s.Education.UpgradeTimer = decrementOrZero(s.Education.UpgradeTimer)

	return dayClosed
}

// decrementOrZero counts a timer down by one hour; anything at or below one
// hour (halved timers can be fractional) lands exactly on zero.
func decrementOrZero(timer float64) float64 {
	if timer <= 1.0 {
		return 0
	}
	return timer - 1
}
