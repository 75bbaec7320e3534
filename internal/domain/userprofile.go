package domain

type UserProfile struct {
	ID                 string
	PreferredFocusTime TimeOfDay
	EnergyLevel        EnergyLevel
	DailyCapacityMin   int
	Constraints        TimeConstraints
}

// DefaultUserProfile returns the profile assumed before onboarding
// completes: balanced energy, morning focus, three hours a day.
func DefaultUserProfile() UserProfile {
	return UserProfile{
		ID:                 "default",
		PreferredFocusTime: TimeMorning,
		EnergyLevel:        EnergyBalanced,
		DailyCapacityMin:   180,
		Constraints:        DefaultTimeConstraints(),
	}
}
