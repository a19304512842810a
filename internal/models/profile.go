package models

const DefaultThemeID = "default"

type UserProfile struct {
	HasCompletedOnboarding bool   `json:"hasCompletedOnboarding"`
	UserName               string `json:"userName"`
	SelectedTheme          string `json:"selectedTheme"`
}

// DefaultUserProfile is the factory state restored by an account reset.
func DefaultUserProfile() UserProfile {
	return UserProfile{
		HasCompletedOnboarding: false,
		UserName:               "",
		SelectedTheme:          DefaultThemeID,
	}
}

type Theme struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PrimaryColor string `json:"primaryColor"`
	AccentColor  string `json:"accentColor"`
}
