package storage

// Well-known store keys.
const (
	// KeyHabits holds the full habit collection as a JSON array.
	KeyHabits = "habits"
	// KeyTheme holds the UI theme, "light" or "dark".
	KeyTheme = "theme"
	// KeyAuthenticated is a leftover login stub flag. Recognized so existing
	// stores round-trip cleanly; nothing in habitgrid reads it.
	KeyAuthenticated = "isAuthenticated"
)
