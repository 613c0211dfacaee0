package prepstate

// Theme is the UI color theme tracked as part of application state.
//
// Theme is a string type that can hold one of two predefined values:
// [ThemeLight] or [ThemeDark]. Using a string type keeps JSON
// serialization and log output human-readable while the [Theme.Valid]
// check keeps the invariant that no other value is ever stored.
type Theme string

const (
	// ThemeLight is the default theme.
	ThemeLight Theme = "light"

	// ThemeDark is the dark theme.
	ThemeDark Theme = "dark"
)

// String returns the string representation of the theme.
// This implements the fmt.Stringer interface.
func (t Theme) String() string {
	return string(t)
}

// Valid reports whether the theme is one of the recognized values.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
