package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	for name, c := range map[string]lipgloss.Color{
		"primary":    theme.Primary,
		"secondary":  theme.Secondary,
		"background": theme.Background,
		"foreground": theme.Foreground,
		"muted":      theme.Muted,
		"success":    theme.Success,
		"warning":    theme.Warning,
		"error":      theme.Error,
		"border":     theme.Border,
	} {
		assert.NotEmpty(t, string(c), name)
	}
}

func TestDefaultTheme_AccentsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	seen := make(map[lipgloss.Color]bool)
	for _, c := range []lipgloss.Color{theme.Primary, theme.Secondary, theme.Success, theme.Warning, theme.Error} {
		assert.False(t, seen[c], "duplicate accent %s", c)
		seen[c] = true
	}
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Same(t, theme, NewStyles(theme).Theme())
}

func TestStyles_AllStylesInitialised(t *testing.T) {
	s := DefaultStyles()

	for name, style := range map[string]lipgloss.Style{
		"Title":        s.Title,
		"Subtitle":     s.Subtitle,
		"Normal":       s.Normal,
		"Muted":        s.Muted,
		"Selected":     s.Selected,
		"Error":        s.Error,
		"Success":      s.Success,
		"Price":        s.Price,
		"Button":       s.Button,
		"InputField":   s.InputField,
		"FocusedField": s.FocusedField,
		"Form":         s.Form,
		"Alert":        s.Alert,
		"Dialog":       s.Dialog,
		"StatusBar":    s.StatusBar,
		"Help":         s.Help,
	} {
		assert.NotEqual(t, lipgloss.Style{}, style, name)
	}
}

func TestStyles_OverlaysKeepText(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Alert.Render("Price must be greater than 0"), "Price must be greater than 0")
	assert.Contains(t, s.Dialog.Render("Are you sure?"), "Are you sure?")
}
