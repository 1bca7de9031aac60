package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// Skin is the display configuration passed by reference into every render
// call. Widgets treat it as opaque, read-only input.
type Skin struct {
	Name string

	Accent    lipgloss.Color // focused borders, active tab, crumb head
	Text      lipgloss.Color
	Dim       lipgloss.Color
	Border    lipgloss.Color
	Highlight lipgloss.Color // selected row background
	Bar       lipgloss.Color // status bar background
	Win       lipgloss.Color
	Loss      lipgloss.Color
}

// DefaultSkin is the built-in dark theme.
func DefaultSkin() *Skin {
	return &Skin{
		Name:      "default",
		Accent:    lipgloss.Color("39"),
		Text:      lipgloss.Color("255"),
		Dim:       lipgloss.Color("240"),
		Border:    lipgloss.Color("238"),
		Highlight: lipgloss.Color("236"),
		Bar:       lipgloss.Color("17"),
		Win:       lipgloss.Color("42"),
		Loss:      lipgloss.Color("196"),
	}
}

// skinFile is the on-disk TOML shape. Empty fields keep the default color.
type skinFile struct {
	Name      string `toml:"name"`
	Accent    string `toml:"accent"`
	Text      string `toml:"text"`
	Dim       string `toml:"dim"`
	Border    string `toml:"border"`
	Highlight string `toml:"highlight"`
	Bar       string `toml:"bar"`
	Win       string `toml:"win"`
	Loss      string `toml:"loss"`
}

// LoadSkin resolves a named skin from <configDir>/skins/<name>.toml. The
// "default" name and a missing or unreadable file fall back to the built-in
// skin; the error tells the caller why the fallback happened.
func LoadSkin(name, configDir string) (*Skin, error) {
	skin := DefaultSkin()
	if name == "" || name == "default" {
		return skin, nil
	}

	path := filepath.Join(configDir, "skins", name+".toml")
	var file skinFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if os.IsNotExist(err) {
			return skin, fmt.Errorf("skin %q not found at %s", name, path)
		}
		return skin, fmt.Errorf("loading skin %q: %w", name, err)
	}

	skin.Name = name
	if file.Name != "" {
		skin.Name = file.Name
	}
	applyColor(&skin.Accent, file.Accent)
	applyColor(&skin.Text, file.Text)
	applyColor(&skin.Dim, file.Dim)
	applyColor(&skin.Border, file.Border)
	applyColor(&skin.Highlight, file.Highlight)
	applyColor(&skin.Bar, file.Bar)
	applyColor(&skin.Win, file.Win)
	applyColor(&skin.Loss, file.Loss)
	return skin, nil
}

func applyColor(dst *lipgloss.Color, value string) {
	if value != "" {
		*dst = lipgloss.Color(value)
	}
}
