package types

// Button is an action token available on a generated message.
type Button string

// Button tokens. The last three are sent byte-exact, emoji included.
const (
	ButtonU1             Button = "U1"
	ButtonU2             Button = "U2"
	ButtonU3             Button = "U3"
	ButtonU4             Button = "U4"
	ButtonV1             Button = "V1"
	ButtonV2             Button = "V2"
	ButtonV3             Button = "V3"
	ButtonV4             Button = "V4"
	ButtonReroll         Button = "🔄"
	ButtonMakeVariations Button = "🪄 Make Variations"
	ButtonFavorite       Button = "❤️ Favorite"
)

var allButtons = []Button{
	ButtonU1, ButtonU2, ButtonU3, ButtonU4,
	ButtonV1, ButtonV2, ButtonV3, ButtonV4,
	ButtonReroll, ButtonMakeVariations, ButtonFavorite,
}

// Buttons returns every known button token in display order.
func Buttons() []Button {
	return append([]Button(nil), allButtons...)
}

// Valid reports whether b is a known button token.
func (b Button) Valid() bool {
	for _, known := range allButtons {
		if b == known {
			return true
		}
	}
	return false
}

// IsUpscale reports whether b is one of U1-U4.
func (b Button) IsUpscale() bool {
	switch b {
	case ButtonU1, ButtonU2, ButtonU3, ButtonU4:
		return true
	}
	return false
}

// SlashCommand is an account-level slash command.
type SlashCommand string

const (
	SlashRelax   SlashCommand = "relax"
	SlashFast    SlashCommand = "fast"
	SlashPrivate SlashCommand = "private"
	SlashStealth SlashCommand = "stealth"
)

var allSlashCommands = []SlashCommand{SlashRelax, SlashFast, SlashPrivate, SlashStealth}

// SlashCommands returns every known slash command.
func SlashCommands() []SlashCommand {
	return append([]SlashCommand(nil), allSlashCommands...)
}

// Valid reports whether c is a known slash command.
func (c SlashCommand) Valid() bool {
	for _, known := range allSlashCommands {
		if c == known {
			return true
		}
	}
	return false
}

// Setting is a named account setting toggle.
type Setting string

const (
	SettingMJVersion1    Setting = "MJ version 1"
	SettingMJVersion2    Setting = "MJ version 2"
	SettingMJVersion3    Setting = "MJ version 3"
	SettingMJVersion4    Setting = "MJ version 4"
	SettingMJVersion5    Setting = "MJ version 5"
	SettingNijiVersion4  Setting = "Niji version 4"
	SettingNijiVersion5  Setting = "Niji version 5"
	SettingMJTest        Setting = "MJ Test"
	SettingMJTestPhoto   Setting = "MJ Test Photo"
	SettingHalfQuality   Setting = "Half quality"
	SettingBaseQuality   Setting = "Base quality"
	SettingHighQuality   Setting = "High quality (2x cost)"
	SettingStyleLow      Setting = "Style low"
	SettingStyleMed      Setting = "Style med"
	SettingStyleHigh     Setting = "Style high"
	SettingStyleVeryHigh Setting = "Style very high"
	SettingReset         Setting = "Reset Settings"
	SettingPublicMode    Setting = "Public mode"
	SettingStealthMode   Setting = "Stealth mode"
	SettingRemixMode     Setting = "Remix mode"
	SettingFastMode      Setting = "Fast mode"
	SettingRelaxMode     Setting = "Relax mode"
)

var allSettings = []Setting{
	SettingMJVersion1, SettingMJVersion2, SettingMJVersion3, SettingMJVersion4, SettingMJVersion5,
	SettingNijiVersion4, SettingNijiVersion5,
	SettingMJTest, SettingMJTestPhoto,
	SettingHalfQuality, SettingBaseQuality, SettingHighQuality,
	SettingStyleLow, SettingStyleMed, SettingStyleHigh, SettingStyleVeryHigh,
	SettingReset,
	SettingPublicMode, SettingStealthMode, SettingRemixMode, SettingFastMode, SettingRelaxMode,
}

// Settings returns every known setting name.
func Settings() []Setting {
	return append([]Setting(nil), allSettings...)
}

// Valid reports whether s is a known setting name.
func (s Setting) Valid() bool {
	for _, known := range allSettings {
		if s == known {
			return true
		}
	}
	return false
}
