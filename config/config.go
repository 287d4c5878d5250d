package config

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// PermsCode - Member permissions required for admin commands
const PermsCode int64 = discordgo.PermissionManageRoles

// Intents - Gateway intents the bot needs for members and raw reactions
const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsGuildMessageReactions

// Custom IDs for persistent components, these must not change between releases
const (
	RegisterButtonID = "setup_name_button"
	RegisterModalID  = "register_name_modal"
	NameInputID      = "name_input"
)

// Name length limits for the registration form
const (
	NameMinLength = 1
	NameMaxLength = 100
)

// Embed colors
const (
	ColorBlue   = 0x3498db
	ColorGreen  = 0x2ecc71
	ColorOrange = 0xe67e22
)

// Defaults for runtime flags
const (
	DefaultSettingsFile = "config.json"
	DefaultBoltFile     = "data/settings.db"
	DefaultKeepAlive    = ":8080"
)

// Store backends
const (
	StoreJSON = "json"
	StoreBolt = "bolt"
)

// ErrMissingToken is returned when no bot token was provided
var ErrMissingToken = errors.New("DISCORD_TOKEN not found in environment or .env file")

// ErrUnknownStore is returned for a store backend other than json or bolt
var ErrUnknownStore = errors.New("unknown settings store backend")

// Config - Runtime configuration
type Config struct {
	Token         string
	Store         string
	SettingsPath  string
	KeepAliveAddr string
	// GuildID limits command registration to one guild, empty registers globally
	GuildID       string
	Debug         bool
}

// Validate - Check the config before anything connects
func (c Config) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	switch c.Store {
	case StoreJSON, StoreBolt:
	default:
		return ErrUnknownStore
	}
	if c.SettingsPath == "" {
		return errors.New("settings path is empty")
	}
	return nil
}
