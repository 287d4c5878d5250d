package handlers

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

var errNotFound = errors.New("not found")

// Platform - The Discord calls the handlers make
type Platform interface {
	BotUserID() string
	Respond(i *discordgo.Interaction, resp *discordgo.InteractionResponse) error

	Channel(channelID string) (*discordgo.Channel, error)
	Message(channelID, messageID string) (*discordgo.Message, error)
	SendMessage(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error)
	EditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed) error

	Role(guildID, roleID string) (*discordgo.Role, error)
	Member(guildID, userID string) (*discordgo.Member, error)
	AddRole(guildID, userID, roleID string) error
	RemoveRole(guildID, userID, roleID string) error

	AddReaction(channelID, messageID, emoji string) error
	ClearReaction(channelID, messageID, emoji string) error
}

// Session - Platform backed by a discordgo session
type Session struct {
	s *discordgo.Session
}

// NewSession - Wrap a discordgo session
func NewSession(s *discordgo.Session) *Session {
	return &Session{s: s}
}

func (p *Session) BotUserID() string {
	if p.s.State == nil || p.s.State.User == nil {
		return ""
	}
	return p.s.State.User.ID
}

func (p *Session) Respond(i *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	return p.s.InteractionRespond(i, resp)
}

// Channel - State cache first, then the API
func (p *Session) Channel(channelID string) (*discordgo.Channel, error) {
	if c, err := p.s.State.Channel(channelID); err == nil {
		return c, nil
	}
	return p.s.Channel(channelID)
}

func (p *Session) Message(channelID, messageID string) (*discordgo.Message, error) {
	return p.s.ChannelMessage(channelID, messageID)
}

func (p *Session) SendMessage(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	return p.s.ChannelMessageSendComplex(channelID, msg)
}

func (p *Session) EditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed) error {
	_, err := p.s.ChannelMessageEditEmbed(channelID, messageID, embed)
	return err
}

// Role - State cache first, then the guild role list
func (p *Session) Role(guildID, roleID string) (*discordgo.Role, error) {
	if r, err := p.s.State.Role(guildID, roleID); err == nil {
		return r, nil
	}
	guildRoles, err := p.s.GuildRoles(guildID)
	if err != nil {
		return nil, err
	}
	for _, r := range guildRoles {
		if r.ID == roleID {
			return r, nil
		}
	}
	return nil, errNotFound
}

// Member - Always from the API, cached roles can lag behind reactions
func (p *Session) Member(guildID, userID string) (*discordgo.Member, error) {
	return p.s.GuildMember(guildID, userID)
}

func (p *Session) AddRole(guildID, userID, roleID string) error {
	return p.s.GuildMemberRoleAdd(guildID, userID, roleID)
}

func (p *Session) RemoveRole(guildID, userID, roleID string) error {
	return p.s.GuildMemberRoleRemove(guildID, userID, roleID)
}

func (p *Session) AddReaction(channelID, messageID, emoji string) error {
	return p.s.MessageReactionAdd(channelID, messageID, emoji)
}

func (p *Session) ClearReaction(channelID, messageID, emoji string) error {
	return p.s.MessageReactionsRemoveEmoji(channelID, messageID, emoji)
}
