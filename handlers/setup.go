package handlers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/cufee/botto-register/config"
	db "github.com/cufee/botto-register/database"
	"go.uber.org/zap"
)

// setupCommand - Post the registration message with the persistent button
func (h *Handler) setupCommand(c *commandContext) error {
	channelID := c.id("channel")
	if channelID == "" {
		return h.reply(c.i, config.ReplyBadArguments)
	}

	if _, err := h.platform.SendMessage(channelID.String(), registerMessage()); err != nil {
		h.logger.Warn("failed to send register message", zap.String("channel", channelID.String()), zap.Error(err))
		return h.reply(c.i, fmt.Sprintf(config.ReplySendFailed, channelMention(channelID.String())))
	}
	return h.reply(c.i, fmt.Sprintf(config.ReplySetup, channelMention(channelID.String())))
}

// setLogsCommand - Set the registration log channel
func (h *Handler) setLogsCommand(c *commandContext) error {
	channelID := c.id("channel")
	if channelID == "" {
		return h.reply(c.i, config.ReplyBadArguments)
	}

	settings := h.store.Load()
	settings.LogChannelID = channelID
	if err := h.store.Save(settings); err != nil {
		h.logger.Error("failed to save settings", zap.Error(err))
		return h.reply(c.i, config.ReplySaveFailed)
	}
	return h.reply(c.i, fmt.Sprintf(config.ReplySetLogs, channelMention(channelID.String())))
}

// setVerifyRoleCommand - Set the role granted on registration
func (h *Handler) setVerifyRoleCommand(c *commandContext) error {
	roleID := c.id("role")
	if roleID == "" {
		return h.reply(c.i, config.ReplyBadArguments)
	}

	settings := h.store.Load()
	settings.VerifyRoleID = roleID
	if err := h.store.Save(settings); err != nil {
		h.logger.Error("failed to save settings", zap.Error(err))
		return h.reply(c.i, config.ReplySaveFailed)
	}
	return h.reply(c.i, fmt.Sprintf(config.ReplySetVerifyRole, roleMention(roleID.String())))
}

// setupRoleGiverCommand - Post a new role giver message and make it the active one
func (h *Handler) setupRoleGiverCommand(c *commandContext) error {
	channelID := c.id("channel")
	if channelID == "" {
		return h.reply(c.i, config.ReplyBadArguments)
	}

	settings := h.store.Load()
	msg, err := h.platform.SendMessage(channelID.String(), &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{roleGiverEmbed(settings.RoleGiverRoles)},
	})
	if err != nil {
		h.logger.Warn("failed to send role giver message", zap.String("channel", channelID.String()), zap.Error(err))
		return h.reply(c.i, fmt.Sprintf(config.ReplySendFailed, channelMention(channelID.String())))
	}

	settings.RoleGiverMessageID = db.ID(msg.ID)
	settings.RoleGiverChannelID = channelID
	if settings.RoleGiverRoles == nil {
		settings.RoleGiverRoles = make(map[string]db.ID)
	}
	if err := h.store.Save(settings); err != nil {
		h.logger.Error("failed to save settings", zap.Error(err))
		return h.reply(c.i, config.ReplySaveFailed)
	}

	// Existing bindings carry over to the new message
	for _, emoji := range sortedEmojis(settings.RoleGiverRoles) {
		if err := h.platform.AddReaction(channelID.String(), msg.ID, reactionAPIName(emoji)); err != nil {
			h.logger.Warn("failed to add a reaction", zap.String("emoji", emoji), zap.Error(err))
		}
	}

	return h.reply(c.i, fmt.Sprintf(config.ReplySetupRoleGiver, channelMention(channelID.String()), msg.ID))
}

// addCommand - Bind an emoji to a role on the role giver message
func (h *Handler) addCommand(c *commandContext) error {
	emoji := cleanEmojiArg(c.str("emoji"))
	roleID := c.id("role")
	if emoji == "" || roleID == "" {
		return h.reply(c.i, config.ReplyBadArguments)
	}

	settings := h.store.Load()
	if !settings.HasRoleGiver() {
		return h.reply(c.i, config.ReplyNoRoleGiver)
	}

	// Get channel and message
	channel, err := h.platform.Channel(settings.RoleGiverChannelID.String())
	if err != nil {
		return h.reply(c.i, config.ReplyNoChannel)
	}
	msg, err := h.platform.Message(channel.ID, settings.RoleGiverMessageID.String())
	if err != nil {
		return h.reply(c.i, config.ReplyNoMessage)
	}

	// Add reaction, this also validates the emoji
	if err := h.platform.AddReaction(channel.ID, msg.ID, reactionAPIName(emoji)); err != nil {
		h.logger.Debug("failed to add a reaction", zap.String("emoji", emoji), zap.Error(err))
		return h.reply(c.i, config.ReplyBadEmoji)
	}

	settings.SetRole(emoji, roleID)
	if err := h.store.Save(settings); err != nil {
		h.logger.Error("failed to save settings", zap.Error(err))
		return h.reply(c.i, config.ReplySaveFailed)
	}
	h.updateRoleGiverMsg(channel.ID, msg.ID, settings.RoleGiverRoles)

	return h.reply(c.i, fmt.Sprintf(config.ReplyAdd, emoji, c.roleName(roleID)))
}

// removeCommand - Unbind an emoji, clearing its reaction is best effort
func (h *Handler) removeCommand(c *commandContext) error {
	emoji := cleanEmojiArg(c.str("emoji"))
	if emoji == "" {
		return h.reply(c.i, config.ReplyBadArguments)
	}

	settings := h.store.Load()
	if !settings.RemoveRole(emoji) {
		return h.reply(c.i, config.ReplyEmojiNotMapped)
	}
	if err := h.store.Save(settings); err != nil {
		h.logger.Error("failed to save settings", zap.Error(err))
		return h.reply(c.i, config.ReplySaveFailed)
	}

	if settings.HasRoleGiver() {
		cid, mid := settings.RoleGiverChannelID.String(), settings.RoleGiverMessageID.String()
		if err := h.platform.ClearReaction(cid, mid, reactionAPIName(emoji)); err != nil {
			h.logger.Debug("failed to clear a reaction", zap.String("emoji", emoji), zap.Error(err))
		}
		h.updateRoleGiverMsg(cid, mid, settings.RoleGiverRoles)
	}

	return h.reply(c.i, fmt.Sprintf(config.ReplyRemove, emoji))
}

// updateRoleGiverMsg - Rewrite the role giver embed to list the current bindings
func (h *Handler) updateRoleGiverMsg(cid, mid string, roles map[string]db.ID) {
	if err := h.platform.EditEmbed(cid, mid, roleGiverEmbed(roles)); err != nil {
		h.logger.Debug("failed to update the role giver message", zap.String("message", mid), zap.Error(err))
	}
}

func roleGiverEmbed(roles map[string]db.ID) *discordgo.MessageEmbed {
	desc := config.RoleGiverDescription
	if len(roles) > 0 {
		lines := make([]string, 0, len(roles))
		for _, emoji := range sortedEmojis(roles) {
			lines = append(lines, fmt.Sprintf("%s - %s", emoji, roleMention(roles[emoji].String())))
		}
		desc += "\n\n" + strings.Join(lines, "\n")
	}
	return &discordgo.MessageEmbed{
		Title:       config.RoleGiverTitle,
		Description: desc,
		Color:       config.ColorOrange,
	}
}

func sortedEmojis(roles map[string]db.ID) []string {
	emojis := make([]string, 0, len(roles))
	for emoji := range roles {
		emojis = append(emojis, emoji)
	}
	sort.Strings(emojis)
	return emojis
}
