package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/cufee/botto-register/metrics"
	"go.uber.org/zap"
)

// reactionTarget - Member and role a role giver reaction refers to, ok is
// false when the reaction is not for the bot
func (h *Handler) reactionTarget(r *discordgo.MessageReaction) (member *discordgo.Member, role *discordgo.Role, ok bool) {
	if r.GuildID == "" {
		return nil, nil, false
	}

	settings := h.store.Load()

	// Check if this is the role giver message
	if settings.RoleGiverMessageID == "" || r.MessageID != settings.RoleGiverMessageID.String() {
		return nil, nil, false
	}

	// Check if reaction matched a role
	roleID, ok := settings.RoleForEmoji(emojiToken(&r.Emoji))
	if !ok {
		return nil, nil, false
	}

	role, err := h.platform.Role(r.GuildID, roleID.String())
	if err != nil {
		h.logger.Debug("role giver role not found", zap.String("role", roleID.String()), zap.Error(err))
		return nil, nil, false
	}

	// Get member obj
	member, err = h.platform.Member(r.GuildID, r.UserID)
	if err != nil {
		h.logger.Debug("failed to get member", zap.String("user", r.UserID), zap.Error(err))
		return nil, nil, false
	}
	return member, role, true
}

func (h *Handler) reactionAdded(r *discordgo.MessageReaction) error {
	member, role, ok := h.reactionTarget(r)
	if !ok {
		return nil
	}
	if hasRole(member, role.ID) {
		h.metrics.RoleChange(metrics.ResultSkipped)
		return nil
	}

	if err := h.platform.AddRole(r.GuildID, r.UserID, role.ID); err != nil {
		h.metrics.RoleChange(metrics.ResultFailed)
		return fmt.Errorf("add role %s to %s: %w", role.Name, r.UserID, err)
	}
	h.metrics.RoleChange(metrics.ResultAdded)
	h.logger.Info("role added", zap.String("role", role.Name), zap.String("user", r.UserID))
	return nil
}

func (h *Handler) reactionRemoved(r *discordgo.MessageReaction) error {
	member, role, ok := h.reactionTarget(r)
	if !ok {
		return nil
	}
	if !hasRole(member, role.ID) {
		h.metrics.RoleChange(metrics.ResultSkipped)
		return nil
	}

	if err := h.platform.RemoveRole(r.GuildID, r.UserID, role.ID); err != nil {
		h.metrics.RoleChange(metrics.ResultFailed)
		return fmt.Errorf("remove role %s from %s: %w", role.Name, r.UserID, err)
	}
	h.metrics.RoleChange(metrics.ResultRemoved)
	h.logger.Info("role removed", zap.String("role", role.Name), zap.String("user", r.UserID))
	return nil
}

func hasRole(member *discordgo.Member, roleID string) bool {
	for _, mRole := range member.Roles {
		if mRole == roleID {
			return true
		}
	}
	return false
}
