package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/cufee/botto-register/config"
	db "github.com/cufee/botto-register/database"
	"go.uber.org/zap"
)

// Role grant outcomes, used as metric labels
const (
	grantNotConfigured = "not_configured"
	grantNotFound      = "not_found"
	grantFailed        = "failed"
	grantOK            = "granted"
)

func registerMessage() *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       config.RegisterTitle,
			Description: config.RegisterDescription,
			Color:       config.ColorBlue,
		}},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    config.RegisterButtonLabel,
					Style:    discordgo.PrimaryButton,
					CustomID: config.RegisterButtonID,
				},
			}},
		},
	}
}

// presentForm - Answer the register button with the name modal
func (h *Handler) presentForm(i *discordgo.Interaction) error {
	return h.platform.Respond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: config.RegisterModalID,
			Title:    config.ModalTitle,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    config.NameInputID,
						Label:       config.NameLabel,
						Style:       discordgo.TextInputShort,
						Placeholder: config.NamePlaceholder,
						MinLength:   config.NameMinLength,
						MaxLength:   config.NameMaxLength,
					},
				}},
			},
		},
	})
}

// submitForm - Grant the verify role, log the registration and confirm to the user
func (h *Handler) submitForm(i *discordgo.Interaction) error {
	user := interactionUser(i)
	name := strings.TrimSpace(modalValue(i, config.NameInputID))
	if n := utf8.RuneCountInString(name); n < config.NameMinLength || n > config.NameMaxLength {
		return h.reply(i, config.RegisterBadName)
	}

	settings := h.store.Load()

	status, outcome := h.grantVerifyRole(i.GuildID, user.ID, settings.VerifyRoleID)
	h.metrics.Registration(outcome)

	if settings.LogChannelID != "" {
		h.logRegistration(settings.LogChannelID.String(), name, user, status)
	}

	return h.reply(i, fmt.Sprintf(config.RegisterDone, name, status))
}

// grantVerifyRole - Never fails, the outcome is reported as a status string
func (h *Handler) grantVerifyRole(guildID, userID string, roleID db.ID) (status, outcome string) {
	if roleID == "" {
		return config.RoleStatusNotConfigured, grantNotConfigured
	}

	role, err := h.platform.Role(guildID, roleID.String())
	if err != nil {
		h.logger.Debug("verify role not found", zap.String("role", roleID.String()), zap.Error(err))
		return config.RoleStatusNotFound, grantNotFound
	}

	if err := h.platform.AddRole(guildID, userID, role.ID); err != nil {
		h.logger.Warn("failed to grant verify role", zap.String("role", role.Name), zap.String("user", userID), zap.Error(err))
		return config.RoleStatusFailed, grantFailed
	}
	return fmt.Sprintf(config.RoleStatusGranted, role.Name), grantOK
}

func (h *Handler) logRegistration(channelID, name string, user *discordgo.User, status string) {
	channel, err := h.platform.Channel(channelID)
	if err != nil {
		h.logger.Debug("log channel not found", zap.String("channel", channelID), zap.Error(err))
		return
	}

	_, err = h.platform.SendMessage(channel.ID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title: config.LogTitle,
			Color: config.ColorGreen,
			Fields: []*discordgo.MessageEmbedField{
				{Name: config.LogFieldName, Value: name},
				{Name: config.LogFieldUser, Value: fmt.Sprintf("%s (%s)", userMention(user.ID), user.ID)},
				{Name: config.LogFieldRole, Value: status, Inline: true},
			},
		}},
	})
	if err != nil {
		h.logger.Warn("failed to send registration log", zap.String("channel", channelID), zap.Error(err))
	}
}
