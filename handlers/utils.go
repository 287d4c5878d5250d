package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/cufee/botto-register/config"
)

// reply - Ephemeral text response to an interaction
func (h *Handler) reply(i *discordgo.Interaction, content string) error {
	return h.platform.Respond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// interactionUser - User behind an interaction, in a guild or a DM
func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}

// canManage - Administrator or manage roles in the guild
func canManage(i *discordgo.Interaction) bool {
	if i.Member == nil {
		return false
	}
	perms := i.Member.Permissions
	return perms&discordgo.PermissionAdministrator != 0 || perms&config.PermsCode != 0
}

// modalValue - Value of a text input in a submitted modal
func modalValue(i *discordgo.Interaction, id string) string {
	for _, row := range i.ModalSubmitData().Components {
		var components []discordgo.MessageComponent
		switch r := row.(type) {
		case *discordgo.ActionsRow:
			components = r.Components
		case discordgo.ActionsRow:
			components = r.Components
		}
		for _, c := range components {
			switch ti := c.(type) {
			case *discordgo.TextInput:
				if ti.CustomID == id {
					return ti.Value
				}
			case discordgo.TextInput:
				if ti.CustomID == id {
					return ti.Value
				}
			}
		}
	}
	return ""
}

func channelMention(id string) string {
	return fmt.Sprintf("<#%s>", id)
}

func roleMention(id string) string {
	return fmt.Sprintf("<@&%s>", id)
}

func userMention(id string) string {
	return fmt.Sprintf("<@%s>", id)
}
