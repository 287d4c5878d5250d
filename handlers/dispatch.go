package handlers

import (
	"fmt"

	"github.com/Necroforger/dgrouter"
	"github.com/bwmarrin/discordgo"
	"github.com/cufee/botto-register/config"
	db "github.com/cufee/botto-register/database"
	"github.com/cufee/botto-register/metrics"
	"go.uber.org/zap"
)

// Event - One platform event routed through Dispatch
type Event interface {
	eventName() string
}

// CommandInvoked - Slash command
type CommandInvoked struct{ Interaction *discordgo.Interaction }

// ButtonPressed - Message component click
type ButtonPressed struct{ Interaction *discordgo.Interaction }

// FormSubmitted - Modal submit
type FormSubmitted struct{ Interaction *discordgo.Interaction }

// ReactionAdded - Raw reaction add
type ReactionAdded struct{ Reaction *discordgo.MessageReaction }

// ReactionRemoved - Raw reaction remove
type ReactionRemoved struct{ Reaction *discordgo.MessageReaction }

func (CommandInvoked) eventName() string  { return "command" }
func (ButtonPressed) eventName() string   { return "button" }
func (FormSubmitted) eventName() string   { return "form" }
func (ReactionAdded) eventName() string   { return "reaction_add" }
func (ReactionRemoved) eventName() string { return "reaction_remove" }

// Handler - Bot event handlers
type Handler struct {
	platform Platform
	store    db.Store
	logger   *zap.Logger
	metrics  *metrics.Metrics
	router   *dgrouter.Route
}

// New - Create handlers and the command router
func New(platform Platform, store db.Store, logger *zap.Logger, m *metrics.Metrics) *Handler {
	h := &Handler{
		platform: platform,
		store:    store,
		logger:   logger,
		metrics:  m,
	}
	h.router = h.newRouter()
	return h
}

// Dispatch - Run the handler for an event. Errors and panics stop here.
func (h *Handler) Dispatch(e Event) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("event handler panicked", zap.String("event", e.eventName()), zap.Any("panic", r))
		}
	}()

	var err error
	switch ev := e.(type) {
	case ReactionAdded:
		if h.isSelf(ev.Reaction.UserID) {
			return
		}
		err = h.reactionAdded(ev.Reaction)
	case ReactionRemoved:
		if h.isSelf(ev.Reaction.UserID) {
			return
		}
		err = h.reactionRemoved(ev.Reaction)
	case CommandInvoked:
		err = h.command(ev.Interaction)
	case ButtonPressed:
		err = h.buttonPressed(ev.Interaction)
	case FormSubmitted:
		err = h.formSubmitted(ev.Interaction)
	default:
		err = fmt.Errorf("unhandled event %T", e)
	}

	if err != nil {
		h.logger.Warn("event handler failed", zap.String("event", e.eventName()), zap.Error(err))
	}
}

func (h *Handler) isSelf(userID string) bool {
	botID := h.platform.BotUserID()
	return botID != "" && userID == botID
}

// InteractionCreate - discordgo handler for all interactions
func (h *Handler) InteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.Dispatch(CommandInvoked{Interaction: i.Interaction})
	case discordgo.InteractionMessageComponent:
		h.Dispatch(ButtonPressed{Interaction: i.Interaction})
	case discordgo.InteractionModalSubmit:
		h.Dispatch(FormSubmitted{Interaction: i.Interaction})
	}
}

// ReactionAdd - discordgo handler for raw reaction adds
func (h *Handler) ReactionAdd(_ *discordgo.Session, e *discordgo.MessageReactionAdd) {
	h.Dispatch(ReactionAdded{Reaction: e.MessageReaction})
}

// ReactionRemove - discordgo handler for raw reaction removes
func (h *Handler) ReactionRemove(_ *discordgo.Session, e *discordgo.MessageReactionRemove) {
	h.Dispatch(ReactionRemoved{Reaction: e.MessageReaction})
}

func (h *Handler) buttonPressed(i *discordgo.Interaction) error {
	if i.MessageComponentData().CustomID != config.RegisterButtonID {
		return nil
	}
	return h.presentForm(i)
}

func (h *Handler) formSubmitted(i *discordgo.Interaction) error {
	if i.ModalSubmitData().CustomID != config.RegisterModalID {
		return nil
	}
	return h.submitForm(i)
}
