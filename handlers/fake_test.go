package handlers

import (
	"errors"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	db "github.com/cufee/botto-register/database"
	"github.com/cufee/botto-register/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap/zaptest"
)

const (
	testGuild = "1000000000000000001"
	testBot   = "1000000000000000002"
	testAdmin = "1000000000000000003"
	testUser  = "1000000000000000004"
)

var errForbidden = errors.New("HTTP 403 Forbidden, Missing Permissions")

type sentMessage struct {
	channelID string
	msg       *discordgo.MessageSend
}

// fakePlatform - In-memory guild with one set of channels, roles and members
type fakePlatform struct {
	mu sync.Mutex

	channels map[string]*discordgo.Channel
	messages map[string]*discordgo.Message
	roles    map[string]*discordgo.Role
	members  map[string]*discordgo.Member

	// messageID -> emoji api names
	reactions map[string][]string
	badEmoji  map[string]bool

	sent      []sentMessage
	responses []*discordgo.InteractionResponse
	edits     []*discordgo.MessageEmbed
	roleCalls int

	failRoles bool
	nextID    int64
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		channels:  make(map[string]*discordgo.Channel),
		messages:  make(map[string]*discordgo.Message),
		roles:     make(map[string]*discordgo.Role),
		members:   make(map[string]*discordgo.Member),
		reactions: make(map[string][]string),
		badEmoji:  make(map[string]bool),
		nextID:    2000000000000000000,
	}
}

func (f *fakePlatform) addChannel(id, name string) {
	f.channels[id] = &discordgo.Channel{ID: id, GuildID: testGuild, Name: name}
}

func (f *fakePlatform) addRole(id, name string) {
	f.roles[id] = &discordgo.Role{ID: id, Name: name}
}

func (f *fakePlatform) addMember(id string, roles ...string) {
	f.members[id] = &discordgo.Member{GuildID: testGuild, User: &discordgo.User{ID: id}, Roles: roles}
}

func (f *fakePlatform) memberRoles(id string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.members[id].Roles...)
}

func (f *fakePlatform) lastResponse() *discordgo.InteractionResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.responses) == 0 {
		return nil
	}
	return f.responses[len(f.responses)-1]
}

func (f *fakePlatform) BotUserID() string { return testBot }

func (f *fakePlatform) Respond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakePlatform) Channel(channelID string) (*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.channels[channelID]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (f *fakePlatform) Message(channelID, messageID string) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.messages[messageID]
	if !ok || m.ChannelID != channelID {
		return nil, errNotFound
	}
	return m, nil
}

func (f *fakePlatform) SendMessage(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.channels[channelID]; !ok {
		return nil, errNotFound
	}
	f.nextID++
	m := &discordgo.Message{ID: strconv.FormatInt(f.nextID, 10), ChannelID: channelID, Embeds: msg.Embeds}
	f.messages[m.ID] = m
	f.sent = append(f.sent, sentMessage{channelID: channelID, msg: msg})
	return m, nil
}

func (f *fakePlatform) EditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.messages[messageID]; !ok {
		return errNotFound
	}
	f.edits = append(f.edits, embed)
	return nil
}

func (f *fakePlatform) Role(_, roleID string) (*discordgo.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.roles[roleID]
	if !ok {
		return nil, errNotFound
	}
	return r, nil
}

func (f *fakePlatform) Member(_, userID string) (*discordgo.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.members[userID]
	if !ok {
		return nil, errNotFound
	}
	cp := *m
	cp.Roles = append([]string(nil), m.Roles...)
	return &cp, nil
}

func (f *fakePlatform) AddRole(_, userID, roleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roleCalls++
	if f.failRoles {
		return errForbidden
	}
	m, ok := f.members[userID]
	if !ok {
		return errNotFound
	}
	for _, r := range m.Roles {
		if r == roleID {
			return nil
		}
	}
	m.Roles = append(m.Roles, roleID)
	return nil
}

func (f *fakePlatform) RemoveRole(_, userID, roleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roleCalls++
	if f.failRoles {
		return errForbidden
	}
	m, ok := f.members[userID]
	if !ok {
		return errNotFound
	}
	kept := m.Roles[:0]
	for _, r := range m.Roles {
		if r != roleID {
			kept = append(kept, r)
		}
	}
	m.Roles = kept
	return nil
}

func (f *fakePlatform) AddReaction(_, messageID, emoji string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.badEmoji[emoji] {
		return errors.New("HTTP 400 Bad Request, Unknown Emoji")
	}
	if _, ok := f.messages[messageID]; !ok {
		return errNotFound
	}
	f.reactions[messageID] = append(f.reactions[messageID], emoji)
	return nil
}

func (f *fakePlatform) ClearReaction(_, messageID, emoji string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.messages[messageID]; !ok {
		return errNotFound
	}
	kept := f.reactions[messageID][:0]
	for _, e := range f.reactions[messageID] {
		if e != emoji {
			kept = append(kept, e)
		}
	}
	f.reactions[messageID] = kept
	return nil
}

type testBotEnv struct {
	platform *fakePlatform
	store    db.Store
	metrics  *metrics.Metrics
	handler  *Handler
}

func newTestBot(t *testing.T) *testBotEnv {
	t.Helper()
	logger := zaptest.NewLogger(t)
	p := newFakePlatform()
	store := db.NewFileStore(filepath.Join(t.TempDir(), "config.json"), logger)
	m := metrics.New(prometheus.NewRegistry())
	return &testBotEnv{
		platform: p,
		store:    store,
		metrics:  m,
		handler:  New(p, store, logger, m),
	}
}

// Interaction builders

func adminMember() *discordgo.Member {
	return &discordgo.Member{
		User:        &discordgo.User{ID: testAdmin},
		Permissions: discordgo.PermissionAdministrator,
	}
}

func commandInteraction(member *discordgo.Member, name string, options map[string]string) *discordgo.Interaction {
	data := discordgo.ApplicationCommandInteractionData{Name: name}
	for k, v := range options {
		data.Options = append(data.Options, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  k,
			Type:  discordgo.ApplicationCommandOptionString,
			Value: v,
		})
	}
	return &discordgo.Interaction{
		Type:    discordgo.InteractionApplicationCommand,
		GuildID: testGuild,
		Member:  member,
		Data:    data,
	}
}

func (e *testBotEnv) runCommand(name string, options map[string]string) *discordgo.InteractionResponse {
	e.handler.Dispatch(CommandInvoked{Interaction: commandInteraction(adminMember(), name, options)})
	return e.platform.lastResponse()
}

func buttonInteraction(userID, customID string) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type:    discordgo.InteractionMessageComponent,
		GuildID: testGuild,
		Member:  &discordgo.Member{User: &discordgo.User{ID: userID}},
		Data:    discordgo.MessageComponentInteractionData{CustomID: customID, ComponentType: discordgo.ButtonComponent},
	}
}

func formInteraction(userID, customID, name string) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type:    discordgo.InteractionModalSubmit,
		GuildID: testGuild,
		Member:  &discordgo.Member{User: &discordgo.User{ID: userID}},
		Data: discordgo.ModalSubmitInteractionData{
			CustomID: customID,
			Components: []discordgo.MessageComponent{
				&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: "name_input", Value: name},
				}},
			},
		},
	}
}

func reaction(userID, messageID string, emoji discordgo.Emoji) *discordgo.MessageReaction {
	return &discordgo.MessageReaction{
		UserID:    userID,
		MessageID: messageID,
		ChannelID: "1000000000000000010",
		GuildID:   testGuild,
		Emoji:     emoji,
	}
}
