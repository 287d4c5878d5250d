package handlers

import (
	"github.com/Necroforger/dgrouter"
	"github.com/bwmarrin/discordgo"
	"github.com/cufee/botto-register/config"
	db "github.com/cufee/botto-register/database"
)

// commandContext - Passed through dgrouter to a command handler
type commandContext struct {
	i    *discordgo.Interaction
	data discordgo.ApplicationCommandInteractionData
	err  error
}

// id - Snowflake option value, empty if missing
func (c *commandContext) id(name string) db.ID {
	v := c.str(name)
	if !db.ID(v).Valid() {
		return ""
	}
	return db.ID(v)
}

// str - String option value, empty if missing
func (c *commandContext) str(name string) string {
	for _, o := range c.data.Options {
		if o.Name != name {
			continue
		}
		if v, ok := o.Value.(string); ok {
			return v
		}
	}
	return ""
}

// roleName - Name of a role option from the resolved data, or a mention
func (c *commandContext) roleName(id db.ID) string {
	if c.data.Resolved != nil {
		if r, ok := c.data.Resolved.Roles[id.String()]; ok && r != nil {
			return r.Name
		}
	}
	return roleMention(id.String())
}

type commandFunc func(c *commandContext) error

type commandDef struct {
	name    string
	desc    string
	options []*discordgo.ApplicationCommandOption
	run     func(h *Handler) commandFunc
}

func channelOption(desc string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionChannel,
		Name:         "channel",
		Description:  desc,
		ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
		Required:     true,
	}
}

func roleOption(desc string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionRole,
		Name:        "role",
		Description: desc,
		Required:    true,
	}
}

func emojiOption(desc string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "emoji",
		Description: desc,
		Required:    true,
	}
}

var commandDefs = []commandDef{
	{
		name:    "setup",
		desc:    "ส่งปุ่มลงทะเบียนไปยังห้องที่กำหนด",
		options: []*discordgo.ApplicationCommandOption{channelOption("ห้องที่ต้องการส่งปุ่ม")},
		run:     func(h *Handler) commandFunc { return h.setupCommand },
	},
	{
		name:    "setlogs",
		desc:    "ตั้งค่าห้องสำหรับบันทึก Log",
		options: []*discordgo.ApplicationCommandOption{channelOption("ห้องที่ต้องการใช้บันทึก Log")},
		run:     func(h *Handler) commandFunc { return h.setLogsCommand },
	},
	{
		name:    "set_verify_role",
		desc:    "ตั้งค่ายศที่จะได้รับเมื่อลงทะเบียนสำเร็จ",
		options: []*discordgo.ApplicationCommandOption{roleOption("ยศที่ต้องการมอบให้")},
		run:     func(h *Handler) commandFunc { return h.setVerifyRoleCommand },
	},
	{
		name:    "setup_rolegiver",
		desc:    "ส่ง Embed สำหรับเลือกยศ (Role Giver)",
		options: []*discordgo.ApplicationCommandOption{channelOption("ห้องที่ต้องการให้ส่ง Embed เลือกยศ")},
		run:     func(h *Handler) commandFunc { return h.setupRoleGiverCommand },
	},
	{
		name:    "add",
		desc:    "เพิ่ม Emoji และ Role สำหรับระบบเลือกยศ",
		options: []*discordgo.ApplicationCommandOption{emojiOption("Emoji ที่ต้องการใช้"), roleOption("ยศที่ต้องการมอบให้")},
		run:     func(h *Handler) commandFunc { return h.addCommand },
	},
	{
		name:    "remove",
		desc:    "ลบ Emoji และ Role ออกจากระบบเลือกยศ",
		options: []*discordgo.ApplicationCommandOption{emojiOption("Emoji ที่ต้องการลบออก")},
		run:     func(h *Handler) commandFunc { return h.removeCommand },
	},
}

func (h *Handler) newRouter() *dgrouter.Route {
	router := dgrouter.New()
	for _, def := range commandDefs {
		fn := def.run(h)
		router.On(def.name, func(v interface{}) {
			ctx := v.(*commandContext)
			ctx.err = fn(ctx)
		}).Desc(def.desc)
	}
	return router
}

// Commands - Slash command definitions for registration with Discord
func (h *Handler) Commands() []*discordgo.ApplicationCommand {
	perms := config.PermsCode
	dm := false

	options := make(map[string][]*discordgo.ApplicationCommandOption, len(commandDefs))
	for _, def := range commandDefs {
		options[def.name] = def.options
	}

	commands := make([]*discordgo.ApplicationCommand, 0, len(h.router.Routes))
	for _, route := range h.router.Routes {
		commands = append(commands, &discordgo.ApplicationCommand{
			Name:                     route.Name,
			Description:              route.Description,
			Options:                  options[route.Name],
			DefaultMemberPermissions: &perms,
			DMPermission:             &dm,
		})
	}
	return commands
}

// command - Route a slash command to its handler
func (h *Handler) command(i *discordgo.Interaction) error {
	data := i.ApplicationCommandData()
	h.metrics.Command(data.Name)

	route := h.router.Find(data.Name)
	if route == nil || route.Handler == nil {
		return h.reply(i, config.ReplyUnknownCommand)
	}
	if !canManage(i) {
		return h.reply(i, config.ReplyNoPermission)
	}

	ctx := &commandContext{i: i, data: data}
	route.Handler(ctx)
	return ctx.err
}
