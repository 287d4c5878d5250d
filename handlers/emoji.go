package handlers

import (
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// <:name:id> or <a:name:id>
var customEmojiRe = regexp.MustCompile(`^<(a?):([A-Za-z0-9_~]+):(\d+)>$`)

// emojiToken - Key a reaction's emoji is stored under, matches what the
// operator pastes into the add command
func emojiToken(e *discordgo.Emoji) string {
	return e.MessageFormat()
}

// reactionAPIName - Format a stored token for the reactions endpoint
func reactionAPIName(token string) string {
	if m := customEmojiRe.FindStringSubmatch(token); m != nil {
		return m[2] + ":" + m[3]
	}
	return token
}

func cleanEmojiArg(arg string) string {
	return strings.TrimSpace(arg)
}
