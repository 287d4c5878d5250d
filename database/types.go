package database

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

// ID - Discord snowflake stored as a string, empty means unset
type ID string

// UnmarshalJSON accepts both string and numeric ids, invalid ids decode as unset
func (id *ID) UnmarshalJSON(data []byte) error {
	*id = ""
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var s string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
	} else {
		s = string(raw)
	}

	parsed, err := snowflake.ParseString(s)
	if err != nil || parsed <= 0 {
		return nil
	}
	*id = ID(parsed.String())
	return nil
}

// Valid - True if the id is a positive snowflake
func (id ID) Valid() bool {
	n, err := strconv.ParseInt(string(id), 10, 64)
	return err == nil && n > 0
}

func (id ID) String() string {
	return string(id)
}

// Settings - Bot settings record, always loaded and saved whole
type Settings struct {
	LogChannelID       ID            `json:"log_channel_id,omitempty"`
	VerifyRoleID       ID            `json:"verify_role_id,omitempty"`
	RoleGiverMessageID ID            `json:"rolegiver_message_id,omitempty"`
	RoleGiverChannelID ID            `json:"rolegiver_channel_id,omitempty"`
	RoleGiverRoles     map[string]ID `json:"rolegiver_roles,omitempty"`
}

// HasRoleGiver - True if a role giver message location is recorded
func (s Settings) HasRoleGiver() bool {
	return s.RoleGiverMessageID != "" && s.RoleGiverChannelID != ""
}

// RoleForEmoji - Look up the role bound to an emoji token
func (s Settings) RoleForEmoji(emoji string) (ID, bool) {
	roleID, ok := s.RoleGiverRoles[emoji]
	if !ok || roleID == "" {
		return "", false
	}
	return roleID, true
}

// SetRole - Bind an emoji token to a role
func (s *Settings) SetRole(emoji string, roleID ID) {
	if s.RoleGiverRoles == nil {
		s.RoleGiverRoles = make(map[string]ID)
	}
	s.RoleGiverRoles[emoji] = roleID
}

// RemoveRole - Unbind an emoji token, false if it was not bound
func (s *Settings) RemoveRole(emoji string) bool {
	if _, ok := s.RoleGiverRoles[emoji]; !ok {
		return false
	}
	delete(s.RoleGiverRoles, emoji)
	return true
}
