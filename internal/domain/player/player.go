package player

import (
	"fmt"
)

const (
	profileBaseURL = "https://www.chess.com/member/"
)

// Detail Player profile as served by the chess.com published-data API.
// Optional fields are left empty if the API omits them.
type Detail struct {
	PlayerID   int    `json:"player_id"`
	Username   string `json:"username"`
	URL        string `json:"url"`
	Name       string `json:"name,omitempty"`
	Title      string `json:"title,omitempty"`
	Followers  int    `json:"followers"`
	Country    string `json:"country"`
	LastOnline int64  `json:"last_online"`
	Joined     int64  `json:"joined"`
	Status     string `json:"status"`
	IsStreamer bool   `json:"is_streamer"`
	Verified   bool   `json:"verified"`
	Location   string `json:"location,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	League     string `json:"league,omitempty"`
}

// DisplayName Prefer the real name, fall back to the username
func (d Detail) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.Username
}

type Country struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func ProfileURL(username string) string {
	return fmt.Sprintf("%s%s", profileBaseURL, username)
}
