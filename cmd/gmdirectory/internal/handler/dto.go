package handler

import (
	"github.com/cetteup/gmdirectory/internal"
	"github.com/cetteup/gmdirectory/internal/detail"
	"github.com/cetteup/gmdirectory/internal/directory"
	"github.com/cetteup/gmdirectory/internal/domain/player"
	"github.com/cetteup/gmdirectory/internal/elapsed"
)

type DirectoryPageDTO struct {
	Items        []EntryDTO `json:"items"`
	Page         int        `json:"page"`
	TotalPages   int        `json:"totalPages"`
	TotalMatches int        `json:"totalMatches"`
	HasPrevious  bool       `json:"hasPrevious"`
	HasNext      bool       `json:"hasNext"`
}

type EntryDTO struct {
	Username   string `json:"username"`
	ProfileURL string `json:"profileUrl"`
	// Position within all matches, not a ranking
	Position int `json:"position"`
}

type PlayerDTO struct {
	PlayerID    int     `json:"playerId"`
	Username    string  `json:"username"`
	DisplayName string  `json:"displayName"`
	URL         string  `json:"url"`
	Name        *string `json:"name"`
	Title       *string `json:"title"`
	Followers   int     `json:"followers"`
	Country     *string `json:"country"`
	Location    *string `json:"location"`
	Avatar      *string `json:"avatar"`
	League      *string `json:"league"`
	Status      string  `json:"status"`
	IsStreamer  bool    `json:"isStreamer"`
	Verified    bool    `json:"verified"`
	Joined      string  `json:"joined"`
	LastOnline  int64   `json:"lastOnline"`
	LastSeen    *string `json:"lastSeen"`
	Elapsed     *string `json:"elapsed"`
}

func EncodeDirectoryPage(p directory.Page) DirectoryPageDTO {
	items := make([]EntryDTO, 0, len(p.Items))
	for i, username := range p.Items {
		items = append(items, EntryDTO{
			Username:   username,
			ProfileURL: player.ProfileURL(username),
			Position:   p.Offset() + i + 1,
		})
	}

	return DirectoryPageDTO{
		Items:        items,
		Page:         p.Page,
		TotalPages:   p.TotalPages,
		TotalMatches: p.TotalMatches,
		HasPrevious:  p.HasPrevious(),
		HasNext:      p.HasNext(),
	}
}

func EncodePlayer(s detail.Snapshot) PlayerDTO {
	d := s.Detail
	dto := PlayerDTO{
		PlayerID:    d.PlayerID,
		Username:    d.Username,
		DisplayName: d.DisplayName(),
		URL:         d.URL,
		Name:        internal.ToPointerOrNil(d.Name),
		Title:       internal.ToPointerOrNil(d.Title),
		Followers:   d.Followers,
		Country:     internal.ToPointerOrNil(s.DisplayCountry()),
		Location:    internal.ToPointerOrNil(d.Location),
		Avatar:      internal.ToPointerOrNil(d.Avatar),
		League:      internal.ToPointerOrNil(d.League),
		Status:      d.Status,
		IsStreamer:  d.IsStreamer,
		Verified:    d.Verified,
		Joined:      elapsed.FormatDate(d.Joined),
		LastOnline:  d.LastOnline,
	}

	// Without a last online time there is nothing to count from
	if d.LastOnline != 0 {
		dto.LastSeen = internal.ToPointer(elapsed.FormatDate(d.LastOnline))
		dto.Elapsed = internal.ToPointer(elapsed.Format(d.LastOnline))
	}

	return dto
}
