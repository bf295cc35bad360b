package chesscom

type TitledPlayersResponse struct {
	Players []string `json:"players"`
}
