//go:generate go tool stringer -type=State
package detail

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/cetteup/gmdirectory/internal/domain/player"
	"github.com/cetteup/gmdirectory/internal/elapsed"
	"github.com/cetteup/gmdirectory/internal/trace"
)

const (
	FailureMessage = "Failed to load grandmaster details. Please try again later."
)

type State int

const (
	Loading State = iota
	Ready
	Failed
)

type client interface {
	GetPlayerDetails(ctx context.Context, username string) (player.Detail, error)
	GetCountryDetails(ctx context.Context, countryRef string) (player.Country, error)
}

// View Detail view of a single player. A View is loaded once; showing the player again means creating a new View.
type View struct {
	client   client
	username string

	mu      sync.RWMutex
	state   State
	detail  player.Detail
	country string
	err     error
}

type Snapshot struct {
	State   State
	Detail  player.Detail
	Country string
}

// DisplayCountry Resolved country name, or the player's raw country reference if no name is known
func (s Snapshot) DisplayCountry() string {
	if s.Country != "" {
		return s.Country
	}
	return s.Detail.Country
}

func NewView(client client, username string) *View {
	return &View{
		client:   client,
		username: username,
		state:    Loading,
	}
}

// Load Fetch the player, then resolve their country name if they have one.
// Only a failure to fetch the player itself fails the view.
func (v *View) Load(ctx context.Context) error {
	d, err := v.client.GetPlayerDetails(ctx, v.username)
	if err != nil {
		log.Error().
			Err(err).
			Str(trace.LogUsername, v.username).
			Msg("Failed to load player details")

		v.mu.Lock()
		v.state = Failed
		v.err = err
		v.mu.Unlock()
		return err
	}

	country := v.resolveCountry(ctx, d.Country)

	v.mu.Lock()
	v.state = Ready
	v.detail = d
	v.country = country
	v.mu.Unlock()

	log.Debug().
		Str(trace.LogUsername, v.username).
		Stringer(trace.LogState, Ready).
		Msg("Loaded player details")

	return nil
}

func (v *View) resolveCountry(ctx context.Context, ref string) string {
	if ref == "" {
		return ""
	}

	c, err := v.client.GetCountryDetails(ctx, ref)
	if err != nil {
		// Display the raw reference instead
		log.Warn().
			Err(err).
			Str(trace.LogUsername, v.username).
			Str(trace.LogCountryRef, ref).
			Msg("Failed to resolve country, falling back to reference")
		return ref
	}

	return c.Name
}

func (v *View) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

func (v *View) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.err
}

// Message User-facing description of why the view failed, empty unless failed
func (v *View) Message() string {
	if v.State() != Failed {
		return ""
	}
	return FailureMessage
}

func (v *View) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Snapshot{
		State:   v.state,
		Detail:  v.detail,
		Country: v.country,
	}
}

// WatchElapsed Start the once-per-second elapsed time updates for a loaded player.
// No updates are started (and ok is false) unless the view is ready and the player has a last online time.
// The returned stop func is always safe to call.
func (v *View) WatchElapsed(ctx context.Context, fn func(string)) (stop func(), ok bool) {
	s := v.Snapshot()
	if s.State != Ready || s.Detail.LastOnline == 0 {
		return func() {}, false
	}

	return elapsed.Watch(ctx, s.Detail.LastOnline, elapsed.Interval, fn), true
}
