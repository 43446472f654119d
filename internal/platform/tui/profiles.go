package tui

import (
	"sync"

	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"
)

// busyProfileNotice is shown in the menu of a session that lost the race for
// its profile.
const busyProfileNotice = "Profile %s is busy in another session: playing as %s, progress not saved."

// profileClaim is the profile a session plays on.
type profileClaim struct {
	Profile string
	// Persist is false for throwaway guests: their progress stays in memory.
	Persist bool
	// Wanted is the profile the login asked for.
	Wanted string

	release func()
}

// Release frees the profile for the next session. Safe to call more than once.
func (c profileClaim) Release() {
	if c.release != nil {
		c.release()
	}
}

// guestClaim returns an unsaved profile with a fresh name.
func guestClaim(wanted string) profileClaim {
	return profileClaim{Profile: "guest-" + uuid.NewString()[:8], Wanted: wanted}
}

// profileRegistry hands each stored profile to at most one live session, so
// only one economy at a time reads and writes a profile's rows.
type profileRegistry struct {
	mu     sync.Mutex
	active map[string]bool
}

func newProfileRegistry() *profileRegistry {
	return &profileRegistry{active: make(map[string]bool)}
}

// claim takes the profile for user. If another session holds it, the caller
// gets a guest profile instead.
func (r *profileRegistry) claim(user string) profileClaim {
	profile := profileForUser(user)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active[profile] {
		return guestClaim(profile)
	}
	r.active[profile] = true

	var once sync.Once
	return profileClaim{
		Profile: profile,
		Persist: true,
		Wanted:  profile,
		release: func() {
			once.Do(func() {
				r.mu.Lock()
				delete(r.active, profile)
				r.mu.Unlock()
			})
		},
	}
}

// profileForUser maps an SSH login to a progress profile.
func profileForUser(user string) string {
	if user == "" {
		return "guest"
	}
	return user
}

type claimKey struct{}

// profileMiddleware holds the login's profile for the lifetime of the
// session and hands the claim to the handlers it wraps.
func (s *SSHServer) profileMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		c := s.profiles.claim(sess.User())
		defer c.Release()
		if !c.Persist {
			s.logger.Info("profile busy, starting guest session", "wanted", c.Wanted, "guest", c.Profile)
		}
		sess.Context().SetValue(claimKey{}, c)
		next(sess)
	}
}

// sessionClaim returns the claim profileMiddleware stored on sess, or an
// unsaved guest when there is none.
func sessionClaim(sess ssh.Session) profileClaim {
	if c, ok := sess.Context().Value(claimKey{}).(profileClaim); ok {
		return c
	}
	return guestClaim(profileForUser(sess.User()))
}
