package tui

import (
	"io"
	"net"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"

	"github.com/vovakirdan/seeker-ball/internal/progress"
	"github.com/vovakirdan/seeker-ball/internal/storage"
)

// testContext keeps values set by middleware; every other ssh.Context method
// is unused.
type testContext struct {
	ssh.Context
	values map[any]any
}

func (c *testContext) SetValue(key, value any) { c.values[key] = value }
func (c *testContext) Value(key any) any       { return c.values[key] }

type testSession struct {
	ssh.Session
	user string
	ctx  *testContext
}

func newTestSession(user string) testSession {
	return testSession{user: user, ctx: &testContext{values: map[any]any{}}}
}

func (s testSession) User() string         { return s.user }
func (s testSession) Context() ssh.Context { return s.ctx }
func (s testSession) RemoteAddr() net.Addr { return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)} }

func newTestServer(t *testing.T) *SSHServer {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "seeker.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &SSHServer{
		config:   DefaultSSHServerConfig(),
		store:    store,
		profiles: newProfileRegistry(),
		logger:   log.New(io.Discard),
	}
}

func TestProfileRegistryClaim(t *testing.T) {
	r := newProfileRegistry()
	alice := r.claim("alice")

	tests := []struct {
		name    string
		user    string
		persist bool
		profile string // empty: a generated guest name
	}{
		{"second alice is a guest", "alice", false, ""},
		{"other user", "bob", true, "bob"},
		{"empty login", "", true, "guest"},
		{"second empty login", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := r.claim(tt.user)
			if c.Persist != tt.persist {
				t.Errorf("Persist = %v, want %v", c.Persist, tt.persist)
			}
			switch {
			case tt.profile != "" && c.Profile != tt.profile:
				t.Errorf("Profile = %q, want %q", c.Profile, tt.profile)
			case tt.profile == "" && !strings.HasPrefix(c.Profile, "guest-"):
				t.Errorf("Profile = %q, want a guest name", c.Profile)
			}
			if c.Wanted != profileForUser(tt.user) {
				t.Errorf("Wanted = %q, want %q", c.Wanted, profileForUser(tt.user))
			}
		})
	}

	alice.Release()
	alice.Release()
	if c := r.claim("alice"); !c.Persist || c.Profile != "alice" {
		t.Errorf("after release claim = %+v, want alice with persistence", c)
	}
}

func TestProfileMiddlewareOverlappingSessions(t *testing.T) {
	srv := newTestServer(t)

	var claims []profileClaim
	var handler ssh.Handler
	handler = srv.profileMiddleware(func(sess ssh.Session) {
		claims = append(claims, sessionClaim(sess))
		if len(claims) == 1 {
			// a second login arrives while the first is still playing
			handler(newTestSession("alice"))
		}
	})

	handler(newTestSession("alice"))
	handler(newTestSession("alice"))

	if len(claims) != 3 {
		t.Fatalf("claims = %d, want 3", len(claims))
	}
	if !claims[0].Persist || claims[0].Profile != "alice" {
		t.Errorf("first session = %+v, want alice", claims[0])
	}
	if claims[1].Persist || claims[1].Profile == "alice" {
		t.Errorf("overlapping session = %+v, want an unsaved guest", claims[1])
	}
	if !claims[2].Persist || claims[2].Profile != "alice" {
		t.Errorf("session after disconnect = %+v, want alice again", claims[2])
	}
}

func TestSessionClaimWithoutMiddleware(t *testing.T) {
	c := sessionClaim(newTestSession("carol"))
	if c.Persist {
		t.Error("a session without a claim must not persist")
	}
	if c.Wanted != "carol" {
		t.Errorf("Wanted = %q, want carol", c.Wanted)
	}
}

func TestOverlappingSessionsKeepStoredProgress(t *testing.T) {
	srv := newTestServer(t)
	owner := srv.profiles.claim("alice")
	defer owner.Release()
	guest := srv.profiles.claim("alice")

	first := NewModel(srv.sessionOptions(owner, 80, 24, nil))
	second := NewModel(srv.sessionOptions(guest, 80, 24, nil))

	first.Game().Economy().AccrueBonusXP(40)
	second.Game().Economy().AccrueBonusXP(900)
	second.Game().OpenShop()
	second.Game().ShopCursorNext()
	if r := second.Game().PurchaseSelected(); !r.OK() {
		t.Fatalf("guest purchase = %v, want ok", r)
	}

	kv := srv.store.KV("alice", nil)
	if v, _ := kv.Get(progress.KeyTotalXP); v != "40" {
		t.Errorf("stored totalXP = %q, want 40 from the owning session only", v)
	}
	if v, ok := kv.Get(progress.KeyOwnedBalls); ok && strings.Contains(v, second.Game().Highlight()) {
		t.Errorf("owned = %q, guest purchase leaked into the stored profile", v)
	}
	second.Game().Back()

	values, err := srv.store.Values(guest.Profile)
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("guest profile has stored rows %v, want none", values)
	}

	if !strings.Contains(second.View(), "busy in another session") {
		t.Error("guest menu should explain why progress is not saved")
	}
	if strings.Contains(first.View(), "busy in another session") {
		t.Error("owning session should show no notice")
	}
}
