package progress

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/vovakirdan/seeker-ball/internal/core"
)

// Persisted keys.
const (
	KeySelectedBall  = "selectedBallId"
	KeyBallColor     = "ballColor" // written by older versions; read-only fallback
	KeyOwnedBalls    = "ownedBalls"
	KeyTotalXP       = "totalXP"
	KeySpeedIncrease = "speedIncrease"
)

// Defaults and limits for persisted values.
const (
	DefaultXP    = 0.0
	DefaultSlope = 2.0
	MaxSlope     = 50.0
)

// Catalog is the subset of the cosmetic catalog the loader needs to normalize
// ownership and the equipped id.
type Catalog interface {
	DefaultID() string
	Has(id string) bool
	IDForColor(color string) (string, bool)
}

// Profile is the validated durable state of one player.
type Profile struct {
	XP       float64
	Owned    map[string]bool
	Equipped string
	Slope    float64
}

// LoadProfile reads every persisted key once and validates it.
// Missing or malformed values are replaced with their defaults; it never fails.
func LoadProfile(store Store, catalog Catalog) Profile {
	p := Profile{
		XP:    LoadXP(store),
		Owned: LoadOwned(store, catalog),
		Slope: LoadSlope(store),
	}
	p.Equipped = loadEquipped(store, catalog, p.Owned)
	return p
}

// LoadXP returns the stored XP balance, or 0 when missing, malformed or negative.
func LoadXP(store Store) float64 {
	v, ok := parseFloat(store, KeyTotalXP)
	if !ok || v < 0 {
		return DefaultXP
	}
	return v
}

// LoadSlope returns the stored difficulty slope, or DefaultSlope when missing,
// malformed or outside [0, MaxSlope].
func LoadSlope(store Store) float64 {
	v, ok := parseFloat(store, KeySpeedIncrease)
	if !ok || !ValidSlope(v) {
		return DefaultSlope
	}
	return v
}

// ValidSlope reports whether v is an acceptable difficulty slope.
func ValidSlope(v float64) bool {
	return core.Finite(v) && v >= 0 && v <= MaxSlope
}

// LoadOwned returns the ownership set. Unknown ids and false entries are dropped,
// and the default cosmetic is always present.
func LoadOwned(store Store, catalog Catalog) map[string]bool {
	owned := make(map[string]bool)

	if raw, ok := store.Get(KeyOwnedBalls); ok {
		var stored map[string]bool
		if err := json.Unmarshal([]byte(raw), &stored); err == nil {
			for id, has := range stored {
				if has && catalog.Has(id) {
					owned[id] = true
				}
			}
		}
	}

	owned[catalog.DefaultID()] = true
	return owned
}

// loadEquipped resolves the equipped cosmetic, falling back to the legacy color key
// and finally to the default cosmetic.
func loadEquipped(store Store, catalog Catalog, owned map[string]bool) string {
	if id, ok := store.Get(KeySelectedBall); ok {
		id = strings.TrimSpace(id)
		if owned[id] {
			return id
		}
		return catalog.DefaultID()
	}

	if color, ok := store.Get(KeyBallColor); ok {
		if id, found := catalog.IDForColor(color); found && owned[id] {
			return id
		}
	}

	return catalog.DefaultID()
}

// SaveXP persists the XP balance.
func SaveXP(store Store, xp float64) error {
	return store.Set(KeyTotalXP, formatFloat(xp))
}

// SaveSlope persists the difficulty slope.
func SaveSlope(store Store, slope float64) error {
	return store.Set(KeySpeedIncrease, formatFloat(slope))
}

// SaveEquipped persists the equipped cosmetic id.
func SaveEquipped(store Store, id string) error {
	return store.Set(KeySelectedBall, id)
}

// SaveOwned persists the ownership set as a JSON object.
func SaveOwned(store Store, owned map[string]bool) error {
	data, err := json.Marshal(owned)
	if err != nil {
		return err
	}
	return store.Set(KeyOwnedBalls, string(data))
}

func parseFloat(store Store, key string) (float64, bool) {
	raw, ok := store.Get(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !core.Finite(v) {
		return 0, false
	}
	return v, true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
