package economy

import (
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seeker-ball/internal/progress"
)

// PurchaseResult describes the outcome of a purchase attempt.
type PurchaseResult int

const (
	Purchased PurchaseResult = iota
	AlreadyOwned
	Insufficient
	UnknownCosmetic
)

// String returns a short message suitable for UI feedback.
func (r PurchaseResult) String() string {
	switch r {
	case Purchased:
		return "purchased"
	case AlreadyOwned:
		return "already owned"
	case Insufficient:
		return "not enough XP"
	case UnknownCosmetic:
		return "unknown cosmetic"
	default:
		return "unknown"
	}
}

// OK reports whether the purchase went through.
func (r PurchaseResult) OK() bool { return r == Purchased }

// Economy owns the XP balance, the ownership set and the equipped cosmetic.
// Every mutation is written through to the store before the call returns.
type Economy struct {
	store   progress.Store
	catalog *Catalog
	logger  *log.Logger

	xpPerSecond float64

	balance  float64
	owned    map[string]bool
	equipped string
}

// New loads the persisted profile from store and returns an Economy over it.
func New(store progress.Store, catalog *Catalog, xpPerSecond float64) *Economy {
	p := progress.LoadProfile(store, catalog)
	return &Economy{
		store:       store,
		catalog:     catalog,
		logger:      log.New(io.Discard),
		xpPerSecond: xpPerSecond,
		balance:     p.XP,
		owned:       p.Owned,
		equipped:    p.Equipped,
	}
}

// SetLogger sets the logger used to report persistence failures.
func (e *Economy) SetLogger(l *log.Logger) {
	if l != nil {
		e.logger = l
	}
}

// AccrueTimeBasedXP adds xpPerSecond*dt to the balance.
func (e *Economy) AccrueTimeBasedXP(dt float64) {
	if !(dt > 0) {
		return
	}
	e.balance += e.xpPerSecond * dt
	e.persistXP()
}

// AccrueBonusXP adds a flat amount to the balance. Non-positive amounts are ignored.
func (e *Economy) AccrueBonusXP(amount float64) {
	if !(amount > 0) {
		return
	}
	e.balance += amount
	e.persistXP()
}

// Purchase buys, unlocks and equips the cosmetic with the given id.
// State is unchanged unless the result is Purchased.
func (e *Economy) Purchase(id string) PurchaseResult {
	item, ok := e.catalog.Get(id)
	if !ok {
		return UnknownCosmetic
	}
	if e.owned[id] {
		return AlreadyOwned
	}
	if e.balance < item.Cost {
		return Insufficient
	}

	e.balance -= item.Cost
	e.owned[id] = true
	e.equipped = id

	// ownership first: a crash after this write leaves the skin unlocked but unpaid
	e.persistOwned()
	e.persistXP()
	e.persistEquipped()

	e.logger.Debug("cosmetic purchased", "id", id, "cost", item.Cost, "balance", e.balance)
	return Purchased
}

// Equip makes an owned cosmetic active. It returns false for unowned ids.
func (e *Economy) Equip(id string) bool {
	if !e.owned[id] {
		return false
	}
	e.equipped = id
	e.persistEquipped()
	return true
}

// Balance returns the current XP balance.
func (e *Economy) Balance() float64 { return e.balance }

// Owned reports whether id is owned.
func (e *Economy) Owned(id string) bool { return e.owned[id] }

// OwnedIDs returns the owned ids in catalog order.
func (e *Economy) OwnedIDs() []string {
	ids := make([]string, 0, len(e.owned))
	for id := range e.owned {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return e.catalog.IndexOf(ids[i]) < e.catalog.IndexOf(ids[j])
	})
	return ids
}

// Equipped returns the active cosmetic id.
func (e *Economy) Equipped() string { return e.equipped }

// EquippedCosmetic returns the active catalog entry.
func (e *Economy) EquippedCosmetic() Cosmetic {
	c, _ := e.catalog.Get(e.equipped)
	return c
}

// Catalog returns the cosmetic catalog.
func (e *Economy) Catalog() *Catalog { return e.catalog }

func (e *Economy) persistXP() {
	if err := progress.SaveXP(e.store, e.balance); err != nil {
		e.logger.Error("failed to save XP", "err", err)
	}
}

func (e *Economy) persistOwned() {
	if err := progress.SaveOwned(e.store, e.owned); err != nil {
		e.logger.Error("failed to save owned cosmetics", "err", err)
	}
}

func (e *Economy) persistEquipped() {
	if err := progress.SaveEquipped(e.store, e.equipped); err != nil {
		e.logger.Error("failed to save equipped cosmetic", "err", err)
	}
}
