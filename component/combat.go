package component

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventAttack        CombatEventType = "attack"
	EventDamageApplied CombatEventType = "damage_applied"
	EventShieldHit     CombatEventType = "shield_hit"
	EventDeath         CombatEventType = "death"
	EventPickup        CombatEventType = "pickup"
)

// CombatEvent is emitted by actors as their combat state changes.
type CombatEvent struct {
	Type     CombatEventType
	Actor    string
	Damage   float64
	Stat     StatKind
	Delta    float64
	PosX     float64
	PosY     float64
	Absorbed bool
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans combat events out to its handlers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Subscribe appends a handler.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
