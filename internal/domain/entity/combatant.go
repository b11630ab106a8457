package entity

import "time"

// Vitals is the health state of a combatant.
// Health always stays within [0, MaxHealth].
type Vitals struct {
	Health    int
	MaxHealth int
	Speed     int
	died      bool
}

// NewVitals creates full-health vitals.
func NewVitals(maxHealth, speed int) Vitals {
	return Vitals{Health: maxHealth, MaxHealth: maxHealth, Speed: speed}
}

// Damage lowers health, never below zero.
func (v *Vitals) Damage(amount int) {
	v.Health -= amount
	if v.Health < 0 {
		v.Health = 0
	}
	if v.Health > v.MaxHealth {
		v.Health = v.MaxHealth
	}
}

// Heal raises health, never above MaxHealth.
func (v *Vitals) Heal(amount int) {
	v.Health += amount
	if v.Health > v.MaxHealth {
		v.Health = v.MaxHealth
	}
	if v.Health < 0 {
		v.Health = 0
	}
}

// Fill restores health to MaxHealth.
func (v *Vitals) Fill() {
	v.Health = v.MaxHealth
}

// SetMaxHealth changes the cap and fills health to it.
func (v *Vitals) SetMaxHealth(max int) {
	v.MaxHealth = max
	v.Health = max
}

// IsAlive returns true if health > 0
func (v *Vitals) IsAlive() bool {
	return v.Health > 0
}

// Dead reports whether the death transition already ran.
func (v *Vitals) Dead() bool {
	return v.died
}

// Ratio returns health/MaxHealth for healthbars.
func (v *Vitals) Ratio() float64 {
	if v.MaxHealth <= 0 {
		return 0
	}
	return float64(v.Health) / float64(v.MaxHealth)
}

// Damageable is an actor with health that arrows and blades can hit.
type Damageable interface {
	Actor
	Vitals() *Vitals
	TakeHit(amount int, now time.Duration)
}

// checkDeath runs onDeath exactly once when health reaches zero and
// then destroys the actor. It reports whether the actor is dead.
func checkDeath(env Env, d Damageable, now time.Duration, onDeath func(Env, time.Duration)) bool {
	v := d.Vitals()
	if v.died {
		return true
	}
	if v.Health > 0 {
		return false
	}
	v.died = true
	onDeath(env, now)
	env.Destroy(d)
	return true
}
