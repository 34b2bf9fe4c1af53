package constant

// Particle System
const (
	// ParticlePoolSize is the default number of pre-allocated visual slots
	ParticlePoolSize = 600

	// ParticleGravity is the downward acceleration applied to particle
	// velocity, in units per second squared
	ParticleGravity = 15.0

	// ParticleLifeDecayRate scales wall-clock dt when consuming particle life.
	// Tuned value, kept verbatim: life drains at twice real time
	ParticleLifeDecayRate = 2.0

	// ParticleScalePerLife maps remaining life to slot scale (fade-by-shrink)
	ParticleScalePerLife = 0.5

	// ParticleDefaultSpeed is the default horizontal spread speed for Emit
	ParticleDefaultSpeed = 5.0

	// ParticleDefaultUpwardBias is the minimum vertical launch speed;
	// actual vertical speed is randomized in [bias, bias+ParticleUpwardSpread]
	ParticleDefaultUpwardBias = 3.0

	// ParticleUpwardSpread is the randomized range above the upward bias
	ParticleUpwardSpread = 2.0

	// ParticleDefaultLifetime is the default particle life in seconds
	ParticleDefaultLifetime = 1.0

	// ParticleSpinFactor scales horizontal speed into cosmetic spin (rad/sec)
	ParticleSpinFactor = 1.0
)

// Orb Homing
const (
	// OrbPickupRange is the distance at which an orb locks onto its target
	OrbPickupRange = 8.0

	// OrbCollectRadius is the distance at which an orb counts as collected
	OrbCollectRadius = 0.8

	// OrbHomingAccel is the acceleration toward the target while homing,
	// in units per second squared
	OrbHomingAccel = 80.0

	// OrbHomingDamping is the per-frame velocity multiplier while homing.
	// Without it the orb overshoots and orbits the target instead of
	// converging
	OrbHomingDamping = 0.95

	// OrbDefaultValue is the reward granted when no value is specified
	OrbDefaultValue = 1

	// OrbSpinRate is the constant cosmetic rotation in radians per second
	OrbSpinRate = 3.0

	// OrbValueTintStep is the per-value-point blend toward white, so richer
	// orbs read brighter at a glance; value 9 and up renders pure white
	OrbValueTintStep = 0.125
)
