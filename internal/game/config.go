package game

// Viewport defaults (window pixels). The simulation runs in window space;
// Resize re-derives the collision grid from the new dimensions.
const (
	WindowWidth  = 1280
	WindowHeight = 800
)

// Particle pool.
const (
	MaxParticles = 24000
	WrapMargin   = 12.0 // particles crossing this far outside reappear opposite

	WaterDrift    = 0.06  // noise impulse per tick
	WaterFriction = 0.985 // velocity retained per tick (water only)
	WaterNoiseFq  = 0.004 // spatial noise frequency
	WaterHotDecay = 0.005 // blast charge bleed per tick

	AgentDebrisSink  = 0.02
	AgentDebrisDrag  = 0.95
	AgentDebrisDecay = 0.008

	RockDebrisSink  = 0.05
	RockDebrisDrag  = 0.90
	RockDebrisDecay = 0.015
)

// Rocks.
const (
	RockCount         = 4
	RockEdgePad       = 140.0
	RockCoreRadiusMin = 60.0
	RockCoreRadiusMax = 90.0
	RockSatellitesMin = 3
	RockSatellitesMax = 5
	RockSpinMax       = 0.004 // rad/tick, per-rock constant
	RockDestroyRadius = 70.0  // local-space destruction reach of one attack
	RockHitBurst      = 120   // debris particles per landed attack
)

// Jellyfish.
const (
	JellyCount        = 6
	JellyMaxHP        = 100.0
	JellyIdleSpeed    = 0.35
	JellyBurstSpeed   = 2.0
	JellySpeedGain    = 0.10 // exponential blend toward propulsion target
	JellyBearingGain  = 0.05 // targetAngle chases bearing at this rate
	JellyHeadingGain  = 0.08 // heading chases targetAngle at this rate
	JellyWanderGain   = 0.35 // noise contribution to targetAngle, rad
	JellySwimRate     = 0.09 // swim-phase advance per tick
	JellyTrailMin     = 0.75 // propulsion pulse above which a trail slot is emitted
	JellyHeadDist     = 26.0 // head point offset, scaled by size
	JellyTouchRadius  = 18.0 // attack contact slack, scaled by size
	JellyAttackStun   = 90   // ticks
	JellyAttackRecoil = -1.6 // speed set on a landed attack
	JellyHitStun      = 24   // ticks, from taking particle damage
	JellyEdgeSlack    = 80.0 // beyond viewport by this much forces re-entry
	JellyStunRise     = 0.35 // upward drift per stunned tick
	JellyDeathBurst   = 600  // debris slot cap per death
)

// Damage model for lethal water particles.
const (
	DamageCritical   = 12.0
	DamageHead       = 6.0
	DamageTail       = 4.0
	CritAlignment    = 0.6 // hit-normal · forward above this is a critical
	HeadRadius       = 16.0
	HeadOffset       = 14.0
	TailRadius       = 12.0
	TailOffset       = 16.0
	MinDamageSpeedSq = 9.0 // hot particles slower than this can't hurt
	HitReflect       = -0.45
)

// Pointer, charge and blast.
const (
	ChargeMax       = 100.0
	ChargeIncrement = 1.4
	AimThresholdSq  = 400.0 // drag vector shorter than this cancels the shot
	BlastBaseRadius = 70.0
	BlastRadiusGain = 2.4  // radius grows by this per strength unit
	BlastSpeedGain  = 0.09 // particle speed per strength unit
	BlastMinSpeed   = 3.0
	BlastSpread     = 0.35 // random cone half-angle, rad
	BlastHotMin     = 18.0 // strength below this never marks particles hot
	HoverRadius     = 70.0
	HoverFling      = 0.6 // share of pointer velocity passed to pushed water
	RepulseRadius   = 110.0
	RepulseGain     = 0.03
)

// Spatial grid.
const (
	GridCellSize = 100.0
)

// Rock/particle contact response.
const (
	RockContactDamp  = 0.45
	RockContactPush  = 1.6
	RockOverTopNudge = 0.8
	RockUpNormalMin  = 0.3 // |ny| above this (pointing up) adds the tangential nudge
)
