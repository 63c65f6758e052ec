package sim

import (
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible device run.
// Two devices built with the same SimulationKey and configuration
// MUST store bit-for-bit identical levels for the same operation sequence.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemWorkload is the RNG subsystem for generating bit patterns to store.
	// Uses master seed directly.
	SubsystemWorkload = "workload"

	// SubsystemFluctuator is the RNG subsystem driving fluctuation direction.
	SubsystemFluctuator = "fluctuator"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemWorkload: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := int64(p.key)
	if name != SubsystemWorkload {
		derivedSeed ^= fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
