package domain

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBuildingState_AllAlive(t *testing.T) {
	// Todos los bits "alive" en 1: nada destruido en ningún lado.
	mask := uint64(radiantTowerMask) |
		uint64(radiantRaxMask)<<radiantRaxShift |
		uint64(direTowerMask)<<direTowerShift |
		uint64(direRaxMask)<<direRaxShift

	counts := DecodeBuildingState(mask)
	assert.Equal(t, BuildingCounts{}, counts)
}

func TestDecodeBuildingState_AllDestroyed(t *testing.T) {
	counts := DecodeBuildingState(0)
	assert.Equal(t, 11, counts.RadiantTowersKilled) // radiant.TowersKilled = dire towers destroyed = all 11
	assert.Equal(t, 6, counts.RadiantBarracksKilled)
	assert.Equal(t, 11, counts.DireTowersKilled)
	assert.Equal(t, 6, counts.DireBarracksKilled)
}

func TestDecodeBuildingState_CrossedAssignment(t *testing.T) {
	// radiant towers alive = 0x7FE (one destroyed), everything else fully alive.
	mask := uint64(0x7FE) |
		uint64(radiantRaxMask)<<radiantRaxShift |
		uint64(direTowerMask)<<direTowerShift |
		uint64(direRaxMask)<<direRaxShift

	counts := DecodeBuildingState(mask)
	// One radiant tower destroyed must show up on DIRE's TowersKilled (crossed).
	assert.Equal(t, 1, counts.DireTowersKilled)
	assert.Equal(t, 0, counts.RadiantTowersKilled)
}

// Round-trip across the valid range: alive-count plus destroyed-count must
// always equal capacity, for any combination of bits.
func TestDecodeBuildingState_RoundTripProperty(t *testing.T) {
	samples := []struct{ rTow, rRax, dTow, dRax uint64 }{
		{0, 0, 0, 0},
		{2047, 63, 2047, 63},
		{1, 2, 3, 4},
		{1024, 31, 512, 15},
	}

	for _, s := range samples {
		mask := s.rTow
		mask |= s.rRax << radiantRaxShift
		mask |= s.dTow << direTowerShift
		mask |= s.dRax << direRaxShift

		counts := DecodeBuildingState(mask)

		wantRadiantTowDestroyed := 11 - bits.OnesCount64(s.rTow)
		wantDireTowDestroyed := 11 - bits.OnesCount64(s.dTow)
		wantRadiantRaxDestroyed := 6 - bits.OnesCount64(s.rRax)
		wantDireRaxDestroyed := 6 - bits.OnesCount64(s.dRax)

		assert.Equal(t, wantDireTowDestroyed, counts.RadiantTowersKilled)
		assert.Equal(t, wantDireRaxDestroyed, counts.RadiantBarracksKilled)
		assert.Equal(t, wantRadiantTowDestroyed, counts.DireTowersKilled)
		assert.Equal(t, wantRadiantRaxDestroyed, counts.DireBarracksKilled)
	}
}
