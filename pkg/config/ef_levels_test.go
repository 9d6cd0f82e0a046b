package config

import (
	"fmt"
	"testing"
)

// TestEFLevelNames verifies the parameter table covers EF0 through EF5 in order.
func TestEFLevelNames(t *testing.T) {
	if len(EFLevels) != LevelCount {
		t.Fatalf("len(EFLevels) = %d, want %d", len(EFLevels), LevelCount)
	}
	for i, params := range EFLevels {
		want := fmt.Sprintf("EF%d", i)
		if params.Name != want {
			t.Errorf("EFLevels[%d].Name = %q, want %q", i, params.Name, want)
		}
	}
}

// TestEFLevelMonotonic verifies every visual parameter increases with the level.
func TestEFLevelMonotonic(t *testing.T) {
	for i := 1; i < LevelCount; i++ {
		prev, cur := EFLevels[i-1], EFLevels[i]
		if cur.Swirl <= prev.Swirl {
			t.Errorf("Swirl not increasing at level %d: %.2f <= %.2f", i, cur.Swirl, prev.Swirl)
		}
		if cur.Lift <= prev.Lift {
			t.Errorf("Lift not increasing at level %d: %.1f <= %.1f", i, cur.Lift, prev.Lift)
		}
		if cur.BaseRadius <= prev.BaseRadius {
			t.Errorf("BaseRadius not increasing at level %d: %.1f <= %.1f", i, cur.BaseRadius, prev.BaseRadius)
		}
		if cur.DebrisRate <= prev.DebrisRate {
			t.Errorf("DebrisRate not increasing at level %d: %.2f <= %.2f", i, cur.DebrisRate, prev.DebrisRate)
		}
	}
}

// TestDebrisRateRange verifies debris probabilities stay in [0,1].
func TestDebrisRateRange(t *testing.T) {
	for i, params := range EFLevels {
		if params.DebrisRate < 0 || params.DebrisRate > 1 {
			t.Errorf("EFLevels[%d].DebrisRate = %.2f, want within [0,1]", i, params.DebrisRate)
		}
	}
}

// TestCapacityFunctions verifies the per-category capacity formulas and their
// clamping of out-of-range levels.
func TestCapacityFunctions(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(int) int
		base     int
		perLevel int
	}{
		{"FunnelCapacity", FunnelCapacity, FunnelBaseCount, FunnelPerLevel},
		{"DebrisCapacity", DebrisCapacity, DebrisBaseCount, DebrisPerLevel},
		{"FogCapacity", FogCapacity, FogBaseCount, FogPerLevel},
		{"CloudCapacity", CloudCapacity, CloudBaseCount, CloudPerLevel},
	}
	for _, tt := range tests {
		for level := MinLevel; level <= MaxLevel; level++ {
			want := tt.base + tt.perLevel*level
			if got := tt.fn(level); got != want {
				t.Errorf("%s(%d) = %d, want %d", tt.name, level, got, want)
			}
		}
		// 越界级别收敛到最近的合法级别
		if got := tt.fn(-1); got != tt.fn(MinLevel) {
			t.Errorf("%s(-1) = %d, want %d", tt.name, got, tt.fn(MinLevel))
		}
		if got := tt.fn(99); got != tt.fn(MaxLevel) {
			t.Errorf("%s(99) = %d, want %d", tt.name, got, tt.fn(MaxLevel))
		}
	}
}

// TestDefaultLevelInRange verifies the startup default is a valid level.
func TestDefaultLevelInRange(t *testing.T) {
	if DefaultLevel < MinLevel || DefaultLevel > MaxLevel {
		t.Errorf("DefaultLevel = %d, want within [%d,%d]", DefaultLevel, MinLevel, MaxLevel)
	}
}
