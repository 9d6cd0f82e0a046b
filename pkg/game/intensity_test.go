package game

import (
	"testing"

	"github.com/gonewx/tornado/pkg/config"
)

// TestNewIntensityStateDefault 测试默认级别和越界初始值的回退
func TestNewIntensityStateDefault(t *testing.T) {
	s := NewIntensityState(config.DefaultLevel)
	if s.Current() != config.DefaultLevel {
		t.Errorf("Current: got %d, want %d", s.Current(), config.DefaultLevel)
	}

	// 越界初始值回退到默认级别
	s = NewIntensityState(99)
	if s.Current() != config.DefaultLevel {
		t.Errorf("Out-of-range initial level: got %d, want default %d", s.Current(), config.DefaultLevel)
	}
}

// TestJumpInRange 测试 [0,5] 内的所有跳转
func TestJumpInRange(t *testing.T) {
	s := NewIntensityState(0)
	for n := config.MinLevel; n <= config.MaxLevel; n++ {
		s.Jump(n)
		if s.Current() != n {
			t.Errorf("Jump(%d): Current() = %d, want %d", n, s.Current(), n)
		}
	}
}

// TestJumpOutOfRange 测试越界跳转被静默忽略
func TestJumpOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 6, 9, 100} {
		s := NewIntensityState(3)
		s.Jump(n)
		if s.Current() != 3 {
			t.Errorf("Jump(%d) should be a no-op, Current() = %d, want 3", n, s.Current())
		}
	}
}

// TestCycleWrapsAround 测试从任意起点循环 6 次回到起点
func TestCycleWrapsAround(t *testing.T) {
	for start := config.MinLevel; start <= config.MaxLevel; start++ {
		s := NewIntensityState(start)
		for i := 0; i < config.LevelCount; i++ {
			s.Cycle()
		}
		if s.Current() != start {
			t.Errorf("After %d cycles from %d: Current() = %d, want %d",
				config.LevelCount, start, s.Current(), start)
		}
	}
}

// TestCycleSequence 测试单步循环的顺序（EF5 之后回到 EF0）
func TestCycleSequence(t *testing.T) {
	s := NewIntensityState(4)
	s.Cycle()
	if s.Current() != 5 {
		t.Errorf("Cycle from 4: got %d, want 5", s.Current())
	}
	s.Cycle()
	if s.Current() != 0 {
		t.Errorf("Cycle from 5: got %d, want 0 (wrap)", s.Current())
	}
}

// TestParamsMatchesLevel 测试 Params 返回当前级别的参数行
func TestParamsMatchesLevel(t *testing.T) {
	s := NewIntensityState(0)
	s.Jump(5)
	if s.Params().Name != "EF5" {
		t.Errorf("Params().Name: got %s, want EF5", s.Params().Name)
	}
	if s.Params().Swirl != config.EFLevels[5].Swirl {
		t.Errorf("Params().Swirl: got %v, want %v", s.Params().Swirl, config.EFLevels[5].Swirl)
	}
}
