package game

import (
	"os"
	"testing"

	"github.com/gonewx/tornado/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}

	// 验证默认启动级别
	if settings.StartLevel != config.DefaultLevel {
		t.Errorf("StartLevel: got %v, want %v", settings.StartLevel, config.DefaultLevel)
	}

	// 验证全屏模式默认值
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// newTestGdataManager 使用临时 HOME 目录创建 gdata manager
func newTestGdataManager(t *testing.T) *gdata.Manager {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{
		AppName: "tornado_test_settings",
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

// TestNewSettingsManager 测试正常初始化 SettingsManager
func TestNewSettingsManager(t *testing.T) {
	manager := newTestGdataManager(t)

	sm, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if sm == nil {
		t.Fatal("NewSettingsManager() returned nil")
	}

	// 验证初始化后使用默认设置
	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil after initialization")
	}
	if settings.StartLevel != config.DefaultLevel {
		t.Errorf("Initial StartLevel: got %v, want %v", settings.StartLevel, config.DefaultLevel)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	if sm == nil {
		t.Fatal("NewSettingsManager(nil) returned nil")
	}

	// 验证降级模式使用默认设置且 Save 不报错
	if sm.GetSettings().StartLevel != config.DefaultLevel {
		t.Errorf("Degraded mode StartLevel: got %v, want %v", sm.GetSettings().StartLevel, config.DefaultLevel)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should be a no-op, got error: %v", err)
	}
}

// TestSettingsSaveAndLoad 测试设置的保存和加载往返
func TestSettingsSaveAndLoad(t *testing.T) {
	manager := newTestGdataManager(t)

	sm, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	// 修改并保存设置
	sm.SetStartLevel(5)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 用同一个存储创建新的管理器，应加载到保存的值
	sm2, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("Second NewSettingsManager() error: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.StartLevel != 5 {
		t.Errorf("Loaded StartLevel: got %v, want 5", settings.StartLevel)
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestSetStartLevelClamps 测试越界级别被限制到 [0,5]
func TestSetStartLevelClamps(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetStartLevel(-3)
	if sm.GetSettings().StartLevel != config.MinLevel {
		t.Errorf("SetStartLevel(-3): got %v, want %v", sm.GetSettings().StartLevel, config.MinLevel)
	}

	sm.SetStartLevel(42)
	if sm.GetSettings().StartLevel != config.MaxLevel {
		t.Errorf("SetStartLevel(42): got %v, want %v", sm.GetSettings().StartLevel, config.MaxLevel)
	}
}
