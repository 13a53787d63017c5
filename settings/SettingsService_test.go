package settings

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func freshHolder(t *testing.T) {
	t.Helper()
	ResetSettingsService()
	initializations.Store(0)
	t.Cleanup(ResetSettingsService)
}

func TestGetSettingsService(t *testing.T) {
	t.Run("Should return the same instance on every call", func(t *testing.T) {
		freshHolder(t)
		first := GetSettingsService()
		for i := 0; i < 10; i++ {
			assert.Same(t, first, GetSettingsService())
		}
	})

	t.Run("Should initialize exactly once", func(t *testing.T) {
		freshHolder(t)
		GetSettingsService()
		GetSettingsService()
		GetSettingsService()
		assert.Equal(t, int32(1), initializations.Load())
	})

	t.Run("Should seed the default theme", func(t *testing.T) {
		freshHolder(t)
		theme, present := GetSettingsService().GetSetting(ThemeSetting)
		require.True(t, present)
		assert.Equal(t, DefaultTheme, theme)
		assert.Equal(t, 1, GetSettingsService().Len())
	})

	t.Run("Should not re-run the initialization over existing changes", func(t *testing.T) {
		freshHolder(t)
		GetSettingsService().SetSetting(ThemeSetting, "light")
		theme, _ := GetSettingsService().GetSetting(ThemeSetting)
		assert.Equal(t, "light", theme)
	})

	t.Run("Should build a single instance under concurrent first calls", func(t *testing.T) {
		defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
		freshHolder(t)
		const callers = 64
		results := make([]*SettingsService, callers)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				results[i] = GetSettingsService()
			}(i)
		}
		close(start)
		wg.Wait()
		for _, result := range results {
			assert.Same(t, results[0], result)
		}
		assert.Equal(t, int32(1), initializations.Load())
	})
}

func TestResetSettingsService(t *testing.T) {
	t.Run("Should start over with the defaults", func(t *testing.T) {
		freshHolder(t)
		before := GetSettingsService()
		before.SetSetting(ThemeSetting, "light")
		ResetSettingsService()
		after := GetSettingsService()
		assert.NotSame(t, before, after)
		theme, _ := after.GetSetting(ThemeSetting)
		assert.Equal(t, DefaultTheme, theme)
		assert.Equal(t, int32(2), initializations.Load())
	})
}

func TestSettings(t *testing.T) {
	t.Run("Should make changes visible through every reference", func(t *testing.T) {
		freshHolder(t)
		GetSettingsService().SetSetting(ThemeSetting, "light")
		theme, present := GetSettingsService().GetSetting(ThemeSetting)
		require.True(t, present)
		assert.Equal(t, "light", theme)
	})

	t.Run("Should report a missing setting as absent", func(t *testing.T) {
		freshHolder(t)
		value, present := GetSettingsService().GetSetting("nonexistent")
		assert.False(t, present)
		assert.Empty(t, value)
	})

	t.Run("Should tell an empty value apart from a missing one", func(t *testing.T) {
		freshHolder(t)
		GetSettingsService().SetSetting("empty", "")
		value, present := GetSettingsService().GetSetting("empty")
		assert.True(t, present)
		assert.Empty(t, value)
	})

	t.Run("Should follow the theme and font scenario", func(t *testing.T) {
		freshHolder(t)
		theme, _ := GetSettingsService().GetSetting(ThemeSetting)
		assert.Equal(t, "dark", theme)

		GetSettingsService().SetSetting(ThemeSetting, "light")
		theme, _ = GetSettingsService().GetSetting(ThemeSetting)
		assert.Equal(t, "light", theme)

		GetSettingsService().SetSetting("font", "serif")
		font, present := GetSettingsService().GetSetting("font")
		require.True(t, present)
		assert.Equal(t, "serif", font)
		theme, _ = GetSettingsService().GetSetting(ThemeSetting)
		assert.Equal(t, "light", theme)

		assert.Equal(t, []string{"font", "theme"}, GetSettingsService().Names())
	})

	t.Run("Should return a detached snapshot", func(t *testing.T) {
		freshHolder(t)
		snapshot := GetSettingsService().Snapshot()
		assert.Equal(t, map[string]string{ThemeSetting: DefaultTheme}, snapshot)
		snapshot[ThemeSetting] = "light"
		theme, _ := GetSettingsService().GetSetting(ThemeSetting)
		assert.Equal(t, DefaultTheme, theme)
	})

	t.Run("Should accept concurrent writers", func(t *testing.T) {
		freshHolder(t)
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				GetSettingsService().SetSetting(string(rune('a'+i)), "x")
				GetSettingsService().GetSetting(ThemeSetting)
			}(i)
		}
		wg.Wait()
		assert.Equal(t, 17, GetSettingsService().Len())
	})
}
