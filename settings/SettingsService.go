// Package settings holds the process-wide settings manager.
package settings

import (
	"fmt"
	"settings-manager/logging"
	"sort"
	"sync"
	"sync/atomic"
)

const ThemeSetting = "theme"
const DefaultTheme = "dark"

var instance atomic.Pointer[SettingsService]
var mutex sync.Mutex

// incremented by each construction, read by the tests
var initializations atomic.Int32

// SettingsService is a mutable name/value store shared by the whole process.
type SettingsService struct {
	lock   sync.RWMutex
	values map[string]string
}

// GetSettingsService returns the shared settings manager, creating it on the first call.
func GetSettingsService() *SettingsService {
	if current := instance.Load(); current != nil {
		return current
	}
	mutex.Lock()
	defer mutex.Unlock()
	if current := instance.Load(); current != nil {
		return current
	}
	created := newSettingsService()
	instance.Store(created)
	return created
}

// ResetSettingsService drops the shared instance so the next GetSettingsService builds a
// fresh one. Meant for tests only.
func ResetSettingsService() {
	mutex.Lock()
	defer mutex.Unlock()
	instance.Store(nil)
}

func newSettingsService() *SettingsService {
	initializations.Add(1)
	settingsService := &SettingsService{
		values: map[string]string{
			ThemeSetting: DefaultTheme,
		},
	}
	logging.GetLoggingService().Debug(fmt.Sprintf("settings initialized with %d default(s)", len(settingsService.values)))
	return settingsService
}

// SetSetting inserts or overwrites a setting.
func (settingsService *SettingsService) SetSetting(name string, value string) {
	settingsService.lock.Lock()
	settingsService.values[name] = value
	settingsService.lock.Unlock()
	logging.GetLoggingService().Debug(fmt.Sprintf("setting '%s' set to '%s'", name, value))
}

// GetSetting returns the value of a setting, and false when it has never been set.
func (settingsService *SettingsService) GetSetting(name string) (string, bool) {
	settingsService.lock.RLock()
	defer settingsService.lock.RUnlock()
	value, present := settingsService.values[name]
	return value, present
}

func (settingsService *SettingsService) Len() int {
	settingsService.lock.RLock()
	defer settingsService.lock.RUnlock()
	return len(settingsService.values)
}

// Names returns the setting names in lexical order.
func (settingsService *SettingsService) Names() []string {
	settingsService.lock.RLock()
	names := make([]string, 0, len(settingsService.values))
	for name := range settingsService.values {
		names = append(names, name)
	}
	settingsService.lock.RUnlock()
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the settings; changing it does not affect the store.
func (settingsService *SettingsService) Snapshot() map[string]string {
	settingsService.lock.RLock()
	defer settingsService.lock.RUnlock()
	snapshot := make(map[string]string, len(settingsService.values))
	for name, value := range settingsService.values {
		snapshot[name] = value
	}
	return snapshot
}
