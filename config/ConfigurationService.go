package config

import (
	"encoding/json"
	"fmt"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"settings-manager/config/model"
	"settings-manager/logging"
	"settings-manager/settings"
	"settings-manager/utils"
	"sort"
	"strings"
	"sync"
	"unicode"
)

var instance *ConfigurationService
var mutex sync.Mutex

type ConfigurationService struct {
	Configuration model.Configuration
}

func GetConfigurationServiceInstance() *ConfigurationService {
	mutex.Lock()
	defer mutex.Unlock()
	if instance == nil {
		instance = &ConfigurationService{}
	}
	return instance
}

func (confService *ConfigurationService) Init(filePath string) (*model.Configuration, error) {
	confService.Configuration = model.Configuration{}

	err := confService.parseFile(filePath)
	if err != nil {
		return nil, err
	}

	// set default values if needed
	confService.Configuration.SetDefaults()

	// ensure that the content is valid
	err = confService.checkContent()
	if err != nil {
		return nil, utils.WrapError("validation failed", err)
	}
	return &confService.Configuration, nil
}

// Apply copies the configured settings into the settings manager, overriding its defaults.
func (confService *ConfigurationService) Apply(settingsService *settings.SettingsService) {
	names := make([]string, 0, len(confService.Configuration.Settings))
	for name := range confService.Configuration.Settings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		settingsService.SetSetting(name, confService.Configuration.Settings[name])
	}
	logging.GetLoggingService().Info(fmt.Sprintf("%d setting(s) applied from the configuration", len(names)))
}

func (confService *ConfigurationService) parseFile(filePath string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return utils.WrapError(fmt.Sprintf("can't open the configuration file: '%s'", filePath), err)
	}
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &confService.Configuration)
	default:
		err = json.Unmarshal(content, &confService.Configuration)
	}
	if err != nil {
		return utils.WrapError(fmt.Sprintf("can't parse the configuration file: '%s'", filePath), err)
	}
	return nil
}

func (confService *ConfigurationService) checkContent() error {
	validate := validator.New()
	if err := validate.RegisterValidation("settingname", settingNameValidation); err != nil {
		return err
	}
	return validate.Struct(confService.Configuration)
}

func settingNameValidation(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return name != "" && strings.IndexFunc(name, unicode.IsSpace) == -1
}
