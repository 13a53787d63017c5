package model

import "strings"

var defaultLogFileName = "settings-manager-log.json"

type Configuration struct {
	Log      Log               `json:"log" yaml:"log"`
	Settings map[string]string `json:"settings" yaml:"settings" validate:"dive,keys,required,settingname,endkeys"`
}

type Log struct {
	File  string `json:"file" yaml:"file" validate:"required"`
	Debug bool   `json:"debug" yaml:"debug"`
}

func (configuration *Configuration) SetDefaults() {
	configuration.Log.SetDefaults()
	if configuration.Settings == nil {
		configuration.Settings = map[string]string{}
	}
}

func (log *Log) SetDefaults() {
	if strings.TrimSpace(log.File) == "" {
		log.File = defaultLogFileName
	}
}
