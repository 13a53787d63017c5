package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"settings-manager/config"
	"settings-manager/logging"
	"settings-manager/settings"
	"settings-manager/utils"
)

var helpFlag = flag.Bool("help", false, "Show help")
var configFlag = flag.String("conf", "", "Provide the path to an optional configuration file (json or yaml)")
var debugFlag = flag.Bool("debug", false, "Enable debug logging")
var logFlag = flag.String("log", "", "Provide the path to the output log file, overrides the configuration")
var silentFlag = flag.Bool("silent", false, "Hide progress in console")
var versionFlag = flag.Bool("version", false, "Show version")

const fontSetting = "font"

func main() {
	// input args
	parseArguments()

	// read the optional configuration, then initialize the logging accordingly
	confService := config.GetConfigurationServiceInstance()
	logFile, debug := *logFlag, *debugFlag
	if *configFlag != "" {
		configuration, err := confService.Init(*configFlag)
		if err != nil {
			logging.GetLoggingService().ConsoleFatal(utils.WrapError("unable to get the configuration", err).Error())
			os.Exit(1)
		}
		if logFile == "" {
			logFile = configuration.Log.File
		}
		debug = debug || configuration.Log.Debug
	}
	if logFile != "" {
		err := logging.GetLoggingService().InitializeLogger(logFile, debug, finalize)
		if err != nil {
			logging.GetLoggingService().ConsoleFatal(utils.WrapError("unable to initialize the logger", err).Error())
			os.Exit(1)
		}
	}

	// the first acquisition creates the shared settings
	settingsService := settings.GetSettingsService()
	confService.Apply(settingsService)

	if err := walkthrough(*silentFlag); err != nil {
		logging.GetLoggingService().FatalFromError(utils.WrapError("walkthrough failed", err))
	}

	// ends up the app
	finalize()
}

func parseArguments() {
	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	if *versionFlag {
		logging.GetLoggingService().Console("v1.0.0")
		os.Exit(0)
	}

	if *configFlag != "" {
		if _, err := os.Stat(*configFlag); err != nil {
			logging.GetLoggingService().ConsoleFatal(
				utils.WrapError(
					fmt.Sprintf("The configuration file doesn't exist: '%s'", *configFlag),
					err).Error(),
			)
			os.Exit(1)
		}
	}
}

// walkthrough exercises the shared settings the way independent callers would, each one
// acquiring its own reference.
func walkthrough(silent bool) error {
	steps := []struct {
		description string
		run         func() error
	}{
		{"[1/4] Reading the theme...", showTheme},
		{"[2/4] Switching to the light theme...", switchTheme},
		{"[3/4] Adding a font...", addFont},
		{"[4/4] Comparing references...", compareReferences},
	}
	progressBar := utils.CreateProgressBar(len(steps), steps[0].description, silent)
	for _, step := range steps {
		utils.DescribeProgressBar(progressBar, step.description)
		logging.GetLoggingService().Debug(step.description)
		if err := step.run(); err != nil {
			return err
		}
		utils.IncrementProgressBar(progressBar)
	}
	utils.FinalizeProgressBar(progressBar, len(steps))

	settingsService := settings.GetSettingsService()
	for _, name := range settingsService.Names() {
		value, _ := settingsService.GetSetting(name)
		logging.GetLoggingService().Console(fmt.Sprintf("%s = %s", name, value))
	}
	return nil
}

func showTheme() error {
	theme, present := settings.GetSettingsService().GetSetting(settings.ThemeSetting)
	if !present {
		return errors.New("no theme is set")
	}
	logging.GetLoggingService().Info(fmt.Sprintf("current theme: %s", theme))
	return nil
}

func switchTheme() error {
	settings.GetSettingsService().SetSetting(settings.ThemeSetting, "light")
	return expectSetting(settings.ThemeSetting, "light")
}

func addFont() error {
	settings.GetSettingsService().SetSetting(fontSetting, "serif")
	if err := expectSetting(fontSetting, "serif"); err != nil {
		return err
	}
	return expectSetting(settings.ThemeSetting, "light")
}

func compareReferences() error {
	if settings.GetSettingsService() != settings.GetSettingsService() {
		return errors.New("the settings manager is not shared")
	}
	return nil
}

func expectSetting(name string, expected string) error {
	value, present := settings.GetSettingsService().GetSetting(name)
	if !present {
		return fmt.Errorf("setting '%s' is missing", name)
	}
	if value != expected {
		return fmt.Errorf("setting '%s' is '%s', expected '%s'", name, value, expected)
	}
	return nil
}

func finalize() {
	err := logging.GetLoggingService().SyncLogger()
	if err != nil {
		logging.GetLoggingService().ConsoleWarn(fmt.Errorf("logger badly flushed, the log file may be incomplete\n%w", err).Error())
	}
}
