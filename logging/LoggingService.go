package logging

import (
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"log"
	"os"
	"sync"
)

var instance *LoggingService
var mutex sync.Mutex

type LoggingService struct {
	lock                 sync.RWMutex
	logger               *zap.Logger
	properlyTerminateApp func()
}

func GetLoggingService() *LoggingService {
	mutex.Lock()
	defer mutex.Unlock()
	if instance == nil {
		// nothing is written until InitializeLogger is called
		instance = &LoggingService{
			logger:               zap.NewNop(),
			properlyTerminateApp: func() {},
		}
	}
	return instance
}

func (loggingService *LoggingService) InitializeLogger(logFilePath string, debug bool, properlyTerminateApp func()) error {
	// remove date time from the builtin logger which is used in addition to Zap
	log.SetFlags(0)

	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	fileEncoder := zapcore.NewJSONEncoder(config)
	logFile, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("can't open the log file '%s': %w", logFilePath, err)
	}
	writer := zapcore.AddSync(logFile)
	var defaultLogFileLevel zapcore.Level
	if debug {
		defaultLogFileLevel = zapcore.DebugLevel
	} else {
		defaultLogFileLevel = zapcore.WarnLevel
	}
	core := zapcore.NewTee(
		zapcore.NewCore(fileEncoder, writer, defaultLogFileLevel),
	)
	loggingService.UseLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel)))

	// memorize the finalization function
	if properlyTerminateApp != nil {
		loggingService.lock.Lock()
		loggingService.properlyTerminateApp = properlyTerminateApp
		loggingService.lock.Unlock()
	}
	return nil
}

// UseLogger replaces the underlying zap logger.
func (loggingService *LoggingService) UseLogger(logger *zap.Logger) {
	loggingService.lock.Lock()
	defer loggingService.lock.Unlock()
	loggingService.logger = logger
}

func (loggingService *LoggingService) current() *zap.Logger {
	loggingService.lock.RLock()
	defer loggingService.lock.RUnlock()
	return loggingService.logger
}

func (loggingService *LoggingService) Console(msg string) {
	fmt.Println(msg)
}

func (loggingService *LoggingService) ConsoleWarn(msg string) {
	fmt.Println("WARNING: " + msg)
}

func (loggingService *LoggingService) ConsoleFatal(msg string) {
	fmt.Println("ERROR: " + msg)
}

func (loggingService *LoggingService) Fatal(msg string) {
	loggingService.ConsoleFatal(msg)
	loggingService.lock.RLock()
	terminate := loggingService.properlyTerminateApp
	loggingService.lock.RUnlock()
	terminate()
	loggingService.current().Fatal(msg)
}

func (loggingService *LoggingService) FatalFromError(err error) {
	loggingService.Fatal(err.Error())
}

func (loggingService *LoggingService) Warn(msg string) {
	loggingService.current().Warn(msg)
}

func (loggingService *LoggingService) WarnFromError(err error) {
	loggingService.current().Warn(err.Error())
}

func (loggingService *LoggingService) Info(msg string) {
	loggingService.current().Info(msg)
}

func (loggingService *LoggingService) Debug(msg string) {
	loggingService.current().Debug(msg)
}

func (loggingService *LoggingService) SyncLogger() error {
	return loggingService.current().Sync()
}
