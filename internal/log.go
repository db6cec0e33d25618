package internal

import (
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/fennecsec/gcpassets/globals"
	"github.com/jedib0t/go-pretty/text"
	"github.com/kyokomi/emoji"
	"github.com/sirupsen/logrus"
)

func init() {
	text.EnableColors()
}

// This function returns ~/.gcpassets.
// If the folder does not exist the function creates it.
func GetLogDirPath() string {
	user, _ := user.Current()
	dir := filepath.Join(user.HomeDir, globals.GCPASSETS_LOG_FILE_DIR_NAME)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, 0700)
		if err != nil {
			log.Fatalf("[-] Failed to read or create gcpassets directory")
		}
	}
	return dir
}

// TxtLogger returns the logrus logger that backs the error log file.
func TxtLogger() *logrus.Logger {
	txtLogger := logrus.New()
	txtFile, err := os.OpenFile(filepath.Join(GetLogDirPath(), globals.GCPASSETS_ERROR_LOG_FILE_NAME), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		panic(fmt.Sprintf("Failed to open log file %v", err))
	}
	txtLogger.Out = txtFile
	txtLogger.SetLevel(logrus.InfoLevel)

	return txtLogger
}

type Logger struct {
	version string
	txtLog  *logrus.Logger
}

func NewLogger() Logger {
	var logger = Logger{
		version: globals.GCPASSETS_VERSION,
		txtLog:  TxtLogger(),
	}
	return logger
}

func (l *Logger) Info(text string) {
	l.InfoM(text, "config")
}

func (l *Logger) InfoM(text string, module string) {
	var cyan = color.New(color.FgCyan).SprintFunc()
	fmt.Printf("[%s][%s] %s\n", cyan(emoji.Sprintf(":mag:gcpassets %s :mag:", l.version)), cyan(module), text)
}

func (l *Logger) Success(text string) {
	l.SuccessM(text, "config")
}

func (l *Logger) SuccessM(text string, module string) {
	var green = color.New(color.FgGreen).SprintFunc()
	fmt.Printf("[%s][%s] %s\n", green(emoji.Sprintf(":mag:gcpassets %s :mag:", l.version)), green(module), text)
}

func (l *Logger) Error(text string) {
	l.ErrorM(text, "config")
}

func (l *Logger) ErrorM(text string, module string) {
	var red = color.New(color.FgRed).SprintFunc()
	fmt.Printf("[%s][%s] %s\n", red(emoji.Sprintf(":mag:gcpassets %s :mag:", l.version)), red(module), text)
	l.txtLog.Printf("[%s] %s", module, text)
}

func (l *Logger) Fatal(text string) {
	l.FatalM(text, "config")
}

func (l *Logger) FatalM(text string, module string) {
	var red = color.New(color.FgRed).SprintFunc()
	l.txtLog.Printf("[%s] %s", module, text)
	fmt.Printf("[%s][%s] %s\n", red(emoji.Sprintf(":mag:gcpassets %s :mag:", l.version)), red(module), text)
	os.Exit(1)
}
