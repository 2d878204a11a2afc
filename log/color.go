package log

import "github.com/fatih/color"

var levelColors = map[LogLevel]*color.Color{
	Debug: color.New(color.FgBlue),
	Info:  color.New(color.FgGreen),
	Warn:  color.New(color.FgYellow),
	Error: color.New(color.FgRed),
	Fatal: color.New(color.FgMagenta, color.Bold),
}

// Colorize wraps text in the terminal color of level.
func Colorize(level LogLevel, text string) string {
	c, ok := levelColors[level]
	if !ok {
		return text
	}
	return c.Sprint(text)
}
