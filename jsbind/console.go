package jsbind

import (
	"strings"

	"github.com/dop251/goja"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newConsole routes console.* calls to the bridge logger.
func (b *Bridge) newConsole() *goja.Object {
	console := b.vm.NewObject()

	logFunc := func(level zapcore.Level) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			args := make([]string, len(call.Arguments))
			for i, arg := range call.Arguments {
				args[i] = arg.String()
			}
			b.logger.Log(level, "console", zap.String("message", strings.Join(args, " ")))
			return goja.Undefined()
		}
	}

	_ = console.Set("log", logFunc(zap.InfoLevel))
	_ = console.Set("info", logFunc(zap.InfoLevel))
	_ = console.Set("warn", logFunc(zap.WarnLevel))
	_ = console.Set("error", logFunc(zap.ErrorLevel))
	_ = console.Set("debug", logFunc(zap.DebugLevel))
	return console
}
