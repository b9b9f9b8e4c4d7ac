package helper

import (
	"runtime"
	"strings"
)

// GetFuncName returns the caller as "package.Func" or "package.(*Type).Method",
// without the module path, for the "func" log field.
func GetFuncName() string {
	return callerName(2)
}

func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return shortName(fn.Name())
}

// shortName drops the import path up to the last slash.
func shortName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}
