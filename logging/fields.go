package logging

import (
	"time"

	"go.uber.org/zap"
)

// Field alias so packages built on this logger only import one package.
type Field = zap.Field

func Bool(name string, b bool) Field {
	return zap.Bool(name, b)
}

func Duration(name string, d time.Duration) Field {
	return zap.Duration(name, d)
}

func Error(err error) Field {
	return zap.Error(err)
}

func Float64(name string, f float64) Field {
	return zap.Float64(name, f)
}

func Int(name string, i int) Field {
	return zap.Int(name, i)
}

func Int64(name string, i int64) Field {
	return zap.Int64(name, i)
}

func String(name, s string) Field {
	return zap.String(name, s)
}

func Strings(name string, s []string) Field {
	return zap.Strings(name, s)
}

func Time(name string, t time.Time) Field {
	return zap.Time(name, t)
}

func Uint64(name string, u uint64) Field {
	return zap.Uint64(name, u)
}
