package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode  bool
	Combine bool
	Fold    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("MPATCH_DEBUG_DECODE")
	d.Combine = boolEnv("MPATCH_DEBUG_COMBINE")
	d.Fold = boolEnv("MPATCH_DEBUG_FOLD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Combine() bool {
	return d.Combine
}
func Fold() bool {
	return d.Fold
}

// SetFold overrides MPATCH_DEBUG_FOLD and returns a func restoring the
// previous value.
func SetFold(v bool) func() {
	prev := d.Fold
	d.Fold = v
	return func() { d.Fold = prev }
}
