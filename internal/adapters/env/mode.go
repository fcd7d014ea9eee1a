package env

import (
	"os"
)

type Mode int

const (
	ModeDev Mode = iota
	ModeProd
)

func DetectMode() Mode {
	if os.Getenv("ELYSIUM_DEV") == "1" {
		return ModeDev
	}
	return ModeProd
}

func IsDev() bool {
	return DetectMode() == ModeDev
}
