package usecase

import (
	"context"
	"io"

	"github.com/3-lines-studio/elysium/internal/core"
)

// Serializer turns a markup tree into response bytes.
type Serializer interface {
	Render(w io.Writer, n *core.Node) error
}

// Migrator applies pending schema migrations and returns the resulting version.
type Migrator interface {
	Migrate(ctx context.Context) (int64, error)
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(emoji, msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintDone(msg string)
}
