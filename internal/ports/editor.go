package ports

import "context"

// EditorOpener opens a file in the user's editor and waits for it to close
type EditorOpener interface {
	Open(ctx context.Context, path string, cliEditor string) error
}
