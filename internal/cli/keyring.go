package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/weekendly/weekendly/internal/keyring"
)

type KeyringSetCmd struct{}

// Run reads the connection string from stdin rather than an argument so it
// never lands in shell history.
func (c *KeyringSetCmd) Run(ctx *Context) error {
	fmt.Print("Postgres connection string: ")
	reader := bufio.NewReader(os.Stdin)
	connStr, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read connection string: %w", err)
	}
	connStr = strings.TrimSpace(connStr)

	if err := keyring.SetConnectionString(connStr); err != nil {
		return err
	}
	fmt.Println("Stored connection string in the OS keyring")
	return nil
}

type KeyringDeleteCmd struct{}

func (c *KeyringDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No stored connection string")
			return nil
		}
		return err
	}
	fmt.Println("Deleted connection string from the OS keyring")
	return nil
}
