package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"Airframe/internal/auth"

	"github.com/spf13/cobra"
)

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "hash-password",
		Short:   "Hash an operator password read from stdin",
		Long:    `Prints a bcrypt hash suitable for AUTH_OPERATOR_PASSWORD_HASH.`,
		Example: `  echo -n 's3cret' | airframe hash-password`,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errors.New("no password on stdin")
			}
			password := strings.TrimRight(line, "\r\n")
			if password == "" {
				return errors.New("empty password")
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
