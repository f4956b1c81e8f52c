package main

import (
	"bufio"
	"context"
	"fmt"
	"intake/internal/config"
	"intake/internal/credential"
	"intake/pkg/logger"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// userAddCommand constructs the 'useradd' subcommand that registers an
// administrative account directly against the database.
func userAddCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "useradd",
		Short: "Registers an administrative user",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			fromStdin, _ := cmd.Flags().GetBool("password-stdin")

			if fromStdin {
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil && line == "" {
					logger.Fatal(ctx, "could not read password from stdin", zap.Error(err))
				}
				password = strings.TrimRight(line, "\r\n")
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			ID, err := credential.New(strg, credential.NewOptions(cfg)).Register(ctx, username, password)
			if err != nil {
				logger.Fatal(ctx, "could not register user", zap.Error(err))
			}

			fmt.Println(ID) //nolint: forbidigo
		},
	}

	cmd.Flags().String("username", "", "Account username")
	cmd.Flags().String("password", "", "Account password")
	cmd.Flags().Bool("password-stdin", false, "Read the password from stdin")
	_ = cmd.MarkFlagRequired("username")
	cmd.MarkFlagsOneRequired("password", "password-stdin")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")

	return cmd
}
