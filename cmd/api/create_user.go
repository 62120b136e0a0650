package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	dbpkg "github.com/BruksfildServices01/carwash-scheduler/internal/db"
	"github.com/BruksfildServices01/carwash-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
	"github.com/BruksfildServices01/carwash-scheduler/internal/validators"
)

const minPasswordLen = 8

func createUserCmd() *cobra.Command {
	var name, email, role string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a dashboard user",
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.ToLower(strings.TrimSpace(email))
			name = strings.TrimSpace(name)
			if name == "" || email == "" {
				return errors.New("--name and --email are required")
			}
			if !validators.IsEmailFormatValid(email) {
				return fmt.Errorf("invalid email %q", email)
			}

			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}

			if !validators.IsEmailDomainValid(email) {
				log.Warn().Str("email", email).Msg("email domain does not resolve")
			}

			password, err := readPassword()
			if err != nil {
				return err
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			db, err := dbpkg.NewDB(cfg, log)
			if err != nil {
				return err
			}
			if err := dbpkg.Migrate(db); err != nil {
				return err
			}

			user := &models.User{
				Name:         name,
				Email:        email,
				PasswordHash: string(hash),
				Role:         role,
			}
			if err := repository.NewUserGormRepository(db).Create(context.Background(), user); err != nil {
				return err
			}

			log.Info().Uint("user_id", user.ID).Str("email", user.Email).Msg("user created")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&role, "role", "admin", "user role")

	return cmd
}

// readPassword prompts twice on a terminal; piped stdin is read as a single line.
func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read password: %w", err)
		}
		return checkPassword(strings.TrimRight(line, "\r\n"))
	}

	fmt.Fprint(os.Stderr, "Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return checkPassword(string(first))
}

func checkPassword(password string) (string, error) {
	if len(password) < minPasswordLen {
		return "", fmt.Errorf("password must have at least %d characters", minPasswordLen)
	}
	return password, nil
}
