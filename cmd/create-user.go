package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/yigitates17/Article-App/internal/api/auth"
	"github.com/yigitates17/Article-App/internal/database"
	"github.com/yigitates17/Article-App/internal/forms"
)

var createUserCmdFlags struct {
	Name     string
	Username string
	Email    string
	Password string
}

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a user account",
	Long:  `Create a user account directly in the database. The same rules as the registration form apply.`,
	RunE:  createUser,
}

func init() {
	createUserCmd.Flags().StringVar(&createUserCmdFlags.Name, "name", "", "Display name (4-25 characters)")
	createUserCmd.Flags().StringVar(&createUserCmdFlags.Username, "username", "", "Username (5-35 characters)")
	createUserCmd.Flags().StringVar(&createUserCmdFlags.Email, "email", "", "Email address")
	createUserCmd.Flags().StringVar(&createUserCmdFlags.Password, "password", "", "Password")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(createUserCmd)
}

func createUser(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()

	f := forms.RegisterForm{
		Name:     createUserCmdFlags.Name,
		Username: createUserCmdFlags.Username,
		Email:    createUserCmdFlags.Email,
		Password: createUserCmdFlags.Password,
		Confirm:  createUserCmdFlags.Password,
	}
	if errs := forms.Validate(&f); errs != nil {
		for field, msg := range errs {
			log.Error("invalid value", "field", field, "error", msg)
		}
		return errors.New("invalid user data")
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close() //nolint: errcheck

	hash, err := auth.HashPassword(f.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &database.User{
		Name:     f.Name,
		Username: f.Username,
		Email:    f.Email,
		Password: hash,
	}
	if err := db.CreateUser(cmd.Context(), user); err != nil {
		if errors.Is(err, database.ErrUsernameTaken) {
			return fmt.Errorf("username %q is already taken", f.Username)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user created", "id", user.ID, "username", user.Username)
	return nil
}
