package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/djchat/internal/auth"
	"github.com/thatcatcamp/djchat/internal/config"
	"github.com/thatcatcamp/djchat/internal/db"
	"github.com/thatcatcamp/djchat/internal/users"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
	Long:  "Create, list, and manage user accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create <email>",
	Short: "Create a new user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mustInitSystemDB()

		fmt.Print("Enter password: ")
		password, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && password == "" {
			fatalf("Error reading password: %v", err)
		}

		password = strings.TrimRight(password, "\r\n")
		if err := auth.ValidateNewPassword(password, args[0]); err != nil {
			fatalf("Error: %v", err)
		}

		user, err := users.CreateUser(db.GetDB(), args[0], password)
		if err != nil {
			fatalf("Error creating user: %v", err)
		}

		fmt.Printf("User created: %s (ID: %d)\n", user.Email, user.ID)
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	Run: func(cmd *cobra.Command, args []string) {
		mustInitSystemDB()

		userList, err := users.ListUsers(db.GetDB())
		if err != nil {
			fatalf("Error listing users: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tCREATED")
		for _, u := range userList {
			fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.Email, u.CreatedAt.Format("2006-01-02"))
		}
		w.Flush()
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <email>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mustInitSystemDB()

		user, err := users.GetUserByEmail(db.GetDB(), args[0])
		if err != nil {
			fatalf("Error: %v", err)
		}

		if err := users.DeleteUser(db.GetDB(), user.ID); err != nil {
			fatalf("Error deleting user: %v", err)
		}

		fmt.Printf("User deleted: %s\n", args[0])
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userDeleteCmd)
	rootCmd.AddCommand(userCmd)
}

// initSystemDB initializes the database connection
func initSystemDB() error {
	if err := initConfig(); err != nil {
		return err
	}

	return db.InitDB(config.GetString("database.type"), config.GetString("database.path"))
}

func mustInitSystemDB() {
	if err := initSystemDB(); err != nil {
		fatalf("Error: %v", err)
	}
}
