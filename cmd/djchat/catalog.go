package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/djchat/internal/config"
	"github.com/thatcatcamp/djchat/internal/db"
	"github.com/thatcatcamp/djchat/internal/media"
	"github.com/thatcatcamp/djchat/internal/servers"
	"github.com/thatcatcamp/djchat/internal/users"
)

var (
	iconFlag        string
	fitFlag         bool
	descriptionFlag string
	ownerFlag       string
	topicFlag       string
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage server categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mustInitSystemDB()

		icon, err := storeIconFlag()
		if err != nil {
			fatalf("Error storing icon: %v", err)
		}

		cat, err := servers.CreateCategory(db.GetDB(), args[0], descriptionFlag, icon)
		if err != nil {
			fatalf("Error creating category: %v", err)
		}

		fmt.Printf("Category created: %s (ID: %d)\n", cat.Name, cat.ID)
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Run: func(cmd *cobra.Command, args []string) {
		mustInitSystemDB()

		cats, err := servers.ListCategories(db.GetDB())
		if err != nil {
			fatalf("Error listing categories: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tICON\tDESCRIPTION")
		for _, c := range cats {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Name, c.Icon, c.Description)
		}
		w.Flush()
	},
}

var srvCmd = &cobra.Command{
	Use:   "srv",
	Short: "Manage chat servers",
}

var srvAddCmd = &cobra.Command{
	Use:   "add <category> <name>",
	Short: "Add a server to a category",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		mustInitSystemDB()

		owner, err := users.GetUserByEmail(db.GetDB(), ownerFlag)
		if err != nil {
			fatalf("Error finding owner %s: %v", ownerFlag, err)
		}

		icon, err := storeIconFlag()
		if err != nil {
			fatalf("Error storing icon: %v", err)
		}

		server, err := servers.CreateServer(db.GetDB(), owner.ID, args[0], args[1], descriptionFlag, icon)
		if err != nil {
			fatalf("Error creating server: %v", err)
		}

		// The owner is always a member
		if err := servers.AddMember(db.GetDB(), server.ID, owner.ID); err != nil {
			fatalf("Error adding owner as member: %v", err)
		}

		fmt.Printf("Server created: %s (ID: %d)\n", server.Name, server.ID)
	},
}

var srvListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List servers, optionally of one category",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mustInitSystemDB()

		q := servers.Query{WithNumMembers: true}
		if len(args) == 1 {
			q.Category = args[0]
		}

		listings, err := servers.List(db.GetDB(), q, nil)
		if err != nil {
			fatalf("Error listing servers: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tMEMBERS\tCHANNELS")
		for _, l := range listings {
			var members int64
			if l.NumMembers != nil {
				members = *l.NumMembers
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", l.ID, l.Name, l.Category, members, len(l.Channels))
		}
		w.Flush()
	},
}

var srvJoinCmd = &cobra.Command{
	Use:   "join <server-id> <email>",
	Short: "Add a user to a server",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		mustInitSystemDB()

		serverID := mustParseID(args[0])
		user, err := users.GetUserByEmail(db.GetDB(), args[1])
		if err != nil {
			fatalf("Error: %v", err)
		}

		if err := servers.AddMember(db.GetDB(), serverID, user.ID); err != nil {
			fatalf("Error joining server: %v", err)
		}

		fmt.Printf("%s joined server %d\n", user.Email, serverID)
	},
}

var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Manage channels",
}

var channelAddCmd = &cobra.Command{
	Use:   "add <server-id> <name>",
	Short: "Add a channel to a server",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		mustInitSystemDB()

		owner, err := users.GetUserByEmail(db.GetDB(), ownerFlag)
		if err != nil {
			fatalf("Error finding owner %s: %v", ownerFlag, err)
		}

		channel, err := servers.CreateChannel(db.GetDB(), mustParseID(args[0]), owner.ID, args[1], topicFlag)
		if err != nil {
			fatalf("Error creating channel: %v", err)
		}

		fmt.Printf("Channel created: %s (ID: %d)\n", channel.Name, channel.ID)
	},
}

func init() {
	for _, c := range []*cobra.Command{categoryAddCmd, srvAddCmd} {
		c.Flags().StringVar(&iconFlag, "icon", "", "path to a PNG, JPEG or GIF icon (at most 70x70)")
		c.Flags().BoolVar(&fitFlag, "fit", false, "scale the icon down to 70x70 before storing it")
		c.Flags().StringVar(&descriptionFlag, "description", "", "description")
	}
	for _, c := range []*cobra.Command{srvAddCmd, channelAddCmd} {
		c.Flags().StringVar(&ownerFlag, "owner", "", "owner email")
		c.MarkFlagRequired("owner")
	}
	channelAddCmd.Flags().StringVar(&topicFlag, "topic", "", "channel topic")

	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	srvCmd.AddCommand(srvAddCmd)
	srvCmd.AddCommand(srvListCmd)
	srvCmd.AddCommand(srvJoinCmd)
	channelCmd.AddCommand(channelAddCmd)

	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(srvCmd)
	rootCmd.AddCommand(channelCmd)
}

// storeIconFlag copies the --icon file into the icons directory, fitting it
// first when --fit is set. No icon gives an empty name.
func storeIconFlag() (string, error) {
	if iconFlag == "" {
		return "", nil
	}

	src := iconFlag
	if fitFlag {
		tmp, err := os.MkdirTemp("", "djchat-icon")
		if err != nil {
			return "", err
		}
		defer os.RemoveAll(tmp)

		src = filepath.Join(tmp, "icon.png")
		if err := media.FitIcon(iconFlag, src); err != nil {
			return "", err
		}
	}

	return media.StoreIcon(src, config.GetString("storage.icons_dir"))
}

func mustParseID(s string) uint {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		fatalf("Invalid id %q", s)
	}
	return uint(id)
}
