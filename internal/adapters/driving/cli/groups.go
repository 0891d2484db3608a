package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage space groups",
	Long:  `Create, list, update, or delete space groups in the metadata store.`,
}

var groupsCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a space group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupsCreate,
}

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List space groups",
	RunE:  runGroupsList,
}

var groupsUpdateCmd = &cobra.Command{
	Use:   "update [group-id]",
	Short: "Update a space group",
	Long: `Updates a group's name and summary when given, and replaces its
membership wholesale with --members.`,
	Args: cobra.ExactArgs(1),
	RunE: runGroupsUpdate,
}

var groupsDeleteCmd = &cobra.Command{
	Use:   "delete [group-id]",
	Short: "Delete a space group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupsDelete,
}

// Flags for the groups commands.
var (
	groupOrgID   int64
	groupSummary string
	groupName    string
	groupMembers string
)

func init() {
	groupsCmd.PersistentFlags().Int64Var(&groupOrgID, "org", 1, "Organisation id")
	groupsCreateCmd.Flags().StringVar(&groupSummary, "summary", "", "Group summary")
	groupsListCmd.Flags().StringVar(&groupName, "name", "", "Substring filter on the group name")
	groupsUpdateCmd.Flags().StringVar(&groupName, "name", "", "New group name")
	groupsUpdateCmd.Flags().StringVar(&groupSummary, "summary", "", "New group summary")
	groupsUpdateCmd.Flags().StringVar(&groupMembers, "members", "", "Comma-separated space ids replacing the membership")

	groupsCmd.AddCommand(groupsCreateCmd)
	groupsCmd.AddCommand(groupsListCmd)
	groupsCmd.AddCommand(groupsUpdateCmd)
	groupsCmd.AddCommand(groupsDeleteCmd)
	rootCmd.AddCommand(groupsCmd)
}

func runGroupsCreate(cmd *cobra.Command, args []string) error {
	if spaceGroupStore == nil {
		return errors.New("metadata store not configured")
	}

	name := args[0]
	if err := spaceGroupStore.Create(context.Background(), groupOrgID, name, groupSummary); err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	cmd.Printf("Created space group %q\n", name)
	return nil
}

func runGroupsList(cmd *cobra.Command, _ []string) error {
	if spaceGroupStore == nil {
		return errors.New("metadata store not configured")
	}

	groups, err := spaceGroupStore.List(context.Background(), groupOrgID, groupName)
	if err != nil {
		return fmt.Errorf("failed to list groups: %w", err)
	}

	if len(groups) == 0 {
		cmd.Println("No space groups found.")
		return nil
	}

	for _, g := range groups {
		cmd.Printf("%d  %s  %s\n", g.ID, g.Name, g.Summary)
		for _, m := range g.Members {
			cmd.Printf("     space %d  %s\n", m.SpaceID, m.SpaceName)
		}
	}
	return nil
}

func runGroupsUpdate(cmd *cobra.Command, args []string) error {
	if spaceGroupStore == nil {
		return errors.New("metadata store not configured")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid group id %q", args[0])
	}

	members, err := parseMembers(groupMembers)
	if err != nil {
		return err
	}

	if err := spaceGroupStore.Update(context.Background(), id, groupOrgID, members, groupName, groupSummary); err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}

	cmd.Printf("Updated space group %d\n", id)
	return nil
}

func runGroupsDelete(cmd *cobra.Command, args []string) error {
	if spaceGroupStore == nil {
		return errors.New("metadata store not configured")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid group id %q", args[0])
	}

	if err := spaceGroupStore.Delete(context.Background(), id, groupOrgID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	cmd.Printf("Deleted space group %d\n", id)
	return nil
}

// parseMembers parses a comma-separated id list. Empty input means no
// members.
func parseMembers(s string) ([]int64, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	members := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid space id %q", part)
		}
		members = append(members, id)
	}
	return members, nil
}
