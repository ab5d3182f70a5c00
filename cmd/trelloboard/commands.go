package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	bc "github.com/egobogo/trelloboard/internal/board"
)

const (
	FlagName     = "name"
	FlagUsername = "username"
	FlagList     = "list"
	FlagSize     = "size"
)

// listCards pairs a list with the cards fetched for it.
type listCards struct {
	List  bc.List   `json:"list"`
	Cards []bc.Card `json:"cards"`
}

// GetListsCmd prints the cached lists, optionally filtered by name.
func GetListsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Print board lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := cmd.Flags().GetStringSlice(FlagName)
			if err != nil {
				return fmt.Errorf("%s flag: %w", FlagName, err)
			}
			if len(names) == 0 {
				return printJSON(cmd.OutOrStdout(), boardClient.ListAll())
			}
			return printJSON(cmd.OutOrStdout(), boardClient.ListsByName(names...))
		},
	}
	cmd.Flags().StringSlice(FlagName, nil, "(optional) exact list name, repeatable")
	return cmd
}

// GetMembersCmd prints the cached members, optionally filtered by username.
func GetMembersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Print board members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			usernames, err := cmd.Flags().GetStringSlice(FlagUsername)
			if err != nil {
				return fmt.Errorf("%s flag: %w", FlagUsername, err)
			}
			if len(usernames) == 0 {
				return printJSON(cmd.OutOrStdout(), boardClient.MembersAll())
			}
			return printJSON(cmd.OutOrStdout(), boardClient.MembersByUsername(usernames...))
		},
	}
	cmd.Flags().StringSlice(FlagUsername, nil, "(optional) exact username, repeatable")
	return cmd
}

// GetCardsCmd prints the cards of the named lists, or of every list.
func GetCardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Print cards grouped by list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := cmd.Flags().GetStringSlice(FlagList)
			if err != nil {
				return fmt.Errorf("%s flag: %w", FlagList, err)
			}
			lists := boardClient.ListAll()
			if len(names) > 0 {
				lists = boardClient.ListsByName(names...)
			}
			cards, err := boardClient.CardsForLists(cmd.Context(), lists)
			if err != nil {
				return err
			}
			out := make([]listCards, 0, len(lists))
			for i, l := range lists {
				out = append(out, listCards{List: l, Cards: cards[i]})
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringSlice(FlagList, nil, "(optional) exact list name, repeatable")
	return cmd
}

// GetCommentsCmd prints the comments of a card.
func GetCommentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comments CARD_ID",
		Short: "Print comments of a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comments, err := boardClient.CardComments(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), comments)
		},
	}
}

// GetAvatarCmd prints the avatar image URL of a member.
func GetAvatarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avatar MEMBER_ID",
		Short: "Print the avatar URL of a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := cmd.Flags().GetInt(FlagSize)
			if err != nil {
				return fmt.Errorf("%s flag: %w", FlagSize, err)
			}
			avatar, err := boardClient.MemberAvatarURL(cmd.Context(), args[0], bc.AvatarSize(size))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), avatar)
			return err
		},
	}
	cmd.Flags().Int(FlagSize, int(bc.DefaultAvatarSize), "(optional) avatar size: 30, 50 or 170")
	return cmd
}

// GetListKeyCmd prints the cache position of a list.
func GetListKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-key NAME",
		Short: "Print the position of a list on the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, ok := boardClient.ListKeyByName(args[0])
			if !ok {
				return fmt.Errorf("list %q not found", args[0])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), idx)
			return err
		},
	}
}

// GetRefreshCmd refetches lists and members and prints a summary of the new cache.
func GetRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refetch lists and members and print the cache summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := boardClient.RefreshListsAndMembers(cmd.Context()); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]interface{}{
				"board":    boardClient.BoardID(),
				"snapshot": boardClient.SnapshotID().String(),
				"lists":    len(boardClient.ListAll()),
				"members":  len(boardClient.MembersAll()),
			})
		},
	}
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func init() {
	rootCmd.AddCommand(
		GetListsCmd(),
		GetMembersCmd(),
		GetCardsCmd(),
		GetCommentsCmd(),
		GetAvatarCmd(),
		GetListKeyCmd(),
		GetRefreshCmd(),
	)
}
