package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/syedOmegaPrime/SolitudeFinalProject/app"
	"github.com/syedOmegaPrime/SolitudeFinalProject/forum"
	"github.com/syedOmegaPrime/SolitudeFinalProject/ident"
)

func newForumCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forum",
		Short: "Browse and join the asset request forum",
	}
	cmd.AddCommand(
		newForumListCmd(a),
		newForumShowCmd(a),
		newForumPostCmd(a),
		newForumReplyCmd(a),
	)
	return cmd
}

func newForumListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List forum posts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			posts := a.Forum.Posts()
			if len(posts) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No posts yet."))
				return nil
			}
			for _, post := range posts {
				fmt.Fprintf(out, "%s  %s  %s\n",
					titleStyle.Render(post.Title),
					mutedStyle.Render(fmt.Sprintf("%d repl(y/ies)", len(post.Replies))),
					mutedStyle.Render(post.ID),
				)
			}
			return nil
		},
	}
}

func newForumShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <post-id>",
		Short: "Show a post and its replies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := a.Forum.Get(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(post.Title))
			fmt.Fprintln(out, itemStyle.Render(post.Description))
			fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("by %s on %s", posterName(post), post.CreationDate)))
			for _, reply := range post.Replies {
				author := reply.UserName
				if author == "" {
					author = reply.UserID
				}
				fmt.Fprintln(out, itemStyle.Render(fmt.Sprintf("%s: %s", titleStyle.Render(author), reply.Content)))
			}
			return nil
		},
	}
}

func newForumPostCmd(a *app.App) *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Start a new discussion (requires sign-in)",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.Auth.CurrentUser()
			if user == nil {
				return fmt.Errorf("sign in before posting")
			}
			if title == "" {
				return fmt.Errorf("--title is required")
			}
			post := forum.Post{
				ID:           ident.New(ident.PostPrefix),
				Title:        title,
				Description:  description,
				UserID:       user.ID,
				UserName:     user.Name,
				CreationDate: time.Now().UTC().Format(time.RFC3339),
			}
			if err := a.Forum.AddPost(post); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successStyle.Render("Posted"), post.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&description, "description", "", "post body")
	return cmd
}

func newForumReplyCmd(a *app.App) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "reply <post-id>",
		Short: "Reply to a post (requires sign-in)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.Auth.CurrentUser()
			if user == nil {
				return fmt.Errorf("sign in before replying")
			}
			if content == "" {
				return fmt.Errorf("--content is required")
			}
			reply, err := a.Forum.AddReply(args[0], forum.ReplyInput{
				UserID:   user.ID,
				UserName: user.Name,
				Content:  content,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successStyle.Render("Replied"), reply.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "reply text")
	return cmd
}

func posterName(post *forum.Post) string {
	if post.UserName != "" {
		return post.UserName
	}
	return post.UserID
}
