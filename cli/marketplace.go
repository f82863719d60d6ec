package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/syedOmegaPrime/SolitudeFinalProject/app"
	"github.com/syedOmegaPrime/SolitudeFinalProject/catalog"
	"github.com/syedOmegaPrime/SolitudeFinalProject/ident"
)

func newMarketplaceCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marketplace",
		Short: "Browse the asset marketplace",
	}
	cmd.AddCommand(newMarketplaceListCmd(a), newMarketplaceShowCmd(a))
	return cmd
}

func newMarketplaceListCmd(a *app.App) *cobra.Command {
	var opts catalog.FilterOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets, newest first, with optional filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			assets := a.Catalog.Filter(opts)
			out := cmd.OutOrStdout()
			if len(assets) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No assets match."))
				return nil
			}
			for _, asset := range assets {
				renderAssetLine(cmd, asset)
			}
			fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%d asset(s)", len(assets))))
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.SearchTerm, "search", "", "match name, description or tags")
	cmd.Flags().StringVar(&opts.Category, "category", "All", "filter by category")
	cmd.Flags().Float64Var(&opts.MinPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&opts.MaxPrice, "max-price", 0, "maximum price (0 = unbounded)")
	cmd.Flags().StringVar(&opts.SortBy, "sort", catalog.SortRelevance, "relevance, price_asc, price_desc or newest")
	return cmd
}

func newMarketplaceShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <asset-id>",
		Short: "Show one asset in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := a.Catalog.Get(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(asset.Name))
			fmt.Fprintln(out, itemStyle.Render(asset.Description))
			fmt.Fprintln(out, itemStyle.Render(priceStyle.Render(formatPrice(asset.Price))))
			if asset.Category != "" {
				fmt.Fprintln(out, itemStyle.Render("Category: "+asset.Category))
			}
			if len(asset.Tags) > 0 {
				fmt.Fprintln(out, itemStyle.Render("Tags: "+strings.Join(asset.Tags, ", ")))
			}
			uploader := asset.UploaderName
			if uploader == "" {
				uploader = asset.UploaderID
			}
			fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("Uploaded by %s on %s", uploader, asset.UploadDate)))
			return nil
		},
	}
}

func newUploadCmd(a *app.App) *cobra.Command {
	var (
		name, description, imageURL, category string
		fileType, fileName                    string
		price                                 float64
		tags                                  []string
	)

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a new asset (requires sign-in)",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.Auth.CurrentUser()
			if user == nil {
				return fmt.Errorf("sign in before uploading")
			}
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			if price < 0 {
				return fmt.Errorf("price cannot be negative")
			}

			asset := catalog.Asset{
				ID:           ident.New(ident.AssetPrefix),
				Name:         name,
				Description:  description,
				Price:        price,
				Tags:         tags,
				ImageURL:     imageURL,
				UploaderID:   user.ID,
				UploaderName: user.Name,
				UploadDate:   time.Now().UTC().Format(time.RFC3339),
				Category:     category,
				FileType:     fileType,
				FileName:     fileName,
			}
			if err := a.Catalog.AddAsset(asset); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n",
				successStyle.Render("Uploaded"), asset.Name, asset.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "asset name")
	cmd.Flags().StringVar(&description, "description", "", "asset description")
	cmd.Flags().Float64Var(&price, "price", 0, "price (0 = free)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags")
	cmd.Flags().StringVar(&imageURL, "image-url", "", "preview image URL or data payload")
	cmd.Flags().StringVar(&category, "category", "", "asset category")
	cmd.Flags().StringVar(&fileType, "file-type", "", "MIME type of the uploaded file")
	cmd.Flags().StringVar(&fileName, "file-name", "", "original file name")
	return cmd
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the available asset categories",
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range catalog.Categories {
				fmt.Fprintln(cmd.OutOrStdout(), itemStyle.Render(c))
			}
		},
	}
}

func renderAssetLine(cmd *cobra.Command, asset catalog.Asset) {
	line := fmt.Sprintf("%s  %s  %s",
		titleStyle.Render(asset.Name),
		priceStyle.Render(formatPrice(asset.Price)),
		mutedStyle.Render(asset.ID),
	)
	fmt.Fprintln(cmd.OutOrStdout(), line)
}

func formatPrice(p float64) string {
	if p == 0 {
		return "Free"
	}
	return fmt.Sprintf("$%.2f", p)
}
