package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rwa-market/asset-catalog/db"
	"github.com/rwa-market/asset-catalog/internal/api/shared/dto"
	apierrors "github.com/rwa-market/asset-catalog/internal/api/shared/errors"
	"github.com/rwa-market/asset-catalog/internal/domain"
)

func newMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the PostgreSQL schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, opts, func(ctx context.Context, b *Backend) error {
				if b.DB == nil {
					return &ExitError{Code: ExitCommandError, Message: "migrate requires store.driver=postgres"}
				}
				if err := db.Migrate(ctx, b.DB); err != nil {
					return WrapExitError(ExitCommandError, "migration failed", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
				return nil
			})
		},
	}
}

// ListOptions holds flags for the list command.
type ListOptions struct {
	Category string
	MinPrice float64
	MaxPrice float64
	Search   string
}

func newListCommand(opts *RootOptions) *cobra.Command {
	listOpts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets as JSON",
		Long: `List seed and created assets, filtered by category, price per token and text.

Examples:
  catalogctl list --category real_estate
  catalogctl list --min-price 1 --max-price 2
  catalogctl list --search manhattan`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := listOpts.filter(cmd)
			if err != nil {
				return err
			}
			return withBackend(cmd, opts, func(ctx context.Context, b *Backend) error {
				assets, err := b.Catalog.ListAssets(ctx, filter)
				if err != nil {
					return classify("failed to list assets", err)
				}
				return writeJSON(cmd, dto.MapAssetsToDTO(assets))
			})
		},
	}

	cmd.Flags().StringVar(&listOpts.Category, "category", "", "asset category (real_estate, art, music, gaming or all)")
	cmd.Flags().Float64Var(&listOpts.MinPrice, "min-price", 0, "minimum price per token")
	cmd.Flags().Float64Var(&listOpts.MaxPrice, "max-price", 0, "maximum price per token")
	cmd.Flags().StringVar(&listOpts.Search, "search", "", "case-insensitive text in title or description")

	return cmd
}

// filter turns the flags into an asset filter, price bounds only apply when set
func (o *ListOptions) filter(cmd *cobra.Command) (domain.AssetFilter, error) {
	var filter domain.AssetFilter

	if o.Category != "" && o.Category != string(domain.CategoryAll) {
		category, ok := domain.ParseCategory(o.Category)
		if !ok {
			return filter, &ExitError{Code: ExitFailure, Message: fmt.Sprintf("unknown category: %s", o.Category)}
		}
		filter.Category = category
	}
	if cmd.Flags().Changed("min-price") {
		filter.MinPrice = &o.MinPrice
	}
	if cmd.Flags().Changed("max-price") {
		filter.MaxPrice = &o.MaxPrice
	}
	filter.Search = o.Search

	return filter, nil
}

func newGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print one asset as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, opts, func(ctx context.Context, b *Backend) error {
				asset, err := b.Catalog.GetAsset(ctx, args[0])
				if err != nil {
					return classify("failed to get asset", err)
				}
				return writeJSON(cmd, dto.MapAssetToDTO(asset))
			})
		},
	}
}

func newCreateCommand(opts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an asset from a JSON file",
		Long: `Create an asset from a JSON file holding the same body as POST /api/v1/assets.

Examples:
  catalogctl create -f asset.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read asset file", err)
			}

			var req dto.CreateAssetRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return WrapExitError(ExitFailure, "invalid asset file", err)
			}
			if err := req.Validate(); err != nil {
				return classify("invalid asset", err)
			}

			return withBackend(cmd, opts, func(ctx context.Context, b *Backend) error {
				asset, err := b.Catalog.CreateAsset(ctx, req.ToInput())
				if err != nil {
					return classify("failed to create asset", err)
				}
				return writeJSON(cmd, dto.MapAssetToDTO(asset))
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the asset JSON file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// classify maps rejected input to ExitFailure and everything else to ExitCommandError
func classify(message string, err error) error {
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError
	var apiErr *apierrors.APIError
	if errors.As(err, &validationErr) || errors.As(err, &notFoundErr) || errors.As(err, &apiErr) {
		return WrapExitError(ExitFailure, message, err)
	}
	return WrapExitError(ExitCommandError, message, err)
}
