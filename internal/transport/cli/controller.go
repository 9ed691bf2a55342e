package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"freebooks_cli/config"
	"freebooks_cli/internal/model"

	"github.com/spf13/cobra"
)

type CatalogService interface {
	LoadCatalog(ctx context.Context, refresh bool) (*model.Catalog, error)
	Resolve(catalog *model.Catalog, id int) ([]model.Book, error)
	DownloadTopics(ctx context.Context, catalog *model.Catalog, ids []int, destDir string, group bool) ([]model.DownloadResult, error)
}

type Controller struct {
	cfg     *config.Config
	service CatalogService
	out     io.Writer
	errOut  io.Writer

	refresh bool
}

func NewController(cfg *config.Config, service CatalogService) *Controller {
	return &Controller{
		cfg:     cfg,
		service: service,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// Root собирает дерево команд. Листинги и скачивание - взаимоисключающие
// подкоманды, help отдает cobra.
func (c *Controller) Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "freebooks",
		Short:         "Download freely available books listed in a spreadsheet catalog",
		Long:          "freebooks loads a spreadsheet catalog of freely available books,\nlets you browse its package -> subject -> book hierarchy and download\nbooks of a whole package or a single subject.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().BoolVarP(&c.refresh, "refresh", "F", false, "re-fetch the catalog instead of using the cached copy")

	root.AddCommand(
		c.listPackagesCmd(),
		c.listSubjectsCmd(),
		c.listBooksCmd(),
		c.downloadCmd(),
	)

	return root
}

func (c *Controller) listPackagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-packages",
		Short: "Print available packages with their identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.service.LoadCatalog(cmd.Context(), c.refresh)
			if err != nil {
				return err
			}
			return c.renderPackages(catalog)
		},
	}
}

func (c *Controller) listSubjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-subjects [packageID...]",
		Short: "Print subjects of the given packages (all packages by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			catalog, err := c.service.LoadCatalog(cmd.Context(), c.refresh)
			if err != nil {
				return err
			}

			if len(ids) == 0 {
				for _, pkg := range catalog.Packages() {
					ids = append(ids, pkg.ID)
				}
			}

			return c.renderSubjects(catalog, ids)
		},
	}
}

func (c *Controller) listBooksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-books ID...",
		Short: "Print books of the given subjects or packages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			catalog, err := c.service.LoadCatalog(cmd.Context(), c.refresh)
			if err != nil {
				return err
			}

			for _, id := range ids {
				books, err := c.service.Resolve(catalog, id)
				if err != nil {
					return err
				}
				if err := c.renderBooks(catalog, id, books); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func (c *Controller) downloadCmd() *cobra.Command {
	var (
		dest   string
		group  bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "download ID...",
		Short: "Download all books of the given subjects or packages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			catalog, err := c.service.LoadCatalog(cmd.Context(), c.refresh)
			if err != nil {
				return err
			}

			results, err := c.service.DownloadTopics(cmd.Context(), catalog, ids, dest, group)
			if err != nil {
				return err
			}

			failed := c.renderResults(results)
			if strict && failed > 0 {
				return fmt.Errorf("%d of %d downloads failed", failed, len(results))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&dest, "dest", "d", c.cfg.Download.Dir, "destination directory")
	cmd.Flags().BoolVarP(&group, "group", "g", false, "save files into subdirectories named after the book's package")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with error if any book failed to download")

	return cmd
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("incorrect id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
