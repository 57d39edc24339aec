package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/codealpha/showcase/internal/config"
	"github.com/codealpha/showcase/internal/gallery"
	"github.com/codealpha/showcase/internal/logging"
	"github.com/codealpha/showcase/internal/progress"
	"github.com/codealpha/showcase/internal/tui"
)

var (
	listCategory string
	listSearch   string
	browseInline bool
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Import, list and browse the image gallery",
}

var galleryImportCmd = &cobra.Command{
	Use:   "import [source]",
	Short: "Import the gallery catalog from a directory or a YAML manifest",
	Long: `Scans an image directory (one sub-directory per category) or reads a YAML
manifest and replaces the stored catalog. Defaults to gallery.source.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		source := cfg.Gallery.Source
		if len(args) == 1 {
			source = args[0]
		}

		kind, items, err := readCatalogSource(cfg, source)
		if err != nil {
			return err
		}
		if _, err := gallery.NewCatalog(items); err != nil {
			return fmt.Errorf("validating catalog: %w", err)
		}

		database, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		reporter := progress.NewReporter("Importing images")
		reporter.Start(len(items))
		for i, it := range items {
			reporter.Update(i+1, it.Title)
		}

		if err := gallery.NewStore(database).Replace(cmd.Context(), kind, source, items); err != nil {
			return err
		}
		reporter.Finish()

		logging.With("gallery").Info().
			Str("source", source).
			Str("kind", string(kind)).
			Int("items", len(items)).
			Msg("catalog imported")
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d images from %s\n", len(items), source)
		return nil
	},
}

// readCatalogSource loads items from a manifest file or scans a directory.
func readCatalogSource(cfg *config.Config, source string) (gallery.ImportKind, []gallery.Item, error) {
	info, err := os.Stat(source)
	if err != nil {
		return "", nil, fmt.Errorf("gallery source: %w", err)
	}
	if !info.IsDir() {
		ext := strings.ToLower(filepath.Ext(source))
		if ext != ".yml" && ext != ".yaml" {
			return "", nil, fmt.Errorf("gallery source %s: expected a directory or a .yml manifest", source)
		}
		items, err := gallery.LoadManifest(source)
		return gallery.ImportManifest, items, err
	}
	items, err := gallery.ScanDir(source, cfg.Gallery.Include, cfg.Gallery.Exclude)
	return gallery.ImportDirectory, items, err
}

var galleryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog images, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		catalog, err := loadCatalog(cmd.Context(), database)
		if err != nil {
			return err
		}
		category := listCategory
		if category == "" {
			category = cfg.Gallery.DefaultCategory
		}
		view := catalog.Apply(gallery.Filter{Category: category, Search: listSearch})

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tIMAGE")
		for _, id := range view.IDs() {
			it, _ := catalog.Item(id)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", it.ID, it.Title, it.Category, it.Image.Src)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d shown\n", view.Len(), catalog.Len())
		return nil
	},
}

var galleryBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the gallery in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		catalog, err := loadCatalog(cmd.Context(), database)
		if err != nil {
			return err
		}
		if catalog.Len() == 0 {
			return fmt.Errorf("the gallery is empty\nRun `showcase gallery import` first")
		}

		opts := []tui.GalleryOption{
			tui.WithInitialFilter(gallery.Filter{Category: cfg.Gallery.DefaultCategory}),
		}
		if browseInline {
			opts = append(opts, tui.WithoutAltScreen())
		}
		_, err = tea.NewProgram(tui.NewGalleryModel(catalog, opts...)).Run()
		return err
	},
}

func init() {
	galleryListCmd.Flags().StringVar(&listCategory, "category", "", "only show this category")
	galleryListCmd.Flags().StringVar(&listSearch, "search", "", "only show titles containing this text")
	galleryBrowseCmd.Flags().BoolVar(&browseInline, "inline", false, "never switch to the alternate screen")

	galleryCmd.AddCommand(galleryImportCmd, galleryListCmd, galleryBrowseCmd)
	rootCmd.AddCommand(galleryCmd)
}
