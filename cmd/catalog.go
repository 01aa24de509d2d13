package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leniks/cinema2/catalog"
	"github.com/leniks/cinema2/filter"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a page of the movie catalog",
	Long: `List one page of the movie catalog. Results can be narrowed with a
client-side filter expression, e.g. --filter 'Rating > 8'.`,
	RunE: runList,
}

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <movie-id>",
	Short: "Show one movie in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog by title",
	Long:  `Search movie titles with a case-insensitive substring match.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

// topCmd represents the top command
var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the top rated movies",
	RunE:  runTop,
}

// similarCmd represents the similar command
var similarCmd = &cobra.Command{
	Use:   "similar <movie-id>",
	Short: "Show movies similar to the given one",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimilar,
}

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play <movie-id>",
	Short: "Print the playback URL for a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlay,
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connectivity to the backend services",
	RunE:  runTest,
}

func init() {
	listCmd.Flags().IntVarP(&pageFlag, "page", "p", 1, "page number")
	listCmd.Flags().IntVarP(&sizeFlag, "size", "s", 50, "page size")
	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(similarCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(testCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	films := catalogOps.List(context.Background(), pageFlag, sizeFlag)

	if filterExpr != "" {
		predicate, err := filter.CreateFilter(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}

		filtered := make([]catalog.Film, 0, len(films))
		for _, film := range films {
			if predicate(film) {
				filtered = append(filtered, film)
			}
		}
		films = filtered
	}

	printFilms(films)
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	movieID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id %q", args[0])
	}

	film := catalogOps.Get(context.Background(), movieID)
	if film == nil {
		fmt.Println("Movie not found.")
		return nil
	}

	fmt.Printf("%s\n\n", film.Title)
	fmt.Printf("  ID:       %d\n", film.MovieID)
	fmt.Printf("  Rating:   %.1f\n", film.Rating)
	fmt.Printf("  Released: %s\n", film.ReleaseDate)
	fmt.Printf("  Duration: %s\n", formatDuration(film.Duration))
	fmt.Printf("  Poster:   %s\n", film.PosterURL)
	fmt.Printf("  Backdrop: %s\n", film.BackdropURL)
	if film.VideoURL != "" {
		fmt.Printf("  Video:    %s\n", film.VideoURL)
	}
	fmt.Printf("\n%s\n", film.Description)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	for _, arg := range args[1:] {
		query += " " + arg
	}

	films := catalogOps.Search(context.Background(), query)
	if len(films) == 0 {
		fmt.Println("No movies found.")
		return nil
	}

	printFilms(films)
	return nil
}

func runTop(cmd *cobra.Command, args []string) error {
	printFilms(catalogOps.TopRated(context.Background()))
	return nil
}

func runSimilar(cmd *cobra.Command, args []string) error {
	movieID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id %q", args[0])
	}

	films := catalogOps.Similar(context.Background(), movieID)

	// The backend may echo the queried movie back; drop it here.
	results := make([]catalog.Film, 0, len(films))
	for _, film := range films {
		if film.MovieID != movieID {
			results = append(results, film)
		}
	}

	printFilms(results)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	movieID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id %q", args[0])
	}

	fmt.Println(catalogOps.StreamURL(movieID))
	return nil
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to catalog service at %s...\n", cfg.Catalog.URL)

	page := catalogOps.AllPaged(context.Background(), 1, 1)
	if page.Total == 0 {
		fmt.Println("✗ Catalog service returned no movies (service down or catalog empty)")
	} else {
		fmt.Println("✓ Catalog connection successful!")
	}

	if user, ok := sessions.Current(); ok {
		fmt.Printf("✓ Logged in as %s\n", user.Login)
	} else {
		fmt.Println("Not logged in")
	}

	return nil
}

func formatDuration(seconds int) string {
	if seconds == 0 {
		return "unknown"
	}
	return fmt.Sprintf("%dm", seconds/60)
}
