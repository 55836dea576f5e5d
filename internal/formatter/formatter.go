// package formatter renders movie lists and wishlist exports to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/dhkim-dev/cinewish/internal/models"
	"github.com/dhkim-dev/cinewish/internal/shared"
)

// MovieTable renders a movie list as aligned plain-text rows. The wishlisted
// predicate marks liked entries; pass nil to skip the marker column.
func MovieTable(movies []models.Movie, wishlisted func(id int) bool) []byte {
	var buf bytes.Buffer

	for i, m := range movies {
		marker := " "
		if wishlisted != nil && wishlisted(m.ID) {
			marker = "♥"
		}

		year := ""
		if y := m.Year(); y != 0 {
			year = fmt.Sprintf(" (%d)", y)
		}

		buf.WriteString(fmt.Sprintf("%3d. %s %s%s  ★%s  #%d\n",
			i+1, marker, m.Title, year, shared.FormatRating(m.VoteAverage), m.ID))
	}

	return buf.Bytes()
}

// GenreTable renders the genre list as "id name" rows.
func GenreTable(genres []models.Genre) []byte {
	var buf bytes.Buffer
	for _, g := range genres {
		buf.WriteString(fmt.Sprintf("%5d  %s\n", g.ID, g.Name))
	}
	return buf.Bytes()
}

// MovieDetailText renders a single movie's detail record.
func MovieDetailText(detail *models.MovieDetail, imageURL string) []byte {
	var buf bytes.Buffer

	buf.WriteString(detail.Title)
	if detail.OriginalTitle != "" && detail.OriginalTitle != detail.Title {
		buf.WriteString(fmt.Sprintf(" / %s", detail.OriginalTitle))
	}
	buf.WriteString("\n")

	if detail.Tagline != "" {
		buf.WriteString(fmt.Sprintf("%s\n", detail.Tagline))
	}

	buf.WriteString(fmt.Sprintf("Rating: %s (%d votes)\n", shared.FormatRating(detail.VoteAverage), detail.VoteCount))
	if detail.ReleaseDate != "" {
		buf.WriteString(fmt.Sprintf("Released: %s\n", detail.ReleaseDate))
	}
	if detail.Runtime > 0 {
		buf.WriteString(fmt.Sprintf("Runtime: %d min\n", detail.Runtime))
	}

	if len(detail.Genres) > 0 {
		buf.WriteString("Genres:")
		for _, g := range detail.Genres {
			buf.WriteString(" " + g.Name)
		}
		buf.WriteString("\n")
	}

	if imageURL != "" {
		buf.WriteString(fmt.Sprintf("Poster: %s\n", imageURL))
	}

	if detail.Overview != "" {
		buf.WriteString("\n" + detail.Overview + "\n")
	}

	return buf.Bytes()
}

// ExportToCSV converts wishlist entries to CSV with columns: ID, Title, Rating, Poster
func ExportToCSV(entries []models.MovieSummary) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Rating", "Poster"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, e := range entries {
		record := []string{
			strconv.Itoa(e.ID),
			e.Title,
			shared.FormatRating(e.VoteAverage),
			e.PosterPath,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts wishlist entries to a Markdown document. The
// imageURL function turns a poster path into a CDN URL; entries without a
// poster get no image line.
func ExportToMarkdown(entries []models.MovieSummary, imageURL func(path string) string) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Wishlist\n\n")
	buf.WriteString(fmt.Sprintf("**Movies**: %d\n\n", len(entries)))

	for i, e := range entries {
		buf.WriteString(fmt.Sprintf("%d. **%s** ★%s\n", i+1, e.Title, shared.FormatRating(e.VoteAverage)))
		if imageURL != nil {
			if u := imageURL(e.PosterPath); u != "" {
				buf.WriteString(fmt.Sprintf("   ![poster](%s)\n", u))
			}
		}
	}

	return buf.Bytes()
}

// ExportToJSON converts wishlist entries to indented JSON.
func ExportToJSON(entries []models.MovieSummary) ([]byte, error) {
	return shared.MarshalJSON(entries, true)
}

// WriteExport writes the wishlist to a file in the requested format
// (csv, markdown or json) and returns the path written.
func WriteExport(entries []models.MovieSummary, format, path string, imageURL func(path string) string) (string, error) {
	var data []byte
	var err error
	var ext string

	switch format {
	case "csv":
		data, err = ExportToCSV(entries)
		ext = ".csv"
	case "markdown", "md":
		data = ExportToMarkdown(entries, imageURL)
		ext = ".md"
	case "json":
		data, err = ExportToJSON(entries)
		ext = ".json"
	default:
		return "", fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate export: %w", err)
	}

	if path == "" {
		path = "wishlist" + ext
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
