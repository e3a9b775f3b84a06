package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jmagar/ytdash/internal/models"
	"golang.org/x/text/encoding/charmap"
)

// PublishTimeLayout matches UTC timestamps such as 2017-11-13T17:13:01.000000Z.
// The fraction must carry between one and six digits.
const PublishTimeLayout = "2006-01-02T15:04:05.999999Z"

const maxFractionDigits = 6

var (
	ErrEmptyFile     = errors.New("export has no header row")
	ErrMissingColumn = errors.New("export is missing a required column")
)

// ParsePublishTime parses a publish_time cell. ok is false when the value
// is not a valid timestamp.
func ParsePublishTime(raw string) (t time.Time, ok bool) {
	raw = strings.TrimSpace(raw)
	if !validFraction(raw) {
		return time.Time{}, false
	}

	t, err := time.Parse(PublishTimeLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// validFraction reports whether the digits between the last '.' and the
// trailing 'Z' number one to six. time.Parse treats the fraction as
// optional and of any length.
func validFraction(raw string) bool {
	dot := strings.LastIndexByte(raw, '.')
	if dot < 0 || !strings.HasSuffix(raw, "Z") || dot+1 > len(raw)-1 {
		return false
	}

	digits := raw[dot+1 : len(raw)-1]
	if len(digits) == 0 || len(digits) > maxFractionDigits {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ReadFile loads the export at path for the given country
func ReadFile(country, path string) (*models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export for %s: %w", country, err)
	}
	defer f.Close()

	ds, err := Parse(country, f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	ds.Source = path

	return ds, nil
}

// Parse decodes a Latin-1 CSV export. Malformed dates and numbers are
// recorded on the dataset instead of failing the load.
func Parse(country string, r io.Reader) (*models.Dataset, error) {
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
		index[columns[i]] = i
	}

	var missing []string
	for _, name := range models.RequiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	ds := &models.Dataset{
		Country: country,
		Columns: columns,
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}

		// Short rows are padded so every cell lines up with the header.
		if len(record) < len(columns) {
			padded := make([]string, len(columns))
			copy(padded, record)
			record = padded
		}

		ds.Videos = append(ds.Videos, buildVideo(ds, index, record))
	}

	return ds, nil
}

func buildVideo(ds *models.Dataset, index map[string]int, record []string) models.Video {
	cell := func(name string) string {
		return record[index[name]]
	}

	v := models.Video{
		VideoID:      cell(models.ColumnVideoID),
		TrendingDate: cell(models.ColumnTrendingDate),
		Title:        cell(models.ColumnTitle),
		ChannelTitle: cell(models.ColumnChannelTitle),
		Raw:          record,
	}

	raw := cell(models.ColumnPublishTime)
	if t, ok := ParsePublishTime(raw); ok {
		v.PublishTime = &t
	} else {
		log.Printf("Error parsing date: %q", raw)
		ds.DateParseFailures++
	}

	for name, dst := range map[string]*int64{
		models.ColumnViews:    &v.Views,
		models.ColumnLikes:    &v.Likes,
		models.ColumnDislikes: &v.Dislikes,
	} {
		n, ok := parseCount(cell(name))
		if !ok {
			ds.NumberParseFailures++
		}
		*dst = n
	}

	return v
}

// parseCount reads a non-negative count. Float-formatted values are
// truncated; anything else counts as zero.
func parseCount(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n >= 0 {
		return n, true
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f >= 0 && f < math.MaxInt64 {
		return int64(f), true
	}
	return 0, false
}
