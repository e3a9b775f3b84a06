package models

import "time"

// Column names used by the trending-video exports
const (
	ColumnVideoID             = "video_id"
	ColumnTrendingDate        = "trending_date"
	ColumnTitle               = "title"
	ColumnChannelTitle        = "channel_title"
	ColumnCategoryID          = "category_id"
	ColumnPublishTime         = "publish_time"
	ColumnTags                = "tags"
	ColumnViews               = "views"
	ColumnLikes               = "likes"
	ColumnDislikes            = "dislikes"
	ColumnCommentsDisabled    = "comments_disabled"
	ColumnRatingsDisabled     = "ratings_disabled"
	ColumnVideoErrorOrRemoved = "video_error_or_removed"
	ColumnDescription         = "description"
)

// RequiredColumns must all be present in an export header.
var RequiredColumns = []string{
	ColumnPublishTime,
	ColumnTrendingDate,
	ColumnViews,
	ColumnLikes,
	ColumnDislikes,
	ColumnVideoID,
	ColumnTitle,
	ColumnChannelTitle,
	ColumnCommentsDisabled,
	ColumnRatingsDisabled,
	ColumnVideoErrorOrRemoved,
	ColumnCategoryID,
	ColumnTags,
	ColumnDescription,
}

// DisplayTimeLayout is how a parsed publish_time is shown to users.
const DisplayTimeLayout = "2006-01-02 15:04:05"

// MissingTime is shown in place of a publish_time that could not be parsed.
const MissingTime = "NaT"

// Video is a single row of a trending export
type Video struct {
	VideoID      string
	TrendingDate string
	Title        string
	ChannelTitle string
	// PublishTime is nil when the source value was not parseable.
	PublishTime *time.Time
	Views       int64
	Likes       int64
	Dislikes    int64

	// Raw holds every cell of the source row, aligned with Dataset.Columns.
	// Columns without a typed field above are read from here.
	Raw []string
}

// Dataset is the ordered list of trending rows exported for one country.
// A Dataset is never modified once loaded.
type Dataset struct {
	Country             string
	Source              string
	Columns             []string
	Videos              []Video
	DateParseFailures   int
	NumberParseFailures int
}

// Len returns the number of rows
func (d *Dataset) Len() int {
	return len(d.Videos)
}

// CountrySummary describes a loaded dataset for the countries endpoint
type CountrySummary struct {
	Country             string `json:"country"`
	Rows                int    `json:"rows"`
	Source              string `json:"source"`
	DateParseFailures   int    `json:"date_parse_failures"`
	NumberParseFailures int    `json:"number_parse_failures"`
}
