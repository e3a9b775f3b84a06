package handlers

import (
	"strings"
	"testing"

	"github.com/jmagar/ytdash/internal/dataset"
	"github.com/stretchr/testify/require"
)

const testExportHeader = "video_id,trending_date,title,channel_title,category_id,publish_time,tags,views,likes,dislikes,comment_count,comments_disabled,ratings_disabled,video_error_or_removed,description\n"

// setupTestStore builds a store with a three row US export and a one row GB export
func setupTestStore(t *testing.T) *dataset.Store {
	us, err := dataset.Parse("US", strings.NewReader(testExportHeader+
		"a1,17.14.11,First,Chan A,22,2017-11-13T17:13:01.000Z,one,100,10,1,5,False,False,False,first\n"+
		"a2,17.14.11,Second,Chan B,24,not-a-date,two,200,20,2,6,False,False,False,second\n"+
		"a3,17.15.11,Third,Chan C,10,2017-11-12T05:37:17.000Z,,300,30,3,7,False,False,False,third\n"))
	require.NoError(t, err)

	gb, err := dataset.Parse("GB", strings.NewReader(testExportHeader+
		"g1,17.14.11,Only,Chan G,22,2017-11-13T17:13:01.000Z,,5,0,0,0,False,False,False,\n"))
	require.NoError(t, err)

	store, err := dataset.NewStore(us, gb)
	require.NoError(t, err)
	return store
}
