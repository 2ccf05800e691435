package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/adityamangal1998/go_tube/internal/engine"
)

// YouTube Data API v3 client. Works key-optional: callers check
// DataAPIConfigured and fall back to page scraping when no key is set.
const dataAPIBase = "https://www.googleapis.com/youtube/v3"

// Comment is one top-level video comment.
type Comment struct {
	Text        string `json:"text"`
	Author      string `json:"author"`
	LikeCount   int64  `json:"like_count"`
	PublishedAt string `json:"published_at"`
}

// ChannelStats is the Data API view of a channel.
type ChannelStats struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	SubscriberCount int64  `json:"subscriber_count"`
	VideoCount      int64  `json:"video_count"`
	ViewCount       int64  `json:"view_count"`
	UploadsPlaylist string `json:"-"`
}

// DataAPIConfigured reports whether a Data API key is available.
func DataAPIConfigured() bool {
	return engine.Cfg.YouTubeAPIKey != ""
}

// Raw API response shapes. Statistics counts arrive as strings.
type apiVideoItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Tags        []string `json:"tags"`
		PublishedAt string   `json:"publishedAt"`
		ChannelID   string   `json:"channelId"`
		ChannelName string   `json:"channelTitle"`
		Thumbnails  struct {
			Maxres struct {
				URL string `json:"url"`
			} `json:"maxres"`
			High struct {
				URL string `json:"url"`
			} `json:"high"`
			Medium struct {
				URL string `json:"url"`
			} `json:"medium"`
			Default struct {
				URL string `json:"url"`
			} `json:"default"`
		} `json:"thumbnails"`
		ResourceID struct {
			VideoID string `json:"videoId"`
		} `json:"resourceId"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount       string `json:"viewCount"`
		LikeCount       string `json:"likeCount"`
		CommentCount    string `json:"commentCount"`
		SubscriberCount string `json:"subscriberCount"`
		VideoCount      string `json:"videoCount"`
	} `json:"statistics"`
	ContentDetails struct {
		Duration         string `json:"duration"`
		RelatedPlaylists struct {
			Uploads string `json:"uploads"`
		} `json:"relatedPlaylists"`
	} `json:"contentDetails"`
}

type apiListResponse struct {
	Items         []apiVideoItem `json:"items"`
	NextPageToken string         `json:"nextPageToken"`
}

type apiSearchResponse struct {
	Items []struct {
		Snippet struct {
			Title     string `json:"title"`
			ChannelID string `json:"channelId"`
		} `json:"snippet"`
	} `json:"items"`
}

type apiCommentsResponse struct {
	Items []struct {
		Snippet struct {
			TopLevelComment struct {
				Snippet struct {
					TextDisplay       string `json:"textDisplay"`
					AuthorDisplayName string `json:"authorDisplayName"`
					LikeCount         int64  `json:"likeCount"`
					PublishedAt       string `json:"publishedAt"`
				} `json:"snippet"`
			} `json:"topLevelComment"`
		} `json:"snippet"`
	} `json:"items"`
}

// dataAPIGet issues one API request, decoding JSON into out. On a 403
// (quota exceeded or key rejected) the fallback key is tried once.
func dataAPIGet(ctx context.Context, endpoint string, params url.Values, out any) error {
	engine.IncrDataAPIRequests()

	key := engine.Cfg.YouTubeAPIKey
	if key == "" {
		return fmt.Errorf("data api: no key configured")
	}

	status, body, err := dataAPIDo(ctx, endpoint, params, key)
	if err == nil && status == http.StatusForbidden && engine.Cfg.YouTubeAPIKeyFallback != "" {
		status, body, err = dataAPIDo(ctx, endpoint, params, engine.Cfg.YouTubeAPIKeyFallback)
	}
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("data api %s: status %d", endpoint, status)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("data api %s: decode: %w", endpoint, err)
	}
	return nil
}

func dataAPIDo(ctx context.Context, endpoint string, params url.Values, key string) (int, []byte, error) {
	q := url.Values{}
	for k, vs := range params {
		q[k] = vs
	}
	q.Set("key", key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, dataAPIBase+"/"+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)
	req.Header.Set("Accept", "application/json")

	client := engine.Cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		return client.Do(req)
	})
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

// recordFromAPIItem converts one videos.list item into a Record.
func recordFromAPIItem(item apiVideoItem) engine.Record {
	secs := engine.ParseISO8601(item.ContentDetails.Duration)
	th := item.Snippet.Thumbnails
	thumbnail := th.Maxres.URL
	if thumbnail == "" {
		thumbnail = th.High.URL
	}
	if thumbnail == "" {
		thumbnail = th.Medium.URL
	}
	if thumbnail == "" {
		thumbnail = th.Default.URL
	}

	rec := engine.Record{
		Kind:            engine.KindVideo,
		ID:              item.ID,
		Title:           item.Snippet.Title,
		Description:     item.Snippet.Description,
		Tags:            item.Snippet.Tags,
		ViewCount:       atoi64(item.Statistics.ViewCount),
		LikeCount:       atoi64(item.Statistics.LikeCount),
		CommentCount:    atoi64(item.Statistics.CommentCount),
		DurationSeconds: secs,
		PublishedAt:     item.Snippet.PublishedAt,
		Thumbnail:       thumbnail,
		URL:             "https://www.youtube.com/watch?v=" + item.ID,
		Channel:         item.Snippet.ChannelName,
	}
	if secs > 0 {
		rec.Duration = engine.FormatClock(secs)
	}
	return rec
}

func atoi64(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

// APIVideoDetails fetches one video record via the Data API.
func APIVideoDetails(ctx context.Context, videoID string) (engine.Record, error) {
	var resp apiListResponse
	params := url.Values{
		"part": {"snippet,statistics,contentDetails"},
		"id":   {videoID},
	}
	if err := dataAPIGet(ctx, "videos", params, &resp); err != nil {
		return engine.Record{}, err
	}
	if len(resp.Items) == 0 {
		return engine.Record{}, fmt.Errorf("data api: video %s not found", videoID)
	}
	return recordFromAPIItem(resp.Items[0]), nil
}

// APIChannelInfo fetches channel statistics and its uploads playlist ID.
func APIChannelInfo(ctx context.Context, channelID string) (ChannelStats, error) {
	var resp apiListResponse
	params := url.Values{
		"part": {"snippet,statistics,contentDetails"},
		"id":   {channelID},
	}
	if err := dataAPIGet(ctx, "channels", params, &resp); err != nil {
		return ChannelStats{}, err
	}
	if len(resp.Items) == 0 {
		return ChannelStats{}, fmt.Errorf("data api: channel %s not found", channelID)
	}

	item := resp.Items[0]
	return ChannelStats{
		ID:              item.ID,
		Title:           item.Snippet.Title,
		Description:     item.Snippet.Description,
		SubscriberCount: atoi64(item.Statistics.SubscriberCount),
		VideoCount:      atoi64(item.Statistics.VideoCount),
		ViewCount:       atoi64(item.Statistics.ViewCount),
		UploadsPlaylist: item.ContentDetails.RelatedPlaylists.Uploads,
	}, nil
}

// APIChannelIDForHandle resolves an @handle through channel search,
// preferring a title that overlaps the handle, else the first hit.
func APIChannelIDForHandle(ctx context.Context, handle string) (string, error) {
	handle = strings.TrimPrefix(handle, "@")

	var resp apiSearchResponse
	params := url.Values{
		"part":       {"snippet"},
		"q":          {handle},
		"type":       {"channel"},
		"maxResults": {"5"},
	}
	if err := dataAPIGet(ctx, "search", params, &resp); err != nil {
		return "", err
	}

	lower := strings.ToLower(handle)
	for _, item := range resp.Items {
		title := strings.ToLower(item.Snippet.Title)
		if strings.Contains(title, lower) || strings.Contains(lower, title) {
			return item.Snippet.ChannelID, nil
		}
	}
	if len(resp.Items) > 0 {
		return resp.Items[0].Snippet.ChannelID, nil
	}
	return "", fmt.Errorf("data api: no channel found for handle %q", handle)
}

// APIChannelVideos lists up to maxResults videos from a channel's uploads
// playlist, newest first, paging until filled. Shorts are dropped after
// the detail fetch when includeShorts is false, so the duration check
// sees real durations.
func APIChannelVideos(ctx context.Context, channelID string, maxResults int, includeShorts bool) ([]engine.Record, error) {
	info, err := APIChannelInfo(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if info.UploadsPlaylist == "" {
		return nil, fmt.Errorf("data api: channel %s has no uploads playlist", channelID)
	}

	var videos []engine.Record
	pageToken := ""

	for len(videos) < maxResults {
		pageSize := maxResults - len(videos)
		if pageSize > 50 {
			pageSize = 50
		}

		var page apiListResponse
		params := url.Values{
			"part":       {"snippet"},
			"playlistId": {info.UploadsPlaylist},
			"maxResults": {strconv.Itoa(pageSize)},
		}
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}
		if err := dataAPIGet(ctx, "playlistItems", params, &page); err != nil {
			return videos, err
		}

		ids := make([]string, 0, len(page.Items))
		for _, item := range page.Items {
			if id := item.Snippet.ResourceID.VideoID; id != "" {
				ids = append(ids, id)
			}
		}
		if len(ids) > 0 {
			var details apiListResponse
			detailParams := url.Values{
				"part": {"snippet,statistics,contentDetails"},
				"id":   {strings.Join(ids, ",")},
			}
			if err := dataAPIGet(ctx, "videos", detailParams, &details); err != nil {
				return videos, err
			}
			for _, item := range details.Items {
				rec := recordFromAPIItem(item)
				if !includeShorts && engine.IsShortForm(rec.Duration) {
					continue
				}
				videos = append(videos, rec)
			}
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if len(videos) > maxResults {
		videos = videos[:maxResults]
	}
	return videos, nil
}

// APIVideoComments fetches up to maxResults top-level comments ordered
// by relevance.
func APIVideoComments(ctx context.Context, videoID string, maxResults int) ([]Comment, error) {
	engine.IncrCommentRequests()

	var resp apiCommentsResponse
	params := url.Values{
		"part":       {"snippet"},
		"videoId":    {videoID},
		"maxResults": {strconv.Itoa(maxResults)},
		"order":      {"relevance"},
	}
	if err := dataAPIGet(ctx, "commentThreads", params, &resp); err != nil {
		return nil, err
	}

	comments := make([]Comment, 0, len(resp.Items))
	for _, item := range resp.Items {
		c := item.Snippet.TopLevelComment.Snippet
		comments = append(comments, Comment{
			Text:        c.TextDisplay,
			Author:      c.AuthorDisplayName,
			LikeCount:   c.LikeCount,
			PublishedAt: c.PublishedAt,
		})
	}
	return comments, nil
}
