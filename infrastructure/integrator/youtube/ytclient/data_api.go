package ytclient

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	ytdomain "github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/shorts-insights-api/pkg/utils"
)

// GetMyChannel resolve o canal do usuário autenticado e a playlist de uploads.
func (c *YouTubeClient) GetMyChannel(ctx context.Context) (*ytdomain.Channel, error) {
	resp, err := c.data.Channels.List([]string{"id", "snippet", "contentDetails"}).
		Mine(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "channels.list")
	}

	if len(resp.Items) == 0 || resp.Items[0] == nil || resp.Items[0].Id == "" {
		return nil, ytdomain.ErrChannelNotFound
	}

	item := resp.Items[0]
	channel := &ytdomain.Channel{ID: item.Id}

	if item.Snippet != nil && item.Snippet.Title != "" {
		channel.Name = utils.StringPtr(item.Snippet.Title)
	}

	if item.ContentDetails != nil && item.ContentDetails.RelatedPlaylists != nil {
		channel.UploadsPlaylistID = item.ContentDetails.RelatedPlaylists.Uploads
	}

	if channel.UploadsPlaylistID == "" {
		return nil, ytdomain.ErrMissingUploads
	}

	return channel, nil
}

// ListUploadsPage busca uma página (50 itens) da playlist de uploads.
func (c *YouTubeClient) ListUploadsPage(ctx context.Context, playlistID, pageToken string) (*ytdomain.UploadsPage, error) {
	call := c.data.PlaylistItems.List([]string{"contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(ytdomain.PlaylistPageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, errors.Wrapf(err, "playlistItems.list (%s)", playlistID)
	}

	page := &ytdomain.UploadsPage{
		VideoIDs:      make([]string, 0, len(resp.Items)),
		NextPageToken: resp.NextPageToken,
	}

	for _, item := range resp.Items {
		if item == nil || item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
			continue
		}
		page.VideoIDs = append(page.VideoIDs, item.ContentDetails.VideoId)
	}

	return page, nil
}

// GetVideosByIDs busca snippet e contentDetails de até 50 vídeos.
func (c *YouTubeClient) GetVideosByIDs(ctx context.Context, ids []string) ([]ytdomain.VideoDetail, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	if len(ids) > ytdomain.VideoBatchSize {
		return nil, errors.Errorf("videos.list aceita no máximo %d ids, recebeu %d", ytdomain.VideoBatchSize, len(ids))
	}

	resp, err := c.data.Videos.List([]string{"snippet", "contentDetails"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrapf(err, "videos.list (%s)", strings.Join(ids, ","))
	}

	details := make([]ytdomain.VideoDetail, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil {
			continue
		}

		detail := ytdomain.VideoDetail{ID: item.Id}
		if item.Snippet != nil {
			detail.Title = item.Snippet.Title
			detail.PublishedAt = item.Snippet.PublishedAt
			if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Default != nil {
				detail.ThumbnailURL = item.Snippet.Thumbnails.Default.Url
			}
		}
		if item.ContentDetails != nil {
			detail.Duration = item.ContentDetails.Duration
		}

		details = append(details, detail)
	}

	logrus.WithFields(logrus.Fields{
		"requested": len(ids),
		"returned":  len(details),
	}).Debug("catalog: fetched video details batch")

	return details, nil
}
