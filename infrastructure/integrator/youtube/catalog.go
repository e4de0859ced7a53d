package youtube

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	ytdomain "github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/shorts-insights-api/internal/domain"
	"github.com/vfg2006/shorts-insights-api/pkg/utils"
)

// FetchShortVideos percorre a playlist de uploads e devolve até maxVideos
// shorts (0 < duração ≤ 90s), do mais recente para o mais antigo.
// Erros do YouTube são propagados sem tratamento.
func (s *YouTubeIntegrator) FetchShortVideos(ctx context.Context, uploadsPlaylistID string, maxVideos int) ([]domain.VideoCandidate, error) {
	ids, err := s.collectUploadIDs(ctx, uploadsPlaylistID, maxVideos)
	if err != nil {
		return nil, err
	}

	videos := make([]domain.VideoCandidate, 0, len(ids))
	for _, batch := range utils.Chunk(ids, ytdomain.VideoBatchSize) {
		details, err := s.Client.GetVideosByIDs(ctx, batch)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"playlist_id": uploadsPlaylistID,
				"batch_size":  len(batch),
				"error":       err.Error(),
			}).Error("catalog: failed to fetch video details")
			return nil, err
		}

		for _, detail := range details {
			if candidate, ok := toShortCandidate(detail); ok {
				videos = append(videos, candidate)
			}
		}
	}

	// PublishedAt está em YYYY-MM-DD, comparação lexicográfica basta
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].PublishedAt > videos[j].PublishedAt
	})

	logrus.WithFields(logrus.Fields{
		"playlist_id": uploadsPlaylistID,
		"scanned":     len(ids),
		"shorts":      len(videos),
	}).Info("catalog: short videos discovered")

	return videos, nil
}

// collectUploadIDs acumula ids únicos, na ordem em que aparecem, até atingir
// maxVideos, ler MaxUploadPages páginas ou a playlist acabar.
func (s *YouTubeIntegrator) collectUploadIDs(ctx context.Context, playlistID string, maxVideos int) ([]string, error) {
	seen := make(map[string]struct{}, maxVideos)
	ids := make([]string, 0, maxVideos)
	pageToken := ""

	for page := 0; len(ids) < maxVideos && page < ytdomain.MaxUploadPages; page++ {
		resp, err := s.Client.ListUploadsPage(ctx, playlistID, pageToken)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"playlist_id": playlistID,
				"page":        page,
				"error":       err.Error(),
			}).Error("catalog: failed to list uploads page")
			return nil, err
		}

		for _, id := range resp.VideoIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if len(ids) > maxVideos {
		ids = ids[:maxVideos]
	}

	return ids, nil
}

func toShortCandidate(detail ytdomain.VideoDetail) (domain.VideoCandidate, bool) {
	duration := utils.ParseISODurationSeconds(detail.Duration)
	if duration == nil || *duration <= 0 || *duration > domain.ShortMaxSeconds {
		return domain.VideoCandidate{}, false
	}

	publishedAt, ok := utils.NormalizeDate(detail.PublishedAt)
	if detail.ID == "" || detail.Title == "" || !ok {
		return domain.VideoCandidate{}, false
	}

	candidate := domain.VideoCandidate{
		VideoID:         detail.ID,
		Title:           detail.Title,
		PublishedAt:     publishedAt,
		DurationSeconds: *duration,
	}
	if detail.ThumbnailURL != "" {
		candidate.Thumbnail = utils.StringPtr(detail.ThumbnailURL)
	}

	return candidate, true
}
