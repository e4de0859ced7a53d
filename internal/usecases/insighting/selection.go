package insighting

import (
	"fmt"

	"github.com/vfg2006/shorts-insights-api/internal/domain"
)

// ResolveSelection escolhe o vídeo em destaque dentro da shortlist já ranqueada.
//
// "all" (ou vazio) não pede nenhum vídeo. Um id fora da shortlist gera aviso e
// cai no mesmo caminho: o primeiro da shortlist, ou nenhum se ela estiver vazia.
func ResolveSelection(requestedID string, shortlist []domain.EnrichedVideo) domain.Selection {
	selection := domain.Selection{State: domain.SelectionUnresolved}

	if requestedID != "" && requestedID != domain.AllVideos {
		if video := findVideo(shortlist, requestedID); video != nil {
			selection.State = domain.SelectionExplicit
			selection.Video = video
			return selection
		}

		selection.Warning = fmt.Sprintf(
			"Requested videoId (%s) is not in current top %d; using strongest signal instead.",
			requestedID, len(shortlist),
		)
	}

	if len(shortlist) == 0 {
		selection.State = domain.SelectionNone
		return selection
	}

	top := shortlist[0]
	selection.State = domain.SelectionFallbackTop
	selection.Video = &top

	return selection
}

func findVideo(videos []domain.EnrichedVideo, videoID string) *domain.EnrichedVideo {
	for i := range videos {
		if videos[i].VideoID == videoID {
			video := videos[i]
			return &video
		}
	}
	return nil
}
