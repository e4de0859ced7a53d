package domain

type SelectionState string

const (
	SelectionUnresolved  SelectionState = "unresolved"
	SelectionExplicit    SelectionState = "explicit"
	SelectionFallbackTop SelectionState = "fallback_top"
	SelectionNone        SelectionState = "none"
)

// Selection é o resultado da política de seleção do vídeo em destaque.
type Selection struct {
	State   SelectionState
	Video   *EnrichedVideo
	Warning string
}

func (s Selection) VideoID() *string {
	if s.Video == nil {
		return nil
	}
	id := s.Video.VideoID
	return &id
}
