package ytdomain

const (
	// PlaylistPageSize é o máximo de itens por página de playlistItems.list.
	PlaylistPageSize = 50
	// VideoBatchSize é o máximo de ids aceitos por videos.list.
	VideoBatchSize = 50
	// MaxUploadPages limita a varredura da playlist de uploads.
	MaxUploadPages = 6
)

// UploadsPage é uma página da playlist de uploads.
type UploadsPage struct {
	VideoIDs      []string
	NextPageToken string
}

// VideoDetail é o recorte de videos.list usado na descoberta do catálogo.
type VideoDetail struct {
	ID           string
	Title        string
	PublishedAt  string
	ThumbnailURL string
	Duration     string // ISO-8601, ex.: PT45S
}
