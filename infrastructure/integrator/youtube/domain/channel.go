package ytdomain

// Channel é o canal do usuário autenticado.
type Channel struct {
	ID                string
	Name              *string
	UploadsPlaylistID string
}
