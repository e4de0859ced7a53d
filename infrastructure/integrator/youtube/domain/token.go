package ytdomain

import "golang.org/x/oauth2"

// Origem da credencial usada no relatório.
const (
	SourceOAuthRefresh   = "oauth_refresh"
	SourceServiceAccount = "service_account"
	SourceADC            = "adc"
)

var Scopes = []string{
	"https://www.googleapis.com/auth/youtube.readonly",
	"https://www.googleapis.com/auth/yt-analytics.readonly",
}

// AccessToken é o token obtido e a estratégia que o produziu.
type AccessToken struct {
	Token  *oauth2.Token
	Source string
}
