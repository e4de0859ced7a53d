package ytclient

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	ytdomain "github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/shorts-insights-api/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Credential é uma origem de token já resolvida.
type Credential struct {
	TokenSource oauth2.TokenSource
	Source      string
}

// CredentialSource é uma estratégia de obtenção de credencial.
// TryResolve retorna (nil, nil) quando a estratégia não se aplica.
type CredentialSource interface {
	Name() string
	TryResolve(ctx context.Context) (*Credential, error)
}

// DefaultSources monta as estratégias na ordem de prioridade:
// refresh token OAuth, service account (JSON, JSON base64, GOOGLE_APPLICATION_CREDENTIALS) e ADC.
func DefaultSources(cfg config.YouTube) []CredentialSource {
	return []CredentialSource{
		&OAuthRefreshSource{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RefreshToken: cfg.RefreshToken,
		},
		&ServiceAccountSource{Label: "GCP_SERVICE_ACCOUNT_JSON", Raw: cfg.ServiceAccountJSON},
		&ServiceAccountSource{Label: "GOOGLE_SERVICE_ACCOUNT_JSON", Raw: cfg.GoogleServiceAccountJSON},
		&ServiceAccountSource{Label: "GCP_SERVICE_ACCOUNT_JSON_BASE64", Raw: cfg.ServiceAccountJSONBase64, Base64: true},
		&ApplicationCredentialsSource{Value: cfg.ApplicationCredentials},
		&ADCSource{},
	}
}

type OAuthRefreshSource struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

func (s *OAuthRefreshSource) Name() string { return ytdomain.SourceOAuthRefresh }

func (s *OAuthRefreshSource) TryResolve(_ context.Context) (*Credential, error) {
	clientID := strings.TrimSpace(s.ClientID)
	clientSecret := strings.TrimSpace(s.ClientSecret)
	refreshToken := strings.TrimSpace(s.RefreshToken)
	if clientID == "" || clientSecret == "" || refreshToken == "" {
		return nil, nil
	}

	oauthConfig := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       ytdomain.Scopes,
		Endpoint:     google.Endpoint,
	}

	// O token source vive além da requisição, por isso não herda o ctx dela.
	ts := oauthConfig.TokenSource(context.Background(), &oauth2.Token{RefreshToken: refreshToken})

	return &Credential{TokenSource: ts, Source: ytdomain.SourceOAuthRefresh}, nil
}

// ServiceAccountSource lê a chave JSON de uma service account, aceitando
// também o conteúdo codificado em base64.
type ServiceAccountSource struct {
	Label  string
	Raw    string
	Base64 bool
}

func (s *ServiceAccountSource) Name() string { return ytdomain.SourceServiceAccount }

func (s *ServiceAccountSource) TryResolve(_ context.Context) (*Credential, error) {
	if strings.TrimSpace(s.Raw) == "" {
		return nil, nil
	}

	candidate := s.Raw
	if s.Base64 {
		if decoded, ok := maybeDecodeBase64(s.Raw); ok {
			candidate = decoded
		}
	}

	key, err := parseServiceAccount(candidate, s.Label)
	if err != nil {
		logrus.WithField("source", s.Label).WithError(err).Warn("credentials: failed parsing service account")
		return nil, nil
	}
	if key == nil {
		return nil, nil
	}

	return serviceAccountCredential(key)
}

// ApplicationCredentialsSource trata GOOGLE_APPLICATION_CREDENTIALS, que pode
// conter o JSON inline ou o caminho de um arquivo.
type ApplicationCredentialsSource struct {
	Value string
}

func (s *ApplicationCredentialsSource) Name() string { return ytdomain.SourceServiceAccount }

func (s *ApplicationCredentialsSource) TryResolve(_ context.Context) (*Credential, error) {
	value := strings.TrimSpace(s.Value)
	if value == "" {
		return nil, nil
	}

	if key, err := parseServiceAccount(value, "GOOGLE_APPLICATION_CREDENTIALS"); err == nil && key != nil {
		return serviceAccountCredential(key)
	}

	path, err := filepath.Abs(value)
	if err != nil {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).Warn("credentials: failed reading GOOGLE_APPLICATION_CREDENTIALS")
		}
		return nil, nil
	}

	key, err := parseServiceAccount(string(raw), path)
	if err != nil {
		logrus.WithField("path", path).WithError(err).Warn("credentials: failed parsing GOOGLE_APPLICATION_CREDENTIALS file")
		return nil, nil
	}
	if key == nil {
		return nil, nil
	}

	return serviceAccountCredential(key)
}

// ADCSource usa as Application Default Credentials do ambiente. É a última
// estratégia: se falhar, o erro é devolvido.
type ADCSource struct{}

func (s *ADCSource) Name() string { return ytdomain.SourceADC }

func (s *ADCSource) TryResolve(ctx context.Context) (*Credential, error) {
	creds, err := google.FindDefaultCredentials(ctx, ytdomain.Scopes...)
	if err != nil {
		return nil, errors.Wrap(err, "Credentials: application default credentials unavailable")
	}

	return &Credential{TokenSource: creds.TokenSource, Source: ytdomain.SourceADC}, nil
}

func serviceAccountCredential(key []byte) (*Credential, error) {
	jwtConfig, err := google.JWTConfigFromJSON(key, ytdomain.Scopes...)
	if err != nil {
		return nil, errors.Wrap(err, "Credentials: invalid service account key")
	}

	return &Credential{
		TokenSource: jwtConfig.TokenSource(context.Background()),
		Source:      ytdomain.SourceServiceAccount,
	}, nil
}

var base64Alphabet = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

// maybeDecodeBase64 só decodifica valores com cara de base64: ao menos 24
// caracteres, tamanho múltiplo de 4 e que não começam com '{'.
func maybeDecodeBase64(raw string) (string, bool) {
	compact := strings.Join(strings.Fields(raw), "")
	if len(compact) < 24 || len(compact)%4 != 0 || strings.HasPrefix(compact, "{") {
		return "", false
	}
	if !base64Alphabet.MatchString(compact) {
		return "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return "", false
	}

	return string(decoded), true
}

// parseServiceAccount tenta o valor como está e, se parecer base64, decodificado.
// Retorna o JSON da chave (com type=service_account) ou nil se nenhum
// candidato tem client_email e private_key.
func parseServiceAccount(raw, label string) ([]byte, error) {
	candidates := []string{strings.TrimSpace(raw)}
	if decoded, ok := maybeDecodeBase64(raw); ok {
		candidates = append(candidates, decoded)
	}

	var parseErr error
	for _, candidate := range candidates {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
			parseErr = err
			continue
		}

		email, emailOK := parsed["client_email"].(string)
		privateKey, keyOK := parsed["private_key"].(string)
		if !emailOK || !keyOK || email == "" || privateKey == "" {
			continue
		}

		if _, ok := parsed["type"]; !ok {
			parsed["type"] = "service_account"
		}

		return json.Marshal(parsed)
	}

	if parseErr != nil {
		return nil, errors.Wrapf(parseErr, "%s JSON parse failed", label)
	}

	return nil, nil
}
