package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shorts-insights-api/internal/api"
	"github.com/vfg2006/shorts-insights-api/internal/bootstrap"
	"github.com/vfg2006/shorts-insights-api/internal/config"
	"github.com/vfg2006/shorts-insights-api/internal/scheduler"
	"github.com/vfg2006/shorts-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/shorts-insights-api/pkg/log"
)

func main() {
	changeToSourceDir()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reporter, err := bootstrap.NewReporter(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o cliente do YouTube")
	}

	authenticator := authenticating.NewService(cfg)
	if !authenticator.Enabled() {
		logrus.Warn("AUTH_SECRET não configurado; API aberta sem autenticação")
	}

	reportDigestService := scheduler.NewReportDigestService(reporter, cfg)
	if err := reportDigestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo de relatório")
	} else {
		logrus.Info("Agendador do resumo de relatório iniciado com sucesso")
	}

	server, err := api.New(cfg, reporter, authenticator, reportDigestService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// changeToSourceDir permite achar o .env ao rodar com go run de qualquer diretório
func changeToSourceDir() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}
