// Emite um token para as rotas administrativas do dashboard (recarga do dataset).
//
//	go run ./cmd/token -subject ops -ttl 24h
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecommerce-dashboard/internal/config"
	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/ecommerce-dashboard/pkg/log"
)

func main() {
	subject := flag.String("subject", "admin", "subject gravado no token")
	role := flag.String("role", domain.RoleAdmin, "papel do token (admin ou viewer)")
	ttl := flag.Duration("ttl", 24*time.Hour, "validade do token")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	token, err := authenticating.NewService(cfg).IssueToken(*subject, *role, *ttl)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao emitir token")
	}

	fmt.Println(token)
}
