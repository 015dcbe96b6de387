package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rmagtibay/barangay-service/config"
	"github.com/rmagtibay/barangay-service/internal/handler"
	"github.com/rmagtibay/barangay-service/internal/repository"
	"github.com/rmagtibay/barangay-service/internal/server"
	"github.com/rmagtibay/barangay-service/internal/service"
	"github.com/rmagtibay/barangay-service/migrations"
	"github.com/rmagtibay/barangay-service/pkg/kafka"
	"github.com/rmagtibay/barangay-service/pkg/logger"
	"github.com/rmagtibay/barangay-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "barangay")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}

	propertyRepo, err := repository.NewPropertyRepository(db, log)
	if err != nil {
		log.Fatal("property repo", zap.Error(err))
	}
	auditRepo, err := repository.NewAuditRepository(db, log)
	if err != nil {
		log.Fatal("audit repo", zap.Error(err))
	}
	reportsRepo, err := repository.NewReportsRepository(db, log)
	if err != nil {
		log.Fatal("reports repo", zap.Error(err))
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}

	propertySvc := service.NewProperty(propertyRepo, kafka.NewEnqueuer(producer), log)
	auditSvc := service.NewAudit(auditRepo, log)
	reportsSvc := service.NewReports(reportsRepo, log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.AuditConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	go kafka.Consume(consumer, handler.NewConsumer(auditSvc.Record, log), kafka.AuditTopic)

	regs := handler.Registries{
		Residents:         service.NewResidents(db, log),
		Families:          service.NewFamilies(db, log),
		Certificates:      service.NewCertificates(db, log),
		Maintenance:       service.NewMaintenance(db, log),
		Incidents:         service.NewIncidents(db, log),
		VulnerableSectors: service.NewVulnerableSectors(db, log),
		ResidentDocuments: service.NewResidentDocuments(db, log),
	}

	h := handler.New(propertySvc, auditSvc, reportsSvc, regs, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err = consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
