// cmd/recommender/workers.go
package main

import (
	"context"
	"os"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"business-recommender/internal/common/camunda"
	"business-recommender/internal/common/config"
	"business-recommender/internal/common/logger"
	"business-recommender/internal/engine"
	"business-recommender/internal/enrichment"
	"business-recommender/internal/mentorcontact"
	"business-recommender/internal/recordlog"
	"business-recommender/pkg/registry"

	cm "business-recommender/internal/workers/communication/contact-mentor"
	arr "business-recommender/internal/workers/recommendation/apply-relevance-ranking"
	br "business-recommender/internal/workers/recommendation/build-response"
	cms "business-recommender/internal/workers/recommendation/calculate-match-score"
	gbi "business-recommender/internal/workers/recommendation/generate-business-ideas"
	rr "business-recommender/internal/workers/recommendation/record-recommendation"
	vup "business-recommender/internal/workers/recommendation/validate-user-profile"
)

const registryPath = "configs/activity-registry.json"

type workerDeps struct {
	engine    *engine.Engine
	enricher  *enrichment.Enricher
	sink      recordlog.Sink
	contacter *mentorcontact.Service
}

type workerSet struct {
	client  *camunda.Client
	workers []worker.JobWorker
}

// startWorkers connects to Zeebe and opens a job worker per enabled task
// type. It returns an empty set when Camunda is disabled.
func startWorkers(ctx context.Context, cfg *config.Config, deps workerDeps, log logger.Logger) (*workerSet, error) {
	set := &workerSet{}
	if !cfg.Camunda.Enabled {
		log.Info("camunda disabled, no workers started", nil)
		return set, nil
	}

	client, err := camunda.NewClient(ctx, cfg.Camunda, camunda.DefaultRetryConfig, log)
	if err != nil {
		return nil, err
	}
	set.client = client
	log.Info("zeebe client connected", map[string]interface{}{"broker": cfg.Camunda.BrokerAddress})

	handlers := map[string]camunda.JobHandler{
		vup.TaskType: vup.NewHandler(vup.LoadConfig(cfg), log),
		gbi.TaskType: gbi.NewHandler(gbi.LoadConfig(cfg), deps.engine.Generator(), log),
		cms.TaskType: cms.NewHandler(cms.LoadConfig(cfg), log),
		arr.TaskType: arr.NewHandler(arr.LoadConfig(cfg), log),
		br.TaskType:  br.NewHandler(br.LoadConfig(cfg), deps.enricher, log),
		rr.TaskType:  rr.NewHandler(rr.LoadConfig(cfg), deps.sink, log),
	}
	if deps.contacter != nil {
		handlers[cm.TaskType] = cm.NewHandler(cm.LoadConfig(cfg), deps.contacter, log)
	} else if config.IsWorkerEnabled(cfg, cm.TaskType) {
		log.Warn("no notification channel enabled, contact-mentor worker not started", nil)
	}

	checkRegistry(handlers, log)

	for taskType, h := range handlers {
		if jw := camunda.StartWorker(client.Zeebe(), taskType, config.GetWorkerConfig(cfg, taskType), h, log); jw != nil {
			set.workers = append(set.workers, jw)
		}
	}
	log.Info("workers registered", map[string]interface{}{"count": len(set.workers)})

	return set, nil
}

// checkRegistry warns about served task types that the activity registry
// does not describe.
func checkRegistry(handlers map[string]camunda.JobHandler, log logger.Logger) {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("activity registry unreadable, using built-in registry", map[string]interface{}{"error": err})
		}
		reg = registry.Default()
	}

	taskTypes := make([]string, 0, len(handlers))
	for tt := range handlers {
		taskTypes = append(taskTypes, tt)
	}
	if missing := reg.Missing(taskTypes...); len(missing) > 0 {
		log.Warn("task types missing from activity registry", map[string]interface{}{"taskTypes": missing})
	}
}

func (s *workerSet) Close(log logger.Logger) {
	for _, w := range s.workers {
		w.Close()
		w.AwaitClose()
	}
	if s.client != nil {
		if err := s.client.Close(); err != nil {
			log.Error("error closing zeebe client", map[string]interface{}{"error": err})
		}
	}
}
