package service

import (
	"github.com/vetward/vetward/internal/adapter"
	"github.com/vetward/vetward/internal/logger"
	"github.com/vetward/vetward/internal/netstate"
	"github.com/vetward/vetward/internal/store"
)

type ClientServices struct {
	CaseService ClientCaseService
	SyncEngine  SyncEngine
	SyncJob     SyncJob
	Monitor     *netstate.Monitor
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	monitor := netstate.NewMonitor()
	engine := NewClientSyncEngine(storages, serverAdapter, monitor, log)

	return &ClientServices{
		CaseService: engine,
		SyncEngine:  engine,
		SyncJob:     NewClientSyncJob(engine, monitor),
		Monitor:     monitor,
	}
}
