package handler

import (
	"userdir/internal/app/auth"
	"userdir/internal/app/user"
	"userdir/internal/configs"
)

// AppDeps holds the process-wide collaborators handed to every handler.
// All of them are built once in main around a single user.Store.
type AppDeps struct {
	Config    *configs.AppConfig
	Directory *user.Directory
	Registry  *user.Registry
	Auth      *auth.Service
}

// NewAppDeps wires the directory, registry and auth service around one store.
func NewAppDeps(cfg *configs.AppConfig, store *user.Store, ids user.IDGenerator) *AppDeps {
	directory := user.NewDirectory(store)
	registry := user.NewRegistry(store, ids)

	return &AppDeps{
		Config:    cfg,
		Directory: directory,
		Registry:  registry,
		Auth:      auth.NewService(directory, registry, cfg.TokenSecret),
	}
}
