// Package httpserver assembles the route table served by the server.
package httpserver

import (
	"github.com/Brownie44l1/minihttp/internal/calc"
	"github.com/Brownie44l1/minihttp/internal/router"
	"github.com/Brownie44l1/minihttp/internal/server"
	"github.com/Brownie44l1/minihttp/internal/static"
)

// NewRouter routes GET /static/* to files under staticDir and GET /calc/*
// to the calculator.
func NewRouter(staticDir string) *router.Router {
	r := router.New()
	r.GET(static.Prefix, static.New(staticDir).ServeRequest)
	r.GET(calc.Prefix, calc.ServeRequest)
	return r
}

// New builds a server for cfg with the standard routes.
func New(cfg server.Config, logger server.Logger) *server.Server {
	return server.New(cfg, NewRouter(cfg.StaticDir).ServeRequest, logger)
}
