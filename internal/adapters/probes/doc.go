// Package probes provides ports.Probe implementations for the process itself
// and for the infrastructure it depends on.
//
// [Static] is a switchable probe for conditions the process controls, such
// as "the HTTP listener is up". [PingProbe] adapts any
// func(context.Context) error health check into a probe and is the basis
// for the PostgreSQL, Redis and downstream HTTP probes:
//
//	pool, err := probes.OpenPostgres(ctx, cfg.Probes.Postgres)
//	engine.RegisterProbe("postgres", probes.NewPostgres(pool, probes.FromConfig(cfg.Probes.Postgres.ProbeConfig)...))
//
//	rdb := probes.OpenRedis(cfg.Probes.Redis)
//	engine.RegisterProbe("redis", probes.NewRedis(rdb, probes.FromConfig(cfg.Probes.Redis.ProbeConfig)...))
//
// Probes are queried by the health engine's refresh loop and, in direct read
// mode, by request handlers; every probe here is safe for concurrent use.
package probes
