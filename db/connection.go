package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"rinha/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxIface interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	Close()
}

var (
	Conn *pgxpool.Pool
)

// Connect opens the process-wide pool. Called once from main; a failure here
// is fatal for the process, never for an individual request.
func Connect(cfg config.Config) (*pgxpool.Pool, error) {
	connectionString := fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	poolConfig, err := pgxpool.ParseConfig(connectionString)
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = int32(cfg.DBMaxConnections)
	poolConfig.MinConns = int32(cfg.DBMaxConnections)
	poolConfig.MaxConnIdleTime = time.Minute * 3

	log.Println("opening connections")

	Conn, err = pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, err
	}

	if err = Conn.Ping(context.Background()); err != nil {
		Conn.Close()
		Conn = nil
		return nil, err
	}

	return Conn, nil
}

func GetConnection() PgxIface {
	return Conn
}
