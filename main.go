package main

import (
	"fmt"
	"log"
	"net/http"

	"rinha/config"
	"rinha/db"
	handler "rinha/http"

	"github.com/julienschmidt/httprouter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Starting server on %d\n", cfg.Port)

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	router := httprouter.New()

	router.GET("/health-check", handler.HealthCheck)
	router.POST("/pessoas", handler.CreatePessoa)
	router.GET("/pessoas", handler.GetPessoas)
	router.GET("/pessoas/:id", handler.GetPessoa)
	router.GET("/contagem-pessoas", handler.GetPessoaCount)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     router,
		IdleTimeout: cfg.IdleTimeout,
	}

	log.Fatal(server.ListenAndServe())
}
