package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/kai468/chupochess/session"
	"github.com/kai468/chupochess/web"
)

func main() {
	addr := flag.String("addr", getenv("CHUPO_ADDR", ":8080"), "listen address")
	flag.Parse()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           web.NewServer(session.NewService()),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("HTTP listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
